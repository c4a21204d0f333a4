package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealspace-backend/internal/api/handlers"
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/mocks"
	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
	actor       service.Actor
}

// SetupSuite sets up the test suite
func (suite *UserHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each test
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)
	suite.actor = service.Actor{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Role:     models.UserRoleOwner,
		Email:    "owner@example.com",
	}

	suite.router = gin.New()
	api := suite.router.Group("/api")
	api.Use(withActor(suite.actor.UserID, suite.actor.TenantID, string(models.UserRoleOwner)))
	{
		users := api.Group("/users")
		{
			users.GET("", suite.handler.ListUsers)
			users.POST("", suite.handler.CreateUser)
			users.DELETE("/bulk-delete", suite.handler.BulkDeleteUsers)
			users.POST("/bulk-export", suite.handler.BulkExportUsers)
			users.GET("/:id", suite.handler.GetUser)
			users.PUT("/:id", suite.handler.UpdateUser)
			users.DELETE("/:id", suite.handler.DeleteUser)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsers tests that filters reach the service
func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockService.EXPECT().
		List(suite.actor, &service.UserListQuery{Search: "ann", Role: models.UserRoleAgent, Page: 1, PerPage: 20}).
		Return(&service.UserListResponse{
			Users: []service.UserResponse{{ID: uuid.New(), Name: "Ann Agent", Role: models.UserRoleAgent}},
			Meta:  service.PageMeta{Total: 1, Page: 1, PerPage: 20, LastPage: 1},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/users?search=ann&role=agent&page=1&per_page=20", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := decodeResponse(suite.T(), w).Data.(map[string]interface{})
	assert.Len(suite.T(), data["users"], 1)
}

// TestCreateUser tests adding a user
func (suite *UserHandlerTestSuite) TestCreateUser() {
	expected := &service.CreateUserRequest{
		Name:     "Ann Agent",
		Email:    "ann@example.com",
		Password: "secret-password",
		Role:     models.UserRoleAgent,
	}
	suite.mockService.EXPECT().
		Create(suite.actor, expected).
		Return(&service.UserResponse{ID: uuid.New(), Name: "Ann Agent", Email: "ann@example.com", Role: models.UserRoleAgent}, nil).
		Times(1)

	body, _ := json.Marshal(expected)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "User created", decodeResponse(suite.T(), w).Message)
}

// TestCreateUser_PlanLimit tests the seat limit answer
func (suite *UserHandlerTestSuite) TestCreateUser_PlanLimit() {
	suite.mockService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.NewPlanLimitError("users", 3)).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Equal(suite.T(), "plan limit reached: at most 3 users allowed", decodeResponse(suite.T(), w).Message)
}

// TestGetUser_InvalidID tests a malformed user id
func (suite *UserHandlerTestSuite) TestGetUser_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid user ID", decodeResponse(suite.T(), w).Message)
}

// TestUpdateUser tests a partial update
func (suite *UserHandlerTestSuite) TestUpdateUser() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(suite.actor, id, gomock.Any()).
		DoAndReturn(func(_ service.Actor, _ uuid.UUID, req *service.UpdateUserRequest) (*service.UserResponse, error) {
			if assert.NotNil(suite.T(), req.Role) {
				assert.Equal(suite.T(), models.UserRoleAdmin, *req.Role)
			}
			assert.Nil(suite.T(), req.Password)
			return &service.UserResponse{ID: id, Role: models.UserRoleAdmin}, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/users/"+id.String(), bytes.NewBufferString(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "User updated", decodeResponse(suite.T(), w).Message)
}

// TestDeleteUser_Self tests that deleting your own account is forbidden
func (suite *UserHandlerTestSuite) TestDeleteUser_Self() {
	suite.mockService.EXPECT().
		Delete(suite.actor, suite.actor.UserID).
		Return(apperrors.ErrCannotDeleteSelf).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+suite.actor.UserID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Equal(suite.T(), apperrors.ErrCannotDeleteSelf.Error(), decodeResponse(suite.T(), w).Message)
}

// TestBulkDeleteUsers tests the bulk delete count
func (suite *UserHandlerTestSuite) TestBulkDeleteUsers() {
	ids := []uuid.UUID{uuid.New()}
	suite.mockService.EXPECT().
		BulkDelete(suite.actor, &service.BulkIDsRequest{IDs: ids}).
		Return(int64(1), nil).
		Times(1)

	body, _ := json.Marshal(service.BulkIDsRequest{IDs: ids})
	req := httptest.NewRequest(http.MethodDelete, "/api/users/bulk-delete", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.Equal(suite.T(), "Users deleted", resp.Message)
	assert.Equal(suite.T(), float64(1), resp.Data.(map[string]interface{})["deleted"])
}

// TestBulkExportUsers tests the workbook attachment
func (suite *UserHandlerTestSuite) TestBulkExportUsers() {
	ids := []uuid.UUID{uuid.New()}
	suite.mockService.EXPECT().
		Export(suite.actor, &service.BulkIDsRequest{IDs: ids}, gomock.Any()).
		DoAndReturn(func(_ service.Actor, _ *service.BulkIDsRequest, w io.Writer) error {
			_, err := w.Write([]byte("xlsx"))
			return err
		}).
		Times(1)

	body, _ := json.Marshal(service.BulkIDsRequest{IDs: ids})
	req := httptest.NewRequest(http.MethodPost, "/api/users/bulk-export", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), `attachment; filename="users.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), "xlsx", w.Body.String())
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
