package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealspace-backend/internal/auth"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/mocks"
	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
	actor       service.Actor
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)
	suite.actor = service.Actor{UserID: uuid.New(), TenantID: uuid.New(), Role: "admin", Email: "admin@example.com"}

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.actor.UserID)
		c.Set(auth.ContextTenantID, suite.actor.TenantID)
		c.Set(auth.ContextRole, string(suite.actor.Role))
		c.Set(auth.ContextEmail, suite.actor.Email)
		c.Next()
	})

	// Setup routes
	api := suite.router.Group("/api")
	{
		groups := api.Group("/groups")
		{
			groups.GET("", suite.handler.ListGroups)
			groups.POST("", suite.handler.CreateGroup)
			groups.GET("/:id", suite.handler.GetGroup)
			groups.PUT("/:id", suite.handler.UpdateGroup)
			groups.DELETE("/:id", suite.handler.DeleteGroup)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListGroups tests listing groups with paging parameters
func (suite *GroupHandlerTestSuite) TestListGroups() {
	suite.mockService.EXPECT().
		List(suite.actor, 2, 5).
		Return(&service.GroupListResponse{
			Groups: []service.GroupResponse{{ID: uuid.New(), Name: "Buyers"}},
			Meta:   service.PageMeta{Total: 6, Page: 2, PerPage: 5, LastPage: 2},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/groups?page=2&per_page=5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	data := response.Data.(map[string]interface{})
	assert.Len(suite.T(), data["groups"], 1)
	assert.Equal(suite.T(), float64(2), data["meta"].(map[string]interface{})["last_page"])
}

// TestCreateGroup tests creating a group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	memberID := uuid.New()
	expected := &service.GroupRequest{
		Name:               "Buyers",
		Type:               "agent",
		Distribution:       "first_to_claim",
		ClaimWindowMinutes: 15,
		UserIDs:            []uuid.UUID{memberID},
	}
	suite.mockService.EXPECT().
		Create(suite.actor, expected).
		Return(&service.GroupResponse{ID: uuid.New(), Name: "Buyers", UserIDs: []uuid.UUID{memberID}}, nil).
		Times(1)

	body, _ := json.Marshal(map[string]interface{}{
		"name":                 "Buyers",
		"type":                 "agent",
		"distribution":         "first_to_claim",
		"claim_window_minutes": 15,
		"user_ids":             []uuid.UUID{memberID},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Group created", response.Message)
}

// TestCreateGroup_ForeignMember tests the field validation error mapping
func (suite *GroupHandlerTestSuite) TestCreateGroup_ForeignMember() {
	suite.mockService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrUserNotInTenant).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(`{"name":"Buyers"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.Status)
	assert.NotEmpty(suite.T(), response.Errors)
}

// TestGetGroup_InvalidID tests a malformed group id
func (suite *GroupHandlerTestSuite) TestGetGroup_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/groups/invalid-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Invalid group ID", response.Message)
}

// TestGetGroup_NotFound tests a missing group
func (suite *GroupHandlerTestSuite) TestGetGroup_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(suite.actor, id).Return(nil, apperrors.ErrGroupNotFound).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/groups/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateGroup tests updating a group
func (suite *GroupHandlerTestSuite) TestUpdateGroup() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(suite.actor, id, gomock.Any()).
		DoAndReturn(func(_ service.Actor, _ uuid.UUID, req *service.GroupRequest) (*service.GroupResponse, error) {
			assert.Equal(suite.T(), "Sellers", req.Name)
			assert.Empty(suite.T(), req.UserIDs)
			return &service.GroupResponse{ID: id, Name: "Sellers"}, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/groups/"+id.String(), bytes.NewBufferString(`{"name":"Sellers"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeleteGroup tests deleting a group
func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(suite.actor, id).Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/groups/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Group deleted", response.Message)
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
