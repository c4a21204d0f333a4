package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealspace-backend/internal/api/handlers"
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

// AuthHandlerTestSuite tests the AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockAuthServiceInterface
	handler     *handlers.AuthHandler
	claims      *auth.AuthClaims
}

// SetupSuite sets up the test suite
func (suite *AuthHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each test
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAuthServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuthHandler(suite.mockService)
	suite.claims = &auth.AuthClaims{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Email:    "owner@example.com",
		Role:     "owner",
	}

	suite.router = gin.New()
	public := suite.router.Group("/api/auth")
	{
		public.POST("/register", suite.handler.Register)
		public.POST("/login", suite.handler.Login)
		public.POST("/social-login", suite.handler.SocialLogin)
		public.POST("/anonymous-logout", suite.handler.Logout)
	}

	protected := suite.router.Group("/api/auth")
	protected.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.claims.UserID)
		c.Set(auth.ContextTenantID, suite.claims.TenantID)
		c.Set(auth.ContextEmail, suite.claims.Email)
		c.Set(auth.ContextRole, suite.claims.Role)
		c.Set(auth.ContextClaims, suite.claims)
		c.Next()
	})
	{
		protected.POST("/logout", suite.handler.Logout)
		protected.GET("/me", suite.handler.Me)
		protected.PUT("/update", suite.handler.UpdateProfile)
	}
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestRegister tests account registration
func (suite *AuthHandlerTestSuite) TestRegister() {
	expectedReq := &service.RegisterRequest{
		Name:                 "Olivia Owner",
		Email:                "owner@example.com",
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
		CompanyName:          "Acme Realty",
	}
	suite.mockService.EXPECT().
		Register(gomock.Any(), expectedReq).
		Return(&service.AuthResponse{
			User:      &service.UserResponse{ID: suite.claims.UserID, Email: "owner@example.com"},
			Token:     "jwt-token",
			TokenType: "Bearer",
		}, nil).
		Times(1)

	w := suite.post("/api/auth/register", `{"name":"Olivia Owner","email":"owner@example.com","password":"secret-password","password_confirmation":"secret-password","company_name":"Acme Realty"}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	resp := decodeResponse(suite.T(), w)
	assert.True(suite.T(), resp.Status)
	assert.Equal(suite.T(), "Registration successful", resp.Message)
	data := resp.Data.(map[string]interface{})
	assert.Equal(suite.T(), "jwt-token", data["token"])
	assert.Equal(suite.T(), "Bearer", data["token_type"])
}

// TestRegister_EmailTaken tests the conflict mapping
func (suite *AuthHandlerTestSuite) TestRegister_EmailTaken() {
	suite.mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists).Times(1)

	w := suite.post("/api/auth/register", `{"name":"x","email":"taken@example.com"}`)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.False(suite.T(), decodeResponse(suite.T(), w).Status)
}

// TestLogin_InvalidCredentials tests the 401 mapping
func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockService.EXPECT().
		Login(gomock.Any(), &service.LoginRequest{Email: "owner@example.com", Password: "wrong"}).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	w := suite.post("/api/auth/login", `{"email":"owner@example.com","password":"wrong"}`)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), apperrors.ErrInvalidCredentials.Error(), decodeResponse(suite.T(), w).Message)
}

// TestSocialLogin tests the provider login
func (suite *AuthHandlerTestSuite) TestSocialLogin() {
	suite.mockService.EXPECT().
		SocialLogin(gomock.Any(), &service.SocialLoginRequest{Provider: "google", AccessToken: "ya29"}).
		Return(&service.AuthResponse{Token: "jwt-token", TokenType: "Bearer"}, nil).
		Times(1)

	w := suite.post("/api/auth/social-login", `{"provider":"google","access_token":"ya29"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Login successful", decodeResponse(suite.T(), w).Message)
}

// TestLogout tests that the presented claims are revoked
func (suite *AuthHandlerTestSuite) TestLogout() {
	suite.mockService.EXPECT().Logout(gomock.Any(), suite.claims).Return(nil).Times(1)

	w := suite.post("/api/auth/logout", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Logged out", decodeResponse(suite.T(), w).Message)
}

// TestLogout_NoClaims tests logout without an auth context
func (suite *AuthHandlerTestSuite) TestLogout_NoClaims() {
	w := suite.post("/api/auth/anonymous-logout", "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "Unauthenticated", decodeResponse(suite.T(), w).Message)
}

// TestMe tests the current user endpoint
func (suite *AuthHandlerTestSuite) TestMe() {
	actor := service.Actor{
		UserID:   suite.claims.UserID,
		TenantID: suite.claims.TenantID,
		Role:     "owner",
		Email:    "owner@example.com",
	}
	suite.mockService.EXPECT().
		Me(actor).
		Return(&service.UserResponse{ID: suite.claims.UserID, Name: "Olivia Owner"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := decodeResponse(suite.T(), w).Data.(map[string]interface{})
	assert.Equal(suite.T(), "Olivia Owner", data["name"])
}

// TestUpdateProfile tests the profile update
func (suite *AuthHandlerTestSuite) TestUpdateProfile() {
	suite.mockService.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ service.Actor, req *service.UpdateProfileRequest) (*service.UserResponse, error) {
			if assert.NotNil(suite.T(), req.Name) {
				assert.Equal(suite.T(), "Renamed", *req.Name)
			}
			assert.Nil(suite.T(), req.Email)
			return &service.UserResponse{Name: "Renamed"}, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/auth/update", bytes.NewBufferString(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Profile updated", decodeResponse(suite.T(), w).Message)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
