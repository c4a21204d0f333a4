package service_test

import (
	"context"
	"errors"
	"testing"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/mocks"
	"dealspace-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockTokens     *mocks.MockTokenIssuer
	mockSocial     *mocks.MockSocialProfileFetcher
	authService    *service.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenIssuer(suite.ctrl)
	suite.mockSocial = mocks.NewMockSocialProfileFetcher(suite.ctrl)
	suite.authService = service.NewAuthService(suite.mockTenantRepo, suite.mockUserRepo, suite.mockTokens, suite.mockSocial, service.NewValidator())
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) hashedUser(password string) *models.User {
	hash, err := auth.HashPassword(password)
	require.NoError(suite.T(), err)
	user := &models.User{
		TenantID:     uuid.New(),
		Name:         "Jane Agent",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAgent,
	}
	user.ID = uuid.New()
	return user
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	req := &service.RegisterRequest{
		Name:                 "Jane Owner",
		Email:                "Jane@Example.com",
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	}

	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTenantRepo.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(tenant *models.Tenant, owner *models.User, stages []models.Stage) error {
			assert.Equal(suite.T(), "Jane Owner's team", tenant.Name)
			assert.Equal(suite.T(), models.PlanFree, tenant.Plan)
			assert.Equal(suite.T(), models.UserRoleOwner, owner.Role)
			assert.Equal(suite.T(), "jane@example.com", owner.Email)
			assert.True(suite.T(), auth.CheckPassword(owner.PasswordHash, "secret-password"))
			require.Len(suite.T(), stages, len(models.DefaultStageNames))
			assert.True(suite.T(), stages[0].IsDefault)
			assert.False(suite.T(), stages[1].IsDefault)
			tenant.ID = uuid.New()
			owner.ID = uuid.New()
			owner.TenantID = tenant.ID
			return nil
		})
	suite.mockTokens.EXPECT().GenerateJWT(gomock.Any()).Return("signed-token", nil)

	resp, err := suite.authService.Register(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "signed-token", resp.Token)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	require.NotNil(suite.T(), resp.User.Tenant)
	assert.Equal(suite.T(), models.PlanFree, resp.User.Tenant.Plan)
}

func (suite *AuthServiceTestSuite) TestRegister_EmailTaken() {
	req := &service.RegisterRequest{
		Name:                 "Jane",
		Email:                "jane@example.com",
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	}
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(&models.User{Email: "jane@example.com"}, nil)

	resp, err := suite.authService.Register(context.Background(), req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestRegister_PasswordMismatch() {
	req := &service.RegisterRequest{
		Name:                 "Jane",
		Email:                "jane@example.com",
		Password:             "secret-password",
		PasswordConfirmation: "other-password",
	}

	_, err := suite.authService.Register(context.Background(), req)

	var validationErrs validator.ValidationErrors
	require.True(suite.T(), errors.As(err, &validationErrs))
	assert.Equal(suite.T(), "password_confirmation", validationErrs[0].Field())
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	user := suite.hashedUser("correct-horse")
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)
	suite.mockTokens.EXPECT().GenerateJWT(auth.TokenSubject{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     string(models.UserRoleAgent),
	}).Return("signed-token", nil)

	resp, err := suite.authService.Login(context.Background(), &service.LoginRequest{Email: "jane@example.com", Password: "correct-horse"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "signed-token", resp.Token)
	assert.NotNil(suite.T(), user.LastLoginAt)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := suite.hashedUser("correct-horse")
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(user, nil)

	resp, err := suite.authService.Login(context.Background(), &service.LoginRequest{Email: "jane@example.com", Password: "battery-staple"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	suite.mockUserRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.authService.Login(context.Background(), &service.LoginRequest{Email: " Nobody@Example.com ", Password: "whatever1"})

	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestLoadSubject() {
	user := suite.hashedUser("correct-horse")
	user.Role = models.UserRoleAdmin
	suite.mockUserRepo.EXPECT().GetByID(user.TenantID, user.ID).Return(user, nil)

	subject, err := suite.authService.LoadSubject(context.Background(), user.TenantID, user.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin", subject.Role)
	assert.Equal(suite.T(), user.Email, subject.Email)
}

func (suite *AuthServiceTestSuite) TestLoadSubject_DeletedUser() {
	tenantID, userID := uuid.New(), uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(tenantID, userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.authService.LoadSubject(context.Background(), tenantID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *AuthServiceTestSuite) TestSocialLogin_LinksByEmail() {
	user := suite.hashedUser("correct-horse")
	profile := &auth.SocialProfile{Provider: "google", ID: "g-123", Email: "jane@example.com", AvatarURL: "https://img.example.com/a.png"}

	suite.mockSocial.EXPECT().FetchProfile(gomock.Any(), "google", "provider-token").Return(profile, nil)
	suite.mockUserRepo.EXPECT().GetBySocial("google", "g-123").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)
	suite.mockTokens.EXPECT().GenerateJWT(gomock.Any()).Return("signed-token", nil)

	resp, err := suite.authService.SocialLogin(context.Background(), &service.SocialLoginRequest{Provider: "google", AccessToken: "provider-token"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "signed-token", resp.Token)
	assert.Equal(suite.T(), "google", user.SocialProvider)
	assert.Equal(suite.T(), "g-123", user.SocialID)
	assert.Equal(suite.T(), "https://img.example.com/a.png", user.Avatar)
}

func (suite *AuthServiceTestSuite) TestSocialLogin_NoAccount() {
	profile := &auth.SocialProfile{Provider: "facebook", ID: "fb-1", Email: "new@example.com"}

	suite.mockSocial.EXPECT().FetchProfile(gomock.Any(), "facebook", "provider-token").Return(profile, nil)
	suite.mockUserRepo.EXPECT().GetBySocial("facebook", "fb-1").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.authService.SocialLogin(context.Background(), &service.SocialLoginRequest{Provider: "facebook", AccessToken: "provider-token"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSocialAccountNotFound)
}

func (suite *AuthServiceTestSuite) TestSocialLogin_UnsupportedProvider() {
	_, err := suite.authService.SocialLogin(context.Background(), &service.SocialLoginRequest{Provider: "myspace", AccessToken: "t"})

	var validationErrs validator.ValidationErrors
	assert.True(suite.T(), errors.As(err, &validationErrs))
}

func (suite *AuthServiceTestSuite) TestLogout_RevokesToken() {
	claims := &auth.AuthClaims{UserID: uuid.New()}
	suite.mockTokens.EXPECT().Revoke(gomock.Any(), claims).Return(nil)

	assert.NoError(suite.T(), suite.authService.Logout(context.Background(), claims))
}

func (suite *AuthServiceTestSuite) TestUpdateProfile_PasswordChangeNeedsCurrentPassword() {
	user := suite.hashedUser("correct-horse")
	actor := service.Actor{UserID: user.ID, TenantID: user.TenantID, Role: user.Role}
	suite.mockUserRepo.EXPECT().GetByID(user.TenantID, user.ID).Return(user, nil)

	_, err := suite.authService.UpdateProfile(actor, &service.UpdateProfileRequest{
		CurrentPassword:      "wrong-password",
		Password:             "new-password-1",
		PasswordConfirmation: "new-password-1",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCurrentPasswordMismatch)
}

func (suite *AuthServiceTestSuite) TestUpdateProfile_Success() {
	user := suite.hashedUser("correct-horse")
	actor := service.Actor{UserID: user.ID, TenantID: user.TenantID, Role: user.Role}
	name := "Jane Closer"
	suite.mockUserRepo.EXPECT().GetByID(user.TenantID, user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.authService.UpdateProfile(actor, &service.UpdateProfileRequest{
		Name:                 &name,
		CurrentPassword:      "correct-horse",
		Password:             "new-password-1",
		PasswordConfirmation: "new-password-1",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane Closer", resp.Name)
	assert.True(suite.T(), auth.CheckPassword(user.PasswordHash, "new-password-1"))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
