package service_test

import (
	"bytes"
	"testing"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/mocks"
	"dealspace-backend/internal/repository"
	"dealspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	userService    *service.UserService
	tenant         *models.Tenant
	actor          service.Actor
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)

	// Create service with mock repositories
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockTenantRepo, service.NewValidator())

	suite.tenant = &models.Tenant{Name: "Acme Realty", Plan: models.PlanFree}
	suite.tenant.ID = uuid.New()
	suite.actor = service.Actor{UserID: uuid.New(), TenantID: suite.tenant.ID, Role: models.UserRoleOwner}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) newUser(role models.UserRole) *models.User {
	user := &models.User{TenantID: suite.tenant.ID, Name: "Jane Doe", Email: "jane@example.com", Role: role}
	user.ID = uuid.New()
	return user
}

// TestCreateUser tests adding a user to the tenant
func (suite *UserServiceTestSuite) TestCreateUser() {
	req := &service.CreateUserRequest{
		Name:     "John Doe",
		Email:    " John@Example.com ",
		Password: "secret-password",
		Role:     models.UserRoleAgent,
		Phone:    "+1 555 0123",
	}

	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenant.ID).
		Return(suite.tenant, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		CountByTenant(suite.tenant.ID).
		Return(int64(2), nil).
		Times(1)

	// No existing user with the same email
	suite.mockUserRepo.EXPECT().
		GetByEmail("john@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	var created *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		}).
		Times(1)

	response, err := suite.userService.Create(suite.actor, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "john@example.com", response.Email)
	assert.Equal(suite.T(), models.UserRoleAgent, response.Role)
	assert.Equal(suite.T(), suite.tenant.ID, response.TenantID)
	assert.NotEqual(suite.T(), req.Password, created.PasswordHash)
	assert.True(suite.T(), auth.CheckPassword(created.PasswordHash, req.Password))
}

// TestCreateUserPlanLimit tests that the free plan caps the number of users
func (suite *UserServiceTestSuite) TestCreateUserPlanLimit() {
	req := &service.CreateUserRequest{Name: "John", Email: "john@example.com", Password: "secret-password", Role: models.UserRoleAgent}

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenant.ID).Return(suite.tenant, nil).Times(1)
	suite.mockUserRepo.EXPECT().CountByTenant(suite.tenant.ID).Return(int64(3), nil).Times(1)

	response, err := suite.userService.Create(suite.actor, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsPlanLimit(err))
	assert.Contains(suite.T(), err.Error(), "at most 3 users")
}

// TestCreateUserValidationError tests that the owner role cannot be granted
func (suite *UserServiceTestSuite) TestCreateUserValidationError() {
	req := &service.CreateUserRequest{Name: "John", Email: "john@example.com", Password: "secret-password", Role: models.UserRoleOwner}

	response, err := suite.userService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateUserDuplicateEmail tests creating a user with an email already in use
func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	req := &service.CreateUserRequest{Name: "John", Email: "jane@example.com", Password: "secret-password", Role: models.UserRoleAdmin}

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenant.ID).Return(suite.tenant, nil).Times(1)
	suite.mockUserRepo.EXPECT().CountByTenant(suite.tenant.ID).Return(int64(1), nil).Times(1)
	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(suite.newUser(models.UserRoleAgent), nil).
		Times(1)

	response, err := suite.userService.Create(suite.actor, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Contains(suite.T(), err.Error(), "user already exists")
}

// TestGetUserNotFound tests getting a user outside the tenant
func (suite *UserServiceTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByID(suite.tenant.ID, id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.Get(suite.actor, id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestListUsers tests paging and role filtering
func (suite *UserServiceTestSuite) TestListUsers() {
	suite.mockUserRepo.EXPECT().
		List(suite.tenant.ID, repository.UserFilter{Search: "jane", Role: models.UserRoleAgent, Limit: 10, Offset: 10}).
		Return([]models.User{*suite.newUser(models.UserRoleAgent)}, int64(11), nil).
		Times(1)

	response, err := suite.userService.List(suite.actor, &service.UserListQuery{Search: "jane", Role: models.UserRoleAgent, Page: 2, PerPage: 10})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 1)
	assert.Equal(suite.T(), int64(11), response.Meta.Total)
	assert.Equal(suite.T(), 2, response.Meta.LastPage)
}

// TestUpdateUser tests changing role, email and password
func (suite *UserServiceTestSuite) TestUpdateUser() {
	user := suite.newUser(models.UserRoleAgent)
	role := models.UserRoleAdmin
	email := "JANE.NEW@example.com"
	password := "another-password"

	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID, user.ID).Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByEmail("jane.new@example.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil).Times(1)

	response, err := suite.userService.Update(suite.actor, user.ID, &service.UpdateUserRequest{Role: &role, Email: &email, Password: &password})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.UserRoleAdmin, response.Role)
	assert.Equal(suite.T(), "jane.new@example.com", response.Email)
	assert.True(suite.T(), auth.CheckPassword(user.PasswordHash, password))
}

// TestUpdateOwnerRole tests that the owner keeps the owner role
func (suite *UserServiceTestSuite) TestUpdateOwnerRole() {
	owner := suite.newUser(models.UserRoleOwner)
	role := models.UserRoleAgent

	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID, owner.ID).Return(owner, nil).Times(1)

	_, err := suite.userService.Update(suite.actor, owner.ID, &service.UpdateUserRequest{Role: &role})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestDeleteUser tests deleting a user
func (suite *UserServiceTestSuite) TestDeleteUser() {
	user := suite.newUser(models.UserRoleAgent)
	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID, user.ID).Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().Delete(suite.tenant.ID, user.ID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.userService.Delete(suite.actor, user.ID))
}

// TestDeleteSelfAndOwner tests the delete guards
func (suite *UserServiceTestSuite) TestDeleteSelfAndOwner() {
	assert.ErrorIs(suite.T(), suite.userService.Delete(suite.actor, suite.actor.UserID), apperrors.ErrCannotDeleteSelf)

	owner := suite.newUser(models.UserRoleOwner)
	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID, owner.ID).Return(owner, nil).Times(1)
	assert.ErrorIs(suite.T(), suite.userService.Delete(suite.actor, owner.ID), apperrors.ErrCannotDeleteOwner)
}

// TestBulkDeleteUsers tests that the whole request is rejected when it names the owner
func (suite *UserServiceTestSuite) TestBulkDeleteUsers() {
	agent := suite.newUser(models.UserRoleAgent)
	owner := suite.newUser(models.UserRoleOwner)
	ids := []uuid.UUID{agent.ID, owner.ID}

	suite.mockUserRepo.EXPECT().ListByIDs(suite.tenant.ID, ids).Return([]models.User{*agent, *owner}, nil).Times(1)

	deleted, err := suite.userService.BulkDelete(suite.actor, &service.BulkIDsRequest{IDs: ids})
	assert.Zero(suite.T(), deleted)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCannotDeleteOwner)

	suite.mockUserRepo.EXPECT().ListByIDs(suite.tenant.ID, []uuid.UUID{agent.ID}).Return([]models.User{*agent}, nil).Times(1)
	suite.mockUserRepo.EXPECT().BulkDelete(suite.tenant.ID, []uuid.UUID{agent.ID}).Return(int64(1), nil).Times(1)

	deleted, err = suite.userService.BulkDelete(suite.actor, &service.BulkIDsRequest{IDs: []uuid.UUID{agent.ID, agent.ID}})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), deleted)
}

// TestExportUsers tests the xlsx export of selected users
func (suite *UserServiceTestSuite) TestExportUsers() {
	user := suite.newUser(models.UserRoleLender)
	suite.mockUserRepo.EXPECT().ListByIDs(suite.tenant.ID, []uuid.UUID{user.ID}).Return([]models.User{*user}, nil).Times(1)

	var buf bytes.Buffer
	require.NoError(suite.T(), suite.userService.Export(suite.actor, &service.BulkIDsRequest{IDs: []uuid.UUID{user.ID}}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("Users")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), []string{"id", "name", "email", "role", "phone", "last_login_at", "created_at"}, rows[0])
	assert.Equal(suite.T(), "lender", rows[1][3])
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
