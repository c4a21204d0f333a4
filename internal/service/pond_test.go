package service_test

import (
	"testing"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/mocks"
	"dealspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PondServiceTestSuite defines the test suite for PondService
type PondServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPondRepo *mocks.MockPondRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	pondService  *service.PondService
	actor        service.Actor
}

// SetupTest sets up the test suite
func (suite *PondServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPondRepo = mocks.NewMockPondRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.pondService = service.NewPondService(suite.mockPondRepo, suite.mockUserRepo, service.NewValidator())
	suite.actor = service.Actor{UserID: uuid.New(), TenantID: uuid.New(), Role: models.UserRoleAdmin}
}

// TearDownTest cleans up after each test
func (suite *PondServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PondServiceTestSuite) newUser(name string) models.User {
	user := models.User{TenantID: suite.actor.TenantID, Name: name}
	user.ID = uuid.New()
	return user
}

// TestCreatePondOwnedByActor tests that the owner defaults to the acting user
func (suite *PondServiceTestSuite) TestCreatePondOwnedByActor() {
	member := suite.newUser("Jane")

	suite.mockUserRepo.EXPECT().ListByIDs(suite.actor.TenantID, []uuid.UUID{member.ID}).Return([]models.User{member}, nil).Times(1)

	var created *models.Pond
	suite.mockPondRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Pond) error {
			p.ID = uuid.New()
			created = p
			return nil
		}).
		Times(1)
	suite.mockPondRepo.EXPECT().
		GetByID(suite.actor.TenantID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID) (*models.Pond, error) { return created, nil }).
		Times(1)

	response, err := suite.pondService.Create(suite.actor, &service.PondRequest{Name: "Cold leads", UserIDs: []uuid.UUID{member.ID}})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.actor.UserID, response.UserID)
	assert.Equal(suite.T(), []uuid.UUID{member.ID}, response.UserIDs)
	assert.Equal(suite.T(), suite.actor.TenantID, created.TenantID)
}

// TestCreatePondForeignOwner tests rejecting an owner from another tenant
func (suite *PondServiceTestSuite) TestCreatePondForeignOwner() {
	ownerID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(suite.actor.TenantID, ownerID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.pondService.Create(suite.actor, &service.PondRequest{Name: "Cold leads", UserID: &ownerID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotInTenant)
}

// TestUpdatePondKeepsOwner tests that omitting the owner keeps the current one
func (suite *PondServiceTestSuite) TestUpdatePondKeepsOwner() {
	owner := suite.newUser("Owner")
	pond := &models.Pond{Name: "Cold leads", UserID: owner.ID}
	pond.ID = uuid.New()
	pond.TenantID = suite.actor.TenantID

	suite.mockPondRepo.EXPECT().GetByID(suite.actor.TenantID, pond.ID).Return(pond, nil).Times(2)
	suite.mockUserRepo.EXPECT().GetByID(suite.actor.TenantID, owner.ID).Return(&owner, nil).Times(1)
	suite.mockPondRepo.EXPECT().Update(pond).Return(nil).Times(1)
	suite.mockPondRepo.EXPECT().ReplaceUsers(pond, []models.User{}).Return(nil).Times(1)

	response, err := suite.pondService.Update(suite.actor, pond.ID, &service.PondRequest{Name: "Warm leads"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Warm leads", response.Name)
	assert.Equal(suite.T(), owner.ID, response.UserID)
}

// TestListPonds tests paging defaults
func (suite *PondServiceTestSuite) TestListPonds() {
	suite.mockPondRepo.EXPECT().List(suite.actor.TenantID, 15, 0).Return([]models.Pond{{Name: "A"}}, int64(1), nil).Times(1)

	response, err := suite.pondService.List(suite.actor, 0, 0)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Ponds, 1)
	assert.Equal(suite.T(), 15, response.Meta.PerPage)
}

// TestDeletePondNotFound tests deleting a missing pond
func (suite *PondServiceTestSuite) TestDeletePondNotFound() {
	id := uuid.New()
	suite.mockPondRepo.EXPECT().Delete(suite.actor.TenantID, id).Return(gorm.ErrRecordNotFound).Times(1)

	assert.ErrorIs(suite.T(), suite.pondService.Delete(suite.actor, id), apperrors.ErrPondNotFound)
}

// TestPondServiceTestSuite runs the test suite
func TestPondServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PondServiceTestSuite))
}
