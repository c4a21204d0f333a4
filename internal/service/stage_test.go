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

// StageServiceTestSuite defines the test suite for StageService
type StageServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockStageRepo *mocks.MockStageRepositoryInterface
	stageService  *service.StageService
	actor         service.Actor
}

// SetupTest sets up the test suite
func (suite *StageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.stageService = service.NewStageService(suite.mockStageRepo, service.NewValidator())
	suite.actor = service.Actor{UserID: uuid.New(), TenantID: uuid.New(), Role: models.UserRoleOwner}
}

// TearDownTest cleans up after each test
func (suite *StageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StageServiceTestSuite) newStage(name string, position int, isDefault bool) *models.Stage {
	stage := &models.Stage{TenantID: suite.actor.TenantID, Name: name, Position: position, IsDefault: isDefault}
	stage.ID = uuid.New()
	return stage
}

// TestCreateStageAppends tests that a stage without a position goes last
func (suite *StageServiceTestSuite) TestCreateStageAppends() {
	req := &service.CreateStageRequest{Name: "Nurture", IsDefault: true}

	suite.mockStageRepo.EXPECT().GetByName(suite.actor.TenantID, "Nurture").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockStageRepo.EXPECT().
		List(suite.actor.TenantID).
		Return([]models.Stage{*suite.newStage("Lead", 0, true), *suite.newStage("Closed", 4, false)}, nil).
		Times(1)
	suite.mockStageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(s *models.Stage) error {
			s.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockStageRepo.EXPECT().SetDefault(suite.actor.TenantID, gomock.Any()).Return(nil).Times(1)

	response, err := suite.stageService.Create(suite.actor, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, response.Position)
	assert.True(suite.T(), response.IsDefault)
}

// TestCreateStageDuplicateName tests the per-tenant name uniqueness
func (suite *StageServiceTestSuite) TestCreateStageDuplicateName() {
	suite.mockStageRepo.EXPECT().GetByName(suite.actor.TenantID, "Lead").Return(suite.newStage("Lead", 0, true), nil).Times(1)

	_, err := suite.stageService.Create(suite.actor, &service.CreateStageRequest{Name: "Lead"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStageExists)
}

// TestUpdateStageCannotUnsetDefault tests that the default flag can only move to another stage
func (suite *StageServiceTestSuite) TestUpdateStageCannotUnsetDefault() {
	stage := suite.newStage("Lead", 0, true)
	off := false

	suite.mockStageRepo.EXPECT().GetByID(suite.actor.TenantID, stage.ID).Return(stage, nil).Times(1)

	_, err := suite.stageService.Update(suite.actor, stage.ID, &service.UpdateStageRequest{IsDefault: &off})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateStageMakeDefault tests promoting a stage to default
func (suite *StageServiceTestSuite) TestUpdateStageMakeDefault() {
	stage := suite.newStage("Hot", 2, false)
	on := true
	name := "Hot prospect"

	suite.mockStageRepo.EXPECT().GetByID(suite.actor.TenantID, stage.ID).Return(stage, nil).Times(1)
	suite.mockStageRepo.EXPECT().GetByName(suite.actor.TenantID, name).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockStageRepo.EXPECT().Update(stage).Return(nil).Times(1)
	suite.mockStageRepo.EXPECT().SetDefault(suite.actor.TenantID, stage.ID).Return(nil).Times(1)

	response, err := suite.stageService.Update(suite.actor, stage.ID, &service.UpdateStageRequest{Name: &name, IsDefault: &on})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), name, response.Name)
	assert.True(suite.T(), response.IsDefault)
}

// TestDeleteStageReassignsPeople tests moving people to the default stage
func (suite *StageServiceTestSuite) TestDeleteStageReassignsPeople() {
	stage := suite.newStage("Cold", 3, false)
	fallback := suite.newStage("Lead", 0, true)

	suite.mockStageRepo.EXPECT().GetByID(suite.actor.TenantID, stage.ID).Return(stage, nil).Times(1)
	suite.mockStageRepo.EXPECT().GetDefault(suite.actor.TenantID).Return(fallback, nil).Times(1)
	suite.mockStageRepo.EXPECT().DeleteAndReassign(suite.actor.TenantID, stage.ID, fallback.ID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.stageService.Delete(suite.actor, stage.ID))
}

// TestDeleteDefaultStage tests that the default stage is protected
func (suite *StageServiceTestSuite) TestDeleteDefaultStage() {
	stage := suite.newStage("Lead", 0, true)
	suite.mockStageRepo.EXPECT().GetByID(suite.actor.TenantID, stage.ID).Return(stage, nil).Times(1)

	assert.ErrorIs(suite.T(), suite.stageService.Delete(suite.actor, stage.ID), apperrors.ErrDefaultStageDelete)
}

// TestGetStageNotFound tests getting a stage of another tenant
func (suite *StageServiceTestSuite) TestGetStageNotFound() {
	id := uuid.New()
	suite.mockStageRepo.EXPECT().GetByID(suite.actor.TenantID, id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.stageService.Get(suite.actor, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStageNotFound)
}

// TestStageServiceTestSuite runs the test suite
func TestStageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StageServiceTestSuite))
}
