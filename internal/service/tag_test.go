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

// TagServiceTestSuite defines the test suite for TagService and CollaboratorService
type TagServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockPersonRepo      *mocks.MockPersonRepositoryInterface
	mockTagRepo         *mocks.MockTagRepositoryInterface
	mockCollabRepo      *mocks.MockCollaboratorRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	tagService          *service.TagService
	collaboratorService *service.CollaboratorService

	actor    service.Actor
	personID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TagServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockTagRepo = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.mockCollabRepo = mocks.NewMockCollaboratorRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	v := service.NewValidator()
	suite.tagService = service.NewTagService(suite.mockTagRepo, suite.mockPersonRepo, v)
	suite.collaboratorService = service.NewCollaboratorService(suite.mockCollabRepo, suite.mockPersonRepo, suite.mockUserRepo, v)

	suite.actor = service.Actor{UserID: uuid.New(), TenantID: uuid.New(), Role: models.UserRoleAdmin}
	suite.personID = uuid.New()
	suite.mockPersonRepo.EXPECT().Exists(suite.actor.TenantID, suite.personID).Return(true, nil).AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *TagServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTag tests adding a tag
func (suite *TagServiceTestSuite) TestCreateTag() {
	suite.mockTagRepo.EXPECT().GetByName(suite.personID, "Buyer").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockTagRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	tag, err := suite.tagService.Create(suite.actor, suite.personID, &service.TagRequest{Name: " Buyer ", Color: "#ff8800"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Buyer", tag.Name)
	assert.Equal(suite.T(), suite.personID, tag.PersonID)
}

// TestCreateTagDuplicate tests that tag names are unique per person
func (suite *TagServiceTestSuite) TestCreateTagDuplicate() {
	existing := &models.Tag{PersonID: suite.personID, Name: "buyer"}
	existing.ID = uuid.New()
	suite.mockTagRepo.EXPECT().GetByName(suite.personID, "Buyer").Return(existing, nil).Times(1)

	_, err := suite.tagService.Create(suite.actor, suite.personID, &service.TagRequest{Name: "Buyer"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTagExists)
}

// TestCreateTagBadColor tests the hex color rule
func (suite *TagServiceTestSuite) TestCreateTagBadColor() {
	_, err := suite.tagService.Create(suite.actor, suite.personID, &service.TagRequest{Name: "Buyer", Color: "orange"})

	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestUpdateTagRecase tests renaming a tag to a different case of the same name
func (suite *TagServiceTestSuite) TestUpdateTagRecase() {
	existing := &models.Tag{PersonID: suite.personID, Name: "buyer"}
	existing.ID = uuid.New()
	suite.mockTagRepo.EXPECT().GetByID(suite.personID, existing.ID).Return(existing, nil).Times(1)
	suite.mockTagRepo.EXPECT().Update(existing).Return(nil).Times(1)

	tag, err := suite.tagService.Update(suite.actor, suite.personID, existing.ID, &service.TagRequest{Name: "Buyer"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Buyer", tag.Name)
}

// TestDeleteTagNotFound tests deleting a missing tag
func (suite *TagServiceTestSuite) TestDeleteTagNotFound() {
	id := uuid.New()
	suite.mockTagRepo.EXPECT().Delete(suite.personID, id).Return(gorm.ErrRecordNotFound).Times(1)

	assert.ErrorIs(suite.T(), suite.tagService.Delete(suite.actor, suite.personID, id), apperrors.ErrTagNotFound)
}

// TestCreateCollaborator tests sharing a person with a tenant user
func (suite *TagServiceTestSuite) TestCreateCollaborator() {
	user := &models.User{TenantID: suite.actor.TenantID, Name: "Jane"}
	user.ID = uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(suite.actor.TenantID, user.ID).Return(user, nil).Times(1)
	suite.mockCollabRepo.EXPECT().GetByUser(suite.personID, user.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockCollabRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	collaborator, err := suite.collaboratorService.Create(suite.actor, suite.personID, &service.CollaboratorRequest{UserID: user.ID})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CollaboratorRoleViewer, collaborator.Role)
	assert.Equal(suite.T(), user, collaborator.User)
}

// TestCreateCollaboratorTwice tests that a user is shared at most once
func (suite *TagServiceTestSuite) TestCreateCollaboratorTwice() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(suite.actor.TenantID, userID).Return(&models.User{}, nil).Times(1)
	suite.mockCollabRepo.EXPECT().GetByUser(suite.personID, userID).Return(&models.Collaborator{}, nil).Times(1)

	_, err := suite.collaboratorService.Create(suite.actor, suite.personID, &service.CollaboratorRequest{UserID: userID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCollaboratorExists)
}

// TestCreateCollaboratorForeignUser tests rejecting a user of another tenant
func (suite *TagServiceTestSuite) TestCreateCollaboratorForeignUser() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(suite.actor.TenantID, userID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.collaboratorService.Create(suite.actor, suite.personID, &service.CollaboratorRequest{UserID: userID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotInTenant)
}

// TestTagServiceTestSuite runs the test suite
func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
