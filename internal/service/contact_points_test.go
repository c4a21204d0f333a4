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

// ContactPointServiceTestSuite covers the email, phone and address services
type ContactPointServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	mockEmailRepo  *mocks.MockEmailRepositoryInterface
	mockPhoneRepo  *mocks.MockPhoneRepositoryInterface
	mockAddrRepo   *mocks.MockAddressRepositoryInterface
	emailService   *service.EmailService
	phoneService   *service.PhoneService
	addressService *service.AddressService

	owner    service.Actor
	agent    service.Actor
	personID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ContactPointServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockEmailRepo = mocks.NewMockEmailRepositoryInterface(suite.ctrl)
	suite.mockPhoneRepo = mocks.NewMockPhoneRepositoryInterface(suite.ctrl)
	suite.mockAddrRepo = mocks.NewMockAddressRepositoryInterface(suite.ctrl)

	v := service.NewValidator()
	suite.emailService = service.NewEmailService(suite.mockEmailRepo, suite.mockPersonRepo, v)
	suite.phoneService = service.NewPhoneService(suite.mockPhoneRepo, suite.mockPersonRepo, v)
	suite.addressService = service.NewAddressService(suite.mockAddrRepo, suite.mockPersonRepo, v)

	tenantID := uuid.New()
	suite.owner = service.Actor{UserID: uuid.New(), TenantID: tenantID, Role: models.UserRoleOwner}
	suite.agent = service.Actor{UserID: uuid.New(), TenantID: tenantID, Role: models.UserRoleAgent}
	suite.personID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ContactPointServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactPointServiceTestSuite) expectPerson() {
	suite.mockPersonRepo.EXPECT().Exists(suite.owner.TenantID, suite.personID).Return(true, nil).Times(1)
}

// TestCreateEmailDefaults tests normalizing a new email
func (suite *ContactPointServiceTestSuite) TestCreateEmailDefaults() {
	suite.expectPerson()
	suite.mockEmailRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	email, err := suite.emailService.Create(suite.owner, suite.personID, &service.EmailRequest{Value: " Ada@Example.COM "})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ada@example.com", email.Value)
	assert.Equal(suite.T(), models.EmailTypeHome, email.Type)
	assert.Equal(suite.T(), models.EmailStatusValid, email.Status)
	assert.Equal(suite.T(), suite.personID, email.PersonID)
}

// TestCreateEmailInvalid tests rejecting a malformed address before touching the store
func (suite *ContactPointServiceTestSuite) TestCreateEmailInvalid() {
	_, err := suite.emailService.Create(suite.owner, suite.personID, &service.EmailRequest{Value: "ada-at-example"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateEmailPersonMissing tests a person outside the tenant
func (suite *ContactPointServiceTestSuite) TestCreateEmailPersonMissing() {
	suite.mockPersonRepo.EXPECT().Exists(suite.owner.TenantID, suite.personID).Return(false, nil).Times(1)

	_, err := suite.emailService.Create(suite.owner, suite.personID, &service.EmailRequest{Value: "ada@example.com"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestListEmailsHiddenFromAgent tests that agents only reach people visible to them
func (suite *ContactPointServiceTestSuite) TestListEmailsHiddenFromAgent() {
	suite.mockPersonRepo.EXPECT().Exists(suite.agent.TenantID, suite.personID).Return(true, nil).Times(1)
	suite.mockPersonRepo.EXPECT().IsVisibleTo(suite.agent.TenantID, suite.personID, suite.agent.UserID).Return(false, nil).Times(1)

	_, err := suite.emailService.List(suite.agent, suite.personID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestUpdateEmailKeepsUnsetFields tests that empty type and status keep the stored values
func (suite *ContactPointServiceTestSuite) TestUpdateEmailKeepsUnsetFields() {
	existing := &models.Email{Value: "old@example.com", Type: models.EmailTypeWork, Status: models.EmailStatusBounced}
	existing.ID = uuid.New()
	existing.PersonID = suite.personID

	suite.expectPerson()
	suite.mockEmailRepo.EXPECT().GetByID(suite.personID, existing.ID).Return(existing, nil).Times(2)
	suite.mockEmailRepo.EXPECT().Update(existing).Return(nil).Times(1)

	email, err := suite.emailService.Update(suite.owner, suite.personID, existing.ID, &service.EmailRequest{Value: "new@example.com", IsPrimary: true})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new@example.com", email.Value)
	assert.Equal(suite.T(), models.EmailTypeWork, email.Type)
	assert.Equal(suite.T(), models.EmailStatusBounced, email.Status)
	assert.True(suite.T(), email.IsPrimary)
}

// TestSetPrimaryEmailNotFound tests promoting an email of another person
func (suite *ContactPointServiceTestSuite) TestSetPrimaryEmailNotFound() {
	id := uuid.New()
	suite.expectPerson()
	suite.mockEmailRepo.EXPECT().SetPrimary(suite.personID, id).Return(gorm.ErrRecordNotFound).Times(1)

	_, err := suite.emailService.SetPrimary(suite.owner, suite.personID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailNotFound)
}

// TestCreatePhone tests the phone defaults
func (suite *ContactPointServiceTestSuite) TestCreatePhone() {
	suite.expectPerson()
	suite.mockPhoneRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	phone, err := suite.phoneService.Create(suite.owner, suite.personID, &service.PhoneRequest{Value: "512-555-0100"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PhoneTypeMobile, phone.Type)
	assert.Equal(suite.T(), models.PhoneStatusValid, phone.Status)
}

// TestCreatePhoneInvalid tests rejecting a phone with letters
func (suite *ContactPointServiceTestSuite) TestCreatePhoneInvalid() {
	_, err := suite.phoneService.Create(suite.owner, suite.personID, &service.PhoneRequest{Value: "call me"})

	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestDeletePhone tests deleting a phone
func (suite *ContactPointServiceTestSuite) TestDeletePhone() {
	id := uuid.New()
	suite.expectPerson()
	suite.mockPhoneRepo.EXPECT().Delete(suite.personID, id).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.phoneService.Delete(suite.owner, suite.personID, id))
}

// TestCreateAddressNeedsAField tests that an empty address is rejected
func (suite *ContactPointServiceTestSuite) TestCreateAddressNeedsAField() {
	_, err := suite.addressService.Create(suite.owner, suite.personID, &service.AddressRequest{Type: models.AddressTypeWork})

	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateAddress tests creating an address with only a city
func (suite *ContactPointServiceTestSuite) TestCreateAddress() {
	suite.expectPerson()
	suite.mockAddrRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	address, err := suite.addressService.Create(suite.owner, suite.personID, &service.AddressRequest{City: "Austin"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Austin", address.City)
	assert.Equal(suite.T(), models.AddressTypeHome, address.Type)
}

// TestContactPointServiceTestSuite runs the test suite
func TestContactPointServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactPointServiceTestSuite))
}
