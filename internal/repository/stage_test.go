//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"dealspace-backend/internal/database/models"
	"dealspace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantDataTestSuite tests stages, lead flow rules and contact points
type TenantDataTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	stages        *StageRepository
	rules         *LeadFlowRuleRepository
	emails        *EmailRepository
	people        *PersonRepository
	factories     *testutils.FactorySet

	tenant        *models.Tenant
	owner         *models.User
	defaultStages []models.Stage
}

// SetupSuite runs before all tests in the suite
func (suite *TenantDataTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.stages = NewStageRepository(db)
	suite.rules = NewLeadFlowRuleRepository(db)
	suite.emails = NewEmailRepository(db)
	suite.people = NewPersonRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantDataTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantDataTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant, suite.owner, _, suite.defaultStages = suite.factories.CreateTenantHierarchy()
	suite.Require().NoError(NewTenantRepository(suite.baseTestSuite.DB).CreateWithOwner(suite.tenant, suite.owner, suite.defaultStages))
}

// TearDownTest runs after each test
func (suite *TenantDataTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestStages_DefaultAndOrder tests listing order and the default lookup
func (suite *TenantDataTestSuite) TestStages_DefaultAndOrder() {
	stages, err := suite.stages.List(suite.tenant.ID)
	suite.NoError(err)
	suite.Require().Len(stages, len(models.DefaultStageNames))
	for i, stage := range stages {
		suite.Equal(models.DefaultStageNames[i], stage.Name)
	}

	def, err := suite.stages.GetDefault(suite.tenant.ID)
	suite.NoError(err)
	suite.Equal("New", def.Name)

	found, err := suite.stages.GetByName(suite.tenant.ID, "qualified")
	suite.NoError(err)
	suite.Equal("Qualified", found.Name)
}

// TestStages_DuplicateName tests the per-tenant unique name
func (suite *TenantDataTestSuite) TestStages_DuplicateName() {
	err := suite.stages.Create(suite.factories.Stage.WithTenant(suite.tenant.ID, "Closed"))
	suite.Error(err)

	err = suite.stages.Create(suite.factories.Stage.WithTenant(uuid.New(), "Closed"))
	suite.NoError(err)
}

// TestStages_SetDefault tests that exactly one stage stays default
func (suite *TenantDataTestSuite) TestStages_SetDefault() {
	target := suite.defaultStages[2]

	suite.NoError(suite.stages.SetDefault(suite.tenant.ID, target.ID))

	def, err := suite.stages.GetDefault(suite.tenant.ID)
	suite.NoError(err)
	suite.Equal(target.ID, def.ID)

	var defaults int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Stage{}).
		Where("tenant_id = ? AND is_default = ?", suite.tenant.ID, true).Count(&defaults).Error)
	suite.Equal(int64(1), defaults)

	suite.ErrorIs(suite.stages.SetDefault(suite.tenant.ID, uuid.New()), gorm.ErrRecordNotFound)
}

// TestStages_DeleteAndReassign tests that people move to the fallback stage
func (suite *TenantDataTestSuite) TestStages_DeleteAndReassign() {
	doomed := suite.defaultStages[3]
	fallback := suite.defaultStages[0]

	person := suite.factories.Person.WithTenant(suite.tenant.ID)
	person.StageID = &doomed.ID
	suite.Require().NoError(suite.people.Create(person))

	suite.NoError(suite.stages.DeleteAndReassign(suite.tenant.ID, doomed.ID, fallback.ID))

	found, err := suite.people.GetByID(suite.tenant.ID, person.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.StageID)
	suite.Equal(fallback.ID, *found.StageID)

	_, err = suite.stages.GetByID(suite.tenant.ID, doomed.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestLeadFlowRules_Order tests evaluation order and jsonb columns
func (suite *TenantDataTestSuite) TestLeadFlowRules_Order() {
	late := suite.factories.LeadFlowRule.WithSource(suite.tenant.ID, "Website", 20, suite.owner.ID)
	early := suite.factories.LeadFlowRule.WithSource(suite.tenant.ID, "Zillow", 10, suite.owner.ID)
	paused := suite.factories.LeadFlowRule.WithSource(suite.tenant.ID, "Realtor", 5, suite.owner.ID)
	for _, rule := range []*models.LeadFlowRule{late, early, paused} {
		suite.Require().NoError(suite.rules.Create(rule))
	}
	paused.IsActive = false
	suite.Require().NoError(suite.rules.Update(paused))

	all, err := suite.rules.List(suite.tenant.ID)
	suite.NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(paused.ID, all[0].ID)

	active, err := suite.rules.ListActive(suite.tenant.ID)
	suite.NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal(early.ID, active[0].ID)
	suite.Equal(late.ID, active[1].ID)

	suite.Require().Len(active[0].Conditions, 1)
	suite.Equal(models.FieldSource, active[0].Conditions[0].Field)
	suite.Equal("Zillow", active[0].Conditions[0].Value)
	suite.Equal(models.StringList{"inbound"}, active[0].Tags)

	suite.NoError(suite.rules.Delete(suite.tenant.ID, late.ID))
	suite.ErrorIs(suite.rules.Delete(suite.tenant.ID, late.ID), gorm.ErrRecordNotFound)
}

// TestEmails_PrimaryInvariant tests that a person keeps exactly one primary email
func (suite *TenantDataTestSuite) TestEmails_PrimaryInvariant() {
	person := suite.factories.Person.WithTenant(suite.tenant.ID)
	suite.Require().NoError(suite.people.Create(person))

	first := &models.Email{PersonChildModel: models.PersonChildModel{PersonID: person.ID}, Value: "one@example.com"}
	suite.Require().NoError(suite.emails.Create(first))
	suite.True(first.IsPrimary)

	// created_at decides which row gets promoted
	time.Sleep(10 * time.Millisecond)
	second := &models.Email{PersonChildModel: models.PersonChildModel{PersonID: person.ID}, Value: "two@example.com"}
	suite.Require().NoError(suite.emails.Create(second))
	time.Sleep(10 * time.Millisecond)
	third := &models.Email{PersonChildModel: models.PersonChildModel{PersonID: person.ID}, Value: "three@example.com"}
	suite.Require().NoError(suite.emails.Create(third))

	suite.NoError(suite.emails.SetPrimary(person.ID, third.ID))
	emails, err := suite.emails.ListByPerson(person.ID)
	suite.NoError(err)
	suite.Equal(third.ID, emails[0].ID)
	suite.True(emails[0].IsPrimary)
	suite.False(emails[1].IsPrimary)
	suite.False(emails[2].IsPrimary)

	suite.NoError(suite.emails.Delete(person.ID, third.ID))
	emails, err = suite.emails.ListByPerson(person.ID)
	suite.NoError(err)
	suite.Require().Len(emails, 2)
	suite.Equal(first.ID, emails[0].ID)
	suite.True(emails[0].IsPrimary)

	suite.ErrorIs(suite.emails.SetPrimary(person.ID, uuid.New()), gorm.ErrRecordNotFound)

	// promoting through Update clears the old primary first
	second.IsPrimary = true
	suite.NoError(suite.emails.Update(second))
	emails, err = suite.emails.ListByPerson(person.ID)
	suite.NoError(err)
	suite.Equal(second.ID, emails[0].ID)
	suite.False(emails[1].IsPrimary)

	// the database refuses a second primary written around the repository
	rogue := &models.Email{PersonChildModel: models.PersonChildModel{PersonID: person.ID}, Value: "rogue@example.com", IsPrimary: true}
	suite.Error(suite.baseTestSuite.DB.Create(rogue).Error)
}

// TestTenantDataTestSuite runs the test suite
func TestTenantDataTestSuite(t *testing.T) {
	suite.Run(t, new(TenantDataTestSuite))
}
