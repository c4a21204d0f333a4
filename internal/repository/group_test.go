//go:build integration
// +build integration

package repository

import (
	"testing"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests the GroupRepository
type GroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupRepository
	factories     *testutils.FactorySet

	tenant  *models.Tenant
	members []uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a tenant with three agents
func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant, owner, _, stages := suite.factories.CreateTenantHierarchy()
	suite.Require().NoError(NewTenantRepository(suite.baseTestSuite.DB).CreateWithOwner(tenant, owner, stages))
	suite.tenant = tenant

	users := NewUserRepository(suite.baseTestSuite.DB)
	suite.members = nil
	for i := 0; i < 3; i++ {
		agent := suite.factories.User.WithTenant(tenant.ID)
		suite.Require().NoError(users.Create(agent))
		suite.members = append(suite.members, agent.ID)
	}
}

// TearDownTest runs after each test
func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a group with its rotation
func (suite *GroupRepositoryTestSuite) TestCreate() {
	group := suite.factories.Group.WithMembers(suite.tenant.ID, suite.members[2], suite.members[0])

	err := suite.repo.Create(group)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, group.ID)
	suite.NotZero(group.CreatedAt)

	found, err := suite.repo.GetByID(suite.tenant.ID, group.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{suite.members[2], suite.members[0]}, found.MemberIDs())
	suite.Require().NotNil(found.Members[0].User)
	suite.Equal(-1, found.LastAssignedIndex)
}

// TestCreate_SinglePrimary tests that a new primary group demotes the previous one
func (suite *GroupRepositoryTestSuite) TestCreate_SinglePrimary() {
	first := suite.factories.Group.WithMembers(suite.tenant.ID)
	first.IsPrimary = true
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.Group.WithMembers(suite.tenant.ID)
	second.Name = "Sellers"
	second.IsPrimary = true
	suite.Require().NoError(suite.repo.Create(second))

	found, err := suite.repo.GetByID(suite.tenant.ID, first.ID)
	suite.NoError(err)
	suite.False(found.IsPrimary)

	groups, total, err := suite.repo.List(suite.tenant.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(second.ID, groups[0].ID)
}

// TestNextRoundRobinMember tests the rotation wraps around in member order
func (suite *GroupRepositoryTestSuite) TestNextRoundRobinMember() {
	group := suite.factories.Group.WithMembers(suite.tenant.ID, suite.members...)
	suite.Require().NoError(suite.repo.Create(group))

	var picked []uuid.UUID
	for i := 0; i < 4; i++ {
		next, err := suite.repo.NextRoundRobinMember(suite.tenant.ID, group.ID)
		suite.Require().NoError(err)
		picked = append(picked, next)
	}

	suite.Equal([]uuid.UUID{suite.members[0], suite.members[1], suite.members[2], suite.members[0]}, picked)
}

// TestNextRoundRobinMember_Empty tests the empty group error
func (suite *GroupRepositoryTestSuite) TestNextRoundRobinMember_Empty() {
	group := suite.factories.Group.WithMembers(suite.tenant.ID)
	suite.Require().NoError(suite.repo.Create(group))

	_, err := suite.repo.NextRoundRobinMember(suite.tenant.ID, group.ID)
	suite.ErrorIs(err, apperrors.ErrGroupHasNoMembers)

	_, err = suite.repo.NextRoundRobinMember(suite.tenant.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestNextRoundRobinMember_SkipsDeletedUser tests that deleting a user drops them from the rotation
func (suite *GroupRepositoryTestSuite) TestNextRoundRobinMember_SkipsDeletedUser() {
	db := suite.baseTestSuite.DB
	group := suite.factories.Group.WithMembers(suite.tenant.ID, suite.members...)
	suite.Require().NoError(suite.repo.Create(group))
	_, err := suite.repo.NextRoundRobinMember(suite.tenant.ID, group.ID)
	suite.Require().NoError(err)

	pond := suite.factories.Pond.WithOwner(suite.tenant.ID, suite.members[0])
	pond.Users = []models.User{{BaseModel: models.BaseModel{ID: suite.members[1]}}}
	suite.Require().NoError(NewPondRepository(db).Create(pond))

	rule := suite.factories.LeadFlowRule.WithSource(suite.tenant.ID, "Zillow", 1, suite.members[1])
	suite.Require().NoError(NewLeadFlowRuleRepository(db).Create(rule))

	suite.Require().NoError(NewUserRepository(db).Delete(suite.tenant.ID, suite.members[1]))

	var picked []uuid.UUID
	for i := 0; i < 3; i++ {
		next, err := suite.repo.NextRoundRobinMember(suite.tenant.ID, group.ID)
		suite.Require().NoError(err)
		picked = append(picked, next)
	}
	suite.Equal([]uuid.UUID{suite.members[0], suite.members[2], suite.members[0]}, picked)

	isMember, err := suite.repo.IsMember(group.ID, suite.members[1])
	suite.NoError(err)
	suite.False(isMember)

	var pondLinks int64
	suite.NoError(db.Table("pond_users").Where("user_id = ?", suite.members[1]).Count(&pondLinks).Error)
	suite.Zero(pondLinks)

	var stored models.LeadFlowRule
	suite.NoError(db.First(&stored, "id = ?", rule.ID).Error)
	suite.False(stored.IsActive)
}

// TestReplaceMembers tests rewriting the rotation resets the cursor
func (suite *GroupRepositoryTestSuite) TestReplaceMembers() {
	group := suite.factories.Group.WithMembers(suite.tenant.ID, suite.members...)
	suite.Require().NoError(suite.repo.Create(group))
	_, err := suite.repo.NextRoundRobinMember(suite.tenant.ID, group.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.repo.ReplaceMembers(group.ID, []uuid.UUID{suite.members[1]}))

	found, err := suite.repo.GetByID(suite.tenant.ID, group.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{suite.members[1]}, found.MemberIDs())
	suite.Equal(-1, found.LastAssignedIndex)

	isMember, err := suite.repo.IsMember(group.ID, suite.members[0])
	suite.NoError(err)
	suite.False(isMember)

	isMember, err = suite.repo.IsMember(group.ID, suite.members[1])
	suite.NoError(err)
	suite.True(isMember)
}

// TestDelete tests that people lose the group assignment
func (suite *GroupRepositoryTestSuite) TestDelete() {
	group := suite.factories.Group.WithMembers(suite.tenant.ID, suite.members[0])
	suite.Require().NoError(suite.repo.Create(group))

	people := NewPersonRepository(suite.baseTestSuite.DB)
	person := suite.factories.Person.WithTenant(suite.tenant.ID)
	person.AssignedGroupID = &group.ID
	suite.Require().NoError(people.Create(person))

	suite.NoError(suite.repo.Delete(suite.tenant.ID, group.ID))

	_, err := suite.repo.GetByID(suite.tenant.ID, group.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	found, err := people.GetByID(suite.tenant.ID, person.ID)
	suite.NoError(err)
	suite.Nil(found.AssignedGroupID)

	suite.ErrorIs(suite.repo.Delete(suite.tenant.ID, group.ID), gorm.ErrRecordNotFound)
}

// TestGroupRepositoryTestSuite runs the test suite
func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}
