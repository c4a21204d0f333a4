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

// PersonRepositoryTestSuite tests the PersonRepository against Postgres
type PersonRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PersonRepository
	tags          *TagRepository
	collaborators *CollaboratorRepository
	ponds         *PondRepository
	groups        *GroupRepository
	factories     *testutils.FactorySet

	tenant *models.Tenant
	owner  *models.User
	agent  *models.User
	stages []models.Stage
}

// SetupSuite runs before all tests in the suite
func (suite *PersonRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.repo = NewPersonRepository(db)
	suite.tags = NewTagRepository(db)
	suite.collaborators = NewCollaboratorRepository(db)
	suite.ponds = NewPondRepository(db)
	suite.groups = NewGroupRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PersonRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a tenant with an owner and an agent
func (suite *PersonRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant, suite.owner, suite.agent, suite.stages = suite.factories.CreateTenantHierarchy()
	suite.Require().NoError(NewTenantRepository(suite.baseTestSuite.DB).CreateWithOwner(suite.tenant, suite.owner, suite.stages))
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(suite.agent))
}

// TearDownTest runs after each test
func (suite *PersonRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PersonRepositoryTestSuite) create(person *models.Person) *models.Person {
	suite.Require().NoError(suite.repo.Create(person))
	return person
}

// TestCreate_WithNestedRecords tests that contact points and tags are written with the person
func (suite *PersonRepositoryTestSuite) TestCreate_WithNestedRecords() {
	person := suite.factories.Person.WithContacts(suite.tenant.ID, "jane@example.com", "512-555-0100")
	person.StageID = &suite.stages[0].ID
	person.Addresses = []models.Address{{City: "Austin", State: "TX", IsPrimary: true}}
	person.Tags = []models.Tag{{Name: "buyer"}}
	suite.create(person)

	found, err := suite.repo.GetByID(suite.tenant.ID, person.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.Stage)
	suite.Equal("New", found.Stage.Name)
	suite.Equal("jane@example.com", found.PrimaryEmail())
	suite.Equal("512-555-0100", found.PrimaryPhone())
	suite.Len(found.Addresses, 1)
	suite.Len(found.Tags, 1)
	suite.True(found.Claimed)
}

// TestGetByID_OtherTenant tests tenant isolation
func (suite *PersonRepositoryTestSuite) TestGetByID_OtherTenant() {
	person := suite.create(suite.factories.Person.WithTenant(suite.tenant.ID))

	_, err := suite.repo.GetByID(uuid.New(), person.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	exists, err := suite.repo.Exists(uuid.New(), person.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestList_Filters tests search, tag, stage and contacted filters with sorting
func (suite *PersonRepositoryTestSuite) TestList_Filters() {
	jane := suite.factories.Person.WithContacts(suite.tenant.ID, "jane@example.com", "512-555-0100")
	jane.StageID = &suite.stages[1].ID
	jane.Contacted = true
	suite.create(jane)
	suite.Require().NoError(suite.tags.AddNames(jane.ID, []string{"VIP", "vip", " buyer "}))

	bob := suite.factories.Person.WithName(suite.tenant.ID, "Bob", "Brown")
	bob.Source = "Website"
	suite.create(bob)

	suite.Run("search by email", func() {
		people, total, err := suite.repo.List(suite.tenant.ID, PersonFilter{Search: "jane@exa"})
		suite.NoError(err)
		suite.Equal(int64(1), total)
		suite.Equal(jane.ID, people[0].ID)
	})

	suite.Run("search by full name", func() {
		_, total, err := suite.repo.List(suite.tenant.ID, PersonFilter{Search: "bob brown"})
		suite.NoError(err)
		suite.Equal(int64(1), total)
	})

	suite.Run("tag is case-insensitive and deduplicated", func() {
		people, total, err := suite.repo.List(suite.tenant.ID, PersonFilter{Tag: "vip"})
		suite.NoError(err)
		suite.Equal(int64(1), total)
		suite.Len(people[0].Tags, 2)
	})

	suite.Run("stage and contacted", func() {
		contacted := true
		_, total, err := suite.repo.List(suite.tenant.ID, PersonFilter{StageID: &suite.stages[1].ID, Contacted: &contacted})
		suite.NoError(err)
		suite.Equal(int64(1), total)
	})

	suite.Run("source", func() {
		people, _, err := suite.repo.List(suite.tenant.ID, PersonFilter{Source: "website"})
		suite.NoError(err)
		suite.Require().Len(people, 1)
		suite.Equal(bob.ID, people[0].ID)
	})

	suite.Run("sorted by first name with paging", func() {
		people, total, err := suite.repo.List(suite.tenant.ID, PersonFilter{SortBy: "first_name", SortDir: "asc", Limit: 1})
		suite.NoError(err)
		suite.Equal(int64(2), total)
		suite.Require().Len(people, 1)
		suite.Equal("Bob", people[0].FirstName)
	})
}

// TestVisibleTo tests the assignment, collaborator, pond and open group visibility paths
func (suite *PersonRepositoryTestSuite) TestVisibleTo() {
	agentID := suite.agent.ID

	assigned := suite.create(suite.factories.Person.AssignedTo(suite.tenant.ID, agentID))
	hidden := suite.create(suite.factories.Person.AssignedTo(suite.tenant.ID, suite.owner.ID))

	shared := suite.create(suite.factories.Person.AssignedTo(suite.tenant.ID, suite.owner.ID))
	suite.Require().NoError(suite.collaborators.Create(&models.Collaborator{PersonID: shared.ID, UserID: agentID, Role: models.CollaboratorRoleViewer}))

	pond := suite.factories.Pond.WithOwner(suite.tenant.ID, suite.owner.ID)
	pond.Users = []models.User{{BaseModel: models.BaseModel{ID: agentID}}}
	suite.Require().NoError(suite.ponds.Create(pond))
	pooled := suite.factories.Person.WithTenant(suite.tenant.ID)
	pooled.AssignedPondID = &pond.ID
	suite.create(pooled)

	group := suite.factories.Group.WithMembers(suite.tenant.ID, agentID)
	suite.Require().NoError(suite.groups.Create(group))
	open := suite.create(suite.factories.Person.WithTenant(suite.tenant.ID))
	open.AssignedGroupID = &group.ID
	open.Claimed = false
	suite.Require().NoError(suite.repo.Update(open))

	people, total, err := suite.repo.List(suite.tenant.ID, PersonFilter{VisibleTo: &agentID})
	suite.NoError(err)
	suite.Equal(int64(4), total)

	ids := make([]uuid.UUID, len(people))
	for i := range people {
		ids[i] = people[i].ID
	}
	suite.ElementsMatch([]uuid.UUID{assigned.ID, shared.ID, pooled.ID, open.ID}, ids)

	visible, err := suite.repo.IsVisibleTo(suite.tenant.ID, hidden.ID, agentID)
	suite.NoError(err)
	suite.False(visible)

	visible, err = suite.repo.IsVisibleTo(suite.tenant.ID, shared.ID, agentID)
	suite.NoError(err)
	suite.True(visible)
}

// TestClaim tests that only the first claim on an open lead wins
func (suite *PersonRepositoryTestSuite) TestClaim() {
	person := suite.create(suite.factories.Person.WithTenant(suite.tenant.ID))
	expires := time.Now().Add(15 * time.Minute)
	person.Claimed = false
	person.ClaimExpiresAt = &expires
	suite.Require().NoError(suite.repo.Update(person))

	won, err := suite.repo.Claim(suite.tenant.ID, person.ID, suite.agent.ID)
	suite.NoError(err)
	suite.True(won)

	won, err = suite.repo.Claim(suite.tenant.ID, person.ID, suite.owner.ID)
	suite.NoError(err)
	suite.False(won)

	found, err := suite.repo.GetByID(suite.tenant.ID, person.ID)
	suite.NoError(err)
	suite.True(found.Claimed)
	suite.Require().NotNil(found.AssignedUserID)
	suite.Equal(suite.agent.ID, *found.AssignedUserID)
}

// TestUpdate_KeepsChildren tests that saving the person leaves contact points alone
func (suite *PersonRepositoryTestSuite) TestUpdate_KeepsChildren() {
	person := suite.create(suite.factories.Person.WithContacts(suite.tenant.ID, "jane@example.com", "512-555-0100"))

	person.Emails = nil
	person.FirstName = "Janet"
	suite.NoError(suite.repo.Update(person))

	found, err := suite.repo.GetByID(suite.tenant.ID, person.ID)
	suite.NoError(err)
	suite.Equal("Janet", found.FirstName)
	suite.Len(found.Emails, 1)
}

// TestDeleteAndCount tests soft deletes against the plan quota count
func (suite *PersonRepositoryTestSuite) TestDeleteAndCount() {
	a := suite.create(suite.factories.Person.WithTenant(suite.tenant.ID))
	b := suite.create(suite.factories.Person.WithTenant(suite.tenant.ID))
	c := suite.create(suite.factories.Person.WithTenant(suite.tenant.ID))

	count, err := suite.repo.CountByTenant(suite.tenant.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)

	suite.NoError(suite.repo.Delete(suite.tenant.ID, a.ID))
	suite.ErrorIs(suite.repo.Delete(suite.tenant.ID, a.ID), gorm.ErrRecordNotFound)

	deleted, err := suite.repo.BulkDelete(suite.tenant.ID, []uuid.UUID{a.ID, b.ID, c.ID})
	suite.NoError(err)
	suite.Equal(int64(2), deleted)

	count, err = suite.repo.CountByTenant(suite.tenant.ID)
	suite.NoError(err)
	suite.Zero(count)
}

// TestPersonRepositoryTestSuite runs the test suite
func TestPersonRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PersonRepositoryTestSuite))
}
