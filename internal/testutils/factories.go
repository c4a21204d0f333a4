package testutils

import (
	"time"

	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant on the free plan
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Realty",
		Plan: models.PlanFree,
	}
}

// WithPlan sets the subscription plan
func (f *TenantFactory) WithPlan(plan models.Plan) *models.Tenant {
	tenant := f.Create()
	tenant.Plan = plan
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test agent with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		Name:     "Alex Agent",
		// Unique per user to satisfy the live-email index
		Email: "agent-" + id.String()[:8] + "@test.com",
		Role:  models.UserRoleAgent,
		Phone: "+1-555-0123",
	}
}

// WithTenant sets the tenant
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	return user
}

// WithRole sets the tenant and role
func (f *UserFactory) WithRole(tenantID uuid.UUID, role models.UserRole) *models.User {
	user := f.WithTenant(tenantID)
	user.Role = role
	return user
}

// WithEmail sets a custom email
func (f *UserFactory) WithEmail(tenantID uuid.UUID, email string) *models.User {
	user := f.WithTenant(tenantID)
	user.Email = email
	return user
}

// StageFactory provides methods to create test Stage data
type StageFactory struct{}

// NewStageFactory creates a new StageFactory
func NewStageFactory() *StageFactory {
	return &StageFactory{}
}

// Create creates a non-default stage
func (f *StageFactory) Create() *models.Stage {
	return &models.Stage{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  uuid.New(),
		Name:      "Stage " + uuid.NewString()[:6],
		Position:  1,
	}
}

// Defaults returns the stages every new tenant starts with, the first one default
func (f *StageFactory) Defaults(tenantID uuid.UUID) []models.Stage {
	stages := make([]models.Stage, len(models.DefaultStageNames))
	for i, name := range models.DefaultStageNames {
		stages[i] = models.Stage{
			BaseModel: models.BaseModel{ID: uuid.New()},
			TenantID:  tenantID,
			Name:      name,
			Position:  i + 1,
			IsDefault: i == 0,
		}
	}
	return stages
}

// WithTenant sets the tenant and name
func (f *StageFactory) WithTenant(tenantID uuid.UUID, name string) *models.Stage {
	stage := f.Create()
	stage.TenantID = tenantID
	stage.Name = name
	return stage
}

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates a claimed person without contact points
func (f *PersonFactory) Create() *models.Person {
	return &models.Person{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: uuid.New(),
		},
		FirstName: "Jane",
		LastName:  "Doe",
		Source:    "Zillow",
		Claimed:   true,
	}
}

// WithTenant sets the tenant
func (f *PersonFactory) WithTenant(tenantID uuid.UUID) *models.Person {
	person := f.Create()
	person.TenantID = tenantID
	return person
}

// WithName sets the tenant and name
func (f *PersonFactory) WithName(tenantID uuid.UUID, first, last string) *models.Person {
	person := f.WithTenant(tenantID)
	person.FirstName = first
	person.LastName = last
	return person
}

// WithContacts adds a primary email and phone
func (f *PersonFactory) WithContacts(tenantID uuid.UUID, email, phone string) *models.Person {
	person := f.WithTenant(tenantID)
	person.Emails = []models.Email{{Value: email, Type: models.EmailTypeHome, Status: models.EmailStatusValid, IsPrimary: true}}
	person.Phones = []models.Phone{{Value: phone, Type: models.PhoneTypeMobile, Status: models.PhoneStatusValid, IsPrimary: true}}
	return person
}

// AssignedTo sets the tenant and assigned user
func (f *PersonFactory) AssignedTo(tenantID, userID uuid.UUID) *models.Person {
	person := f.WithTenant(tenantID)
	person.AssignedUserID = &userID
	return person
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a round robin agent group without members
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: uuid.New(),
		},
		Name:              "Buyers",
		Type:              models.GroupTypeAgent,
		Distribution:      models.DistributionRoundRobin,
		LastAssignedIndex: -1,
	}
}

// WithMembers sets the tenant and the rotation in order
func (f *GroupFactory) WithMembers(tenantID uuid.UUID, userIDs ...uuid.UUID) *models.Group {
	group := f.Create()
	group.TenantID = tenantID
	for i, userID := range userIDs {
		group.Members = append(group.Members, models.GroupMember{GroupID: group.ID, UserID: userID, Position: i})
	}
	return group
}

// PondFactory provides methods to create test Pond data
type PondFactory struct{}

// NewPondFactory creates a new PondFactory
func NewPondFactory() *PondFactory {
	return &PondFactory{}
}

// WithOwner creates a pond owned by ownerID
func (f *PondFactory) WithOwner(tenantID, ownerID uuid.UUID) *models.Pond {
	return &models.Pond{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{ID: uuid.New()},
			TenantID:  tenantID,
		},
		Name:   "Cold leads",
		UserID: ownerID,
	}
}

// LeadFlowRuleFactory provides methods to create test LeadFlowRule data
type LeadFlowRuleFactory struct{}

// NewLeadFlowRuleFactory creates a new LeadFlowRuleFactory
func NewLeadFlowRuleFactory() *LeadFlowRuleFactory {
	return &LeadFlowRuleFactory{}
}

// WithSource creates an active rule matching a lead source and assigning to a user
func (f *LeadFlowRuleFactory) WithSource(tenantID uuid.UUID, source string, priority int, assignTo uuid.UUID) *models.LeadFlowRule {
	return &models.LeadFlowRule{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{ID: uuid.New()},
			TenantID:  tenantID,
		},
		Name:      source + " leads",
		Source:    source,
		Priority:  priority,
		IsActive:  true,
		MatchType: models.MatchAll,
		Conditions: models.RuleConditions{
			{Field: models.FieldSource, Operator: models.OpEquals, Value: source},
		},
		AssignType: models.AssignToUser,
		AssignID:   &assignTo,
		Tags:       models.StringList{"inbound"},
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Tenant       *TenantFactory
	User         *UserFactory
	Stage        *StageFactory
	Person       *PersonFactory
	Group        *GroupFactory
	Pond         *PondFactory
	LeadFlowRule *LeadFlowRuleFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:       NewTenantFactory(),
		User:         NewUserFactory(),
		Stage:        NewStageFactory(),
		Person:       NewPersonFactory(),
		Group:        NewGroupFactory(),
		Pond:         NewPondFactory(),
		LeadFlowRule: NewLeadFlowRuleFactory(),
	}
}

// CreateTenantHierarchy builds a tenant with an owner, an agent and the default stages, unsaved
func (fs *FactorySet) CreateTenantHierarchy() (*models.Tenant, *models.User, *models.User, []models.Stage) {
	tenant := fs.Tenant.Create()
	owner := fs.User.WithRole(tenant.ID, models.UserRoleOwner)
	owner.Name = "Olivia Owner"
	agent := fs.User.WithRole(tenant.ID, models.UserRoleAgent)
	stages := fs.Stage.Defaults(tenant.ID)
	return tenant, owner, agent, stages
}
