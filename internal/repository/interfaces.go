package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	CreateWithOwner(tenant *models.Tenant, owner *models.User, stages []models.Stage) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	Update(tenant *models.Tenant) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(tenantID, id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetBySocial(provider, socialID string) (*models.User, error)
	List(tenantID uuid.UUID, filter UserFilter) ([]models.User, int64, error)
	ListByIDs(tenantID uuid.UUID, ids []uuid.UUID) ([]models.User, error)
	CountByTenant(tenantID uuid.UUID) (int64, error)
	Update(user *models.User) error
	Delete(tenantID, id uuid.UUID) error
	BulkDelete(tenantID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// StageRepositoryInterface defines the interface for stage repository operations
type StageRepositoryInterface interface {
	Create(stage *models.Stage) error
	GetByID(tenantID, id uuid.UUID) (*models.Stage, error)
	GetByName(tenantID uuid.UUID, name string) (*models.Stage, error)
	GetDefault(tenantID uuid.UUID) (*models.Stage, error)
	List(tenantID uuid.UUID) ([]models.Stage, error)
	Update(stage *models.Stage) error
	SetDefault(tenantID, id uuid.UUID) error
	DeleteAndReassign(tenantID, id, fallbackID uuid.UUID) error
}

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(tenantID, id uuid.UUID) (*models.Person, error)
	List(tenantID uuid.UUID, filter PersonFilter) ([]models.Person, int64, error)
	CountByTenant(tenantID uuid.UUID) (int64, error)
	Update(person *models.Person) error
	Delete(tenantID, id uuid.UUID) error
	BulkDelete(tenantID uuid.UUID, ids []uuid.UUID) (int64, error)
	Claim(tenantID, id, userID uuid.UUID) (bool, error)
	Exists(tenantID, id uuid.UUID) (bool, error)
	IsVisibleTo(tenantID, id, userID uuid.UUID) (bool, error)
}

// EmailRepositoryInterface defines the interface for person email operations
type EmailRepositoryInterface interface {
	ListByPerson(personID uuid.UUID) ([]models.Email, error)
	GetByID(personID, id uuid.UUID) (*models.Email, error)
	Create(email *models.Email) error
	Update(email *models.Email) error
	Delete(personID, id uuid.UUID) error
	SetPrimary(personID, id uuid.UUID) error
}

// PhoneRepositoryInterface defines the interface for person phone operations
type PhoneRepositoryInterface interface {
	ListByPerson(personID uuid.UUID) ([]models.Phone, error)
	GetByID(personID, id uuid.UUID) (*models.Phone, error)
	Create(phone *models.Phone) error
	Update(phone *models.Phone) error
	Delete(personID, id uuid.UUID) error
	SetPrimary(personID, id uuid.UUID) error
}

// AddressRepositoryInterface defines the interface for person address operations
type AddressRepositoryInterface interface {
	ListByPerson(personID uuid.UUID) ([]models.Address, error)
	GetByID(personID, id uuid.UUID) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(personID, id uuid.UUID) error
	SetPrimary(personID, id uuid.UUID) error
}

// TagRepositoryInterface defines the interface for person tag operations
type TagRepositoryInterface interface {
	ListByPerson(personID uuid.UUID) ([]models.Tag, error)
	GetByID(personID, id uuid.UUID) (*models.Tag, error)
	GetByName(personID uuid.UUID, name string) (*models.Tag, error)
	Create(tag *models.Tag) error
	AddNames(personID uuid.UUID, names []string) error
	Update(tag *models.Tag) error
	Delete(personID, id uuid.UUID) error
}

// CollaboratorRepositoryInterface defines the interface for person collaborator operations
type CollaboratorRepositoryInterface interface {
	ListByPerson(personID uuid.UUID) ([]models.Collaborator, error)
	GetByID(personID, id uuid.UUID) (*models.Collaborator, error)
	GetByUser(personID, userID uuid.UUID) (*models.Collaborator, error)
	Create(collaborator *models.Collaborator) error
	Delete(personID, id uuid.UUID) error
}

// FileRepositoryInterface defines the interface for person file operations
type FileRepositoryInterface interface {
	ListByPerson(personID uuid.UUID) ([]models.File, error)
	GetByID(personID, id uuid.UUID) (*models.File, error)
	Create(file *models.File) error
	Update(file *models.File) error
	Delete(personID, id uuid.UUID) error
}

// PondRepositoryInterface defines the interface for pond repository operations
type PondRepositoryInterface interface {
	Create(pond *models.Pond) error
	GetByID(tenantID, id uuid.UUID) (*models.Pond, error)
	List(tenantID uuid.UUID, limit, offset int) ([]models.Pond, int64, error)
	Update(pond *models.Pond) error
	ReplaceUsers(pond *models.Pond, users []models.User) error
	Delete(tenantID, id uuid.UUID) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(tenantID, id uuid.UUID) (*models.Group, error)
	List(tenantID uuid.UUID, limit, offset int) ([]models.Group, int64, error)
	Update(group *models.Group) error
	ReplaceMembers(groupID uuid.UUID, userIDs []uuid.UUID) error
	Delete(tenantID, id uuid.UUID) error
	IsMember(groupID, userID uuid.UUID) (bool, error)
	NextRoundRobinMember(tenantID, groupID uuid.UUID) (uuid.UUID, error)
}

// LeadFlowRuleRepositoryInterface defines the interface for lead flow rule operations
type LeadFlowRuleRepositoryInterface interface {
	Create(rule *models.LeadFlowRule) error
	GetByID(tenantID, id uuid.UUID) (*models.LeadFlowRule, error)
	List(tenantID uuid.UUID) ([]models.LeadFlowRule, error)
	ListActive(tenantID uuid.UUID) ([]models.LeadFlowRule, error)
	Update(rule *models.LeadFlowRule) error
	Delete(tenantID, id uuid.UUID) error
}
