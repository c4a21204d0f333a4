package service

import (
	"context"
	"io"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TokenIssuer issues and revokes access tokens
type TokenIssuer interface {
	GenerateJWT(subject auth.TokenSubject) (string, error)
	Revoke(ctx context.Context, claims *auth.AuthClaims) error
}

// SocialProfileFetcher resolves a provider access token to a profile
type SocialProfileFetcher interface {
	FetchProfile(ctx context.Context, provider, accessToken string) (*auth.SocialProfile, error)
}

// AuthServiceInterface defines the interface for auth service
type AuthServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	SocialLogin(ctx context.Context, req *SocialLoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, claims *auth.AuthClaims) error
	Me(actor Actor) (*UserResponse, error)
	UpdateProfile(actor Actor, req *UpdateProfileRequest) (*UserResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List(actor Actor, query *UserListQuery) (*UserListResponse, error)
	Create(actor Actor, req *CreateUserRequest) (*UserResponse, error)
	Get(actor Actor, id uuid.UUID) (*UserResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	BulkDelete(actor Actor, req *BulkIDsRequest) (int64, error)
	Export(actor Actor, req *BulkIDsRequest, w io.Writer) error
}

// StageServiceInterface defines the interface for stage service
type StageServiceInterface interface {
	List(actor Actor) ([]StageResponse, error)
	Create(actor Actor, req *CreateStageRequest) (*StageResponse, error)
	Get(actor Actor, id uuid.UUID) (*StageResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error)
	Delete(actor Actor, id uuid.UUID) error
}

// PersonServiceInterface defines the interface for person service
type PersonServiceInterface interface {
	List(actor Actor, query *PersonListQuery) (*PersonListResponse, error)
	Create(ctx context.Context, actor Actor, req *CreatePersonRequest) (*PersonResponse, error)
	Get(actor Actor, id uuid.UUID) (*PersonResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdatePersonRequest) (*PersonResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	BulkDelete(actor Actor, req *BulkIDsRequest) (int64, error)
	Export(actor Actor, req *BulkIDsRequest, w io.Writer) error
	Template(w io.Writer) error
	Import(ctx context.Context, actor Actor, filename string, r io.Reader) (*ImportResult, error)
	Claim(ctx context.Context, actor Actor, id uuid.UUID) (*PersonResponse, error)
}

// EmailServiceInterface defines the interface for person email service
type EmailServiceInterface interface {
	List(actor Actor, personID uuid.UUID) ([]models.Email, error)
	Create(actor Actor, personID uuid.UUID, req *EmailRequest) (*models.Email, error)
	Get(actor Actor, personID, id uuid.UUID) (*models.Email, error)
	Update(actor Actor, personID, id uuid.UUID, req *EmailRequest) (*models.Email, error)
	Delete(actor Actor, personID, id uuid.UUID) error
	SetPrimary(actor Actor, personID, id uuid.UUID) (*models.Email, error)
}

// PhoneServiceInterface defines the interface for person phone service
type PhoneServiceInterface interface {
	List(actor Actor, personID uuid.UUID) ([]models.Phone, error)
	Create(actor Actor, personID uuid.UUID, req *PhoneRequest) (*models.Phone, error)
	Get(actor Actor, personID, id uuid.UUID) (*models.Phone, error)
	Update(actor Actor, personID, id uuid.UUID, req *PhoneRequest) (*models.Phone, error)
	Delete(actor Actor, personID, id uuid.UUID) error
	SetPrimary(actor Actor, personID, id uuid.UUID) (*models.Phone, error)
}

// AddressServiceInterface defines the interface for person address service
type AddressServiceInterface interface {
	List(actor Actor, personID uuid.UUID) ([]models.Address, error)
	Create(actor Actor, personID uuid.UUID, req *AddressRequest) (*models.Address, error)
	Get(actor Actor, personID, id uuid.UUID) (*models.Address, error)
	Update(actor Actor, personID, id uuid.UUID, req *AddressRequest) (*models.Address, error)
	Delete(actor Actor, personID, id uuid.UUID) error
	SetPrimary(actor Actor, personID, id uuid.UUID) (*models.Address, error)
}

// TagServiceInterface defines the interface for person tag service
type TagServiceInterface interface {
	List(actor Actor, personID uuid.UUID) ([]models.Tag, error)
	Create(actor Actor, personID uuid.UUID, req *TagRequest) (*models.Tag, error)
	Get(actor Actor, personID, id uuid.UUID) (*models.Tag, error)
	Update(actor Actor, personID, id uuid.UUID, req *TagRequest) (*models.Tag, error)
	Delete(actor Actor, personID, id uuid.UUID) error
}

// CollaboratorServiceInterface defines the interface for person collaborator service
type CollaboratorServiceInterface interface {
	List(actor Actor, personID uuid.UUID) ([]models.Collaborator, error)
	Create(actor Actor, personID uuid.UUID, req *CollaboratorRequest) (*models.Collaborator, error)
	Delete(actor Actor, personID, id uuid.UUID) error
}

// FileServiceInterface defines the interface for person file service
type FileServiceInterface interface {
	List(ctx context.Context, actor Actor, personID uuid.UUID) ([]FileResponse, error)
	Create(ctx context.Context, actor Actor, personID uuid.UUID, upload *FileUpload) (*FileResponse, error)
	Get(ctx context.Context, actor Actor, personID, id uuid.UUID) (*FileResponse, error)
	Update(ctx context.Context, actor Actor, personID, id uuid.UUID, name string, upload *FileUpload) (*FileResponse, error)
	Delete(ctx context.Context, actor Actor, personID, id uuid.UUID) error
}

// PondServiceInterface defines the interface for pond service
type PondServiceInterface interface {
	List(actor Actor, page, perPage int) (*PondListResponse, error)
	Create(actor Actor, req *PondRequest) (*PondResponse, error)
	Get(actor Actor, id uuid.UUID) (*PondResponse, error)
	Update(actor Actor, id uuid.UUID, req *PondRequest) (*PondResponse, error)
	Delete(actor Actor, id uuid.UUID) error
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	List(actor Actor, page, perPage int) (*GroupListResponse, error)
	Create(actor Actor, req *GroupRequest) (*GroupResponse, error)
	Get(actor Actor, id uuid.UUID) (*GroupResponse, error)
	Update(actor Actor, id uuid.UUID, req *GroupRequest) (*GroupResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	Distribute(ctx context.Context, person *models.Person, groupID uuid.UUID) error
}

// LeadFlowServiceInterface defines the interface for lead flow rules and processing
type LeadFlowServiceInterface interface {
	List(actor Actor) ([]models.LeadFlowRule, error)
	Create(actor Actor, req *LeadFlowRuleRequest) (*models.LeadFlowRule, error)
	Get(actor Actor, id uuid.UUID) (*models.LeadFlowRule, error)
	Update(actor Actor, id uuid.UUID, req *LeadFlowRuleRequest) (*models.LeadFlowRule, error)
	Delete(actor Actor, id uuid.UUID) error
	ProcessLead(ctx context.Context, person *models.Person) (*models.LeadFlowRule, error)
}

// EnumServiceInterface defines the interface for enum lookups
type EnumServiceInterface interface {
	All() map[string][]models.EnumOption
	Get(name string) ([]models.EnumOption, error)
}
