package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"
	"dealspace-backend/internal/spreadsheet"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles tenant user administration
type UserService struct {
	repo       repository.UserRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, tenantRepo: tenantRepo, validator: validator}
}

// UserListQuery holds the normalized index filters
type UserListQuery struct {
	Search  string
	Role    models.UserRole `validate:"omitempty,oneof=owner admin agent lender"`
	Page    int
	PerPage int
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Meta  PageMeta       `json:"meta"`
}

// CreateUserRequest represents the request to add a user to the tenant
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,max=150"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	Role     models.UserRole `json:"role" validate:"required,oneof=admin agent lender"`
	Phone    string          `json:"phone" validate:"omitempty,e164ish"`
}

// UpdateUserRequest represents a partial update of a user
type UpdateUserRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=150"`
	Email    *string          `json:"email" validate:"omitempty,email,max=255"`
	Password *string          `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *models.UserRole `json:"role" validate:"omitempty,oneof=admin agent lender"`
	Phone    *string          `json:"phone" validate:"omitempty,e164ish"`
	Avatar   *string          `json:"avatar" validate:"omitempty,url,max=500"`
}

func (r *CreateUserRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *UpdateUserRequest) normalize() {
	trimPtr(r.Name)
	normalizeEmailPtr(r.Email)
	trimPtr(r.Phone)
}

// List retrieves the tenant's users
func (s *UserService) List(actor Actor, query *UserListQuery) (*UserListResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	page, perPage, offset := normalizePage(query.Page, query.PerPage)
	users, total, err := s.repo.List(actor.TenantID, repository.UserFilter{
		Search: query.Search,
		Role:   query.Role,
		Limit:  perPage,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return &UserListResponse{Users: responses, Meta: newPageMeta(total, page, perPage)}, nil
}

// Create adds a user to the tenant within the plan's user limit
func (s *UserService) Create(actor Actor, req *CreateUserRequest) (*UserResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.tenantRepo.GetByID(actor.TenantID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTenantNotFound, "get tenant")
	}
	count, err := s.repo.CountByTenant(actor.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	limits := tenant.PlanConfig()
	if !limits.Allows(limits.MaxUsers, count) {
		return nil, apperrors.NewPlanLimitError("users", limits.MaxUsers)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.ensureEmailFree(email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		TenantID:     actor.TenantID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		Phone:        req.Phone,
	}
	if err := s.repo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// Get retrieves a user of the tenant
func (s *UserService) Get(actor Actor, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// Update changes a user. The owner's role is fixed.
func (s *UserService) Update(actor Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}

	if req.Role != nil && *req.Role != user.Role {
		if user.Role == models.UserRoleOwner {
			return nil, apperrors.NewAuthorizationError("the account owner's role cannot be changed")
		}
		user.Role = *req.Role
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if err := s.ensureEmailFree(email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// Delete soft-deletes a user; the actor and the owner cannot be deleted
func (s *UserService) Delete(actor Actor, id uuid.UUID) error {
	if id == actor.UserID {
		return apperrors.ErrCannotDeleteSelf
	}

	user, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	if user.Role == models.UserRoleOwner {
		return apperrors.ErrCannotDeleteOwner
	}

	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return notFound(err, apperrors.ErrUserNotFound, "delete user")
	}
	return nil
}

// BulkDelete soft-deletes several users; the request is rejected when it names the actor or the owner
func (s *UserService) BulkDelete(actor Actor, req *BulkIDsRequest) (int64, error) {
	ids := dedupeIDs(req.IDs)
	if len(ids) == 0 {
		return 0, apperrors.NewValidationError("ids", "at least one id is required")
	}

	users, err := s.repo.ListByIDs(actor.TenantID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		if u.ID == actor.UserID {
			return 0, apperrors.ErrCannotDeleteSelf
		}
		if u.Role == models.UserRoleOwner {
			return 0, apperrors.ErrCannotDeleteOwner
		}
	}

	deleted, err := s.repo.BulkDelete(actor.TenantID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}
	return deleted, nil
}

var userExportHeaders = []string{"id", "name", "email", "role", "phone", "last_login_at", "created_at"}

// Export writes the given users, or all users when ids is empty, as xlsx
func (s *UserService) Export(actor Actor, req *BulkIDsRequest, w io.Writer) error {
	var users []models.User
	var err error

	if ids := dedupeIDs(req.IDs); len(ids) > 0 {
		users, err = s.repo.ListByIDs(actor.TenantID, ids)
	} else {
		users, _, err = s.repo.List(actor.TenantID, repository.UserFilter{})
	}
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	rows := make([][]string, len(users))
	for i, u := range users {
		lastLogin := ""
		if u.LastLoginAt != nil {
			lastLogin = u.LastLoginAt.Format("2006-01-02 15:04:05")
		}
		rows[i] = []string{
			u.ID.String(),
			u.Name,
			u.Email,
			string(u.Role),
			u.Phone,
			lastLogin,
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return spreadsheet.WriteXLSX(w, spreadsheet.Sheet{Name: "Users", Headers: userExportHeaders, Rows: rows})
}

func (s *UserService) ensureEmailFree(email string) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return apperrors.ErrUserExists
	}
	return nil
}
