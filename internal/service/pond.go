package service

import (
	"errors"
	"fmt"
	"time"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PondService handles business logic for lead ponds
type PondService struct {
	repo      repository.PondRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewPondService creates a new pond service
func NewPondService(repo repository.PondRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *PondService {
	return &PondService{repo: repo, userRepo: userRepo, validator: validator}
}

// PondRequest represents the request to create or replace a pond
type PondRequest struct {
	Name    string      `json:"name" validate:"required,min=1,max=150"`
	UserID  *uuid.UUID  `json:"user_id"`
	UserIDs []uuid.UUID `json:"user_ids"`
}

// PondResponse represents a pond in API responses
type PondResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	UserID    uuid.UUID     `json:"user_id"`
	Owner     *UserSummary  `json:"owner,omitempty"`
	UserIDs   []uuid.UUID   `json:"user_ids"`
	Users     []UserSummary `json:"users"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PondListResponse represents a paginated list of ponds
type PondListResponse struct {
	Ponds []PondResponse `json:"ponds"`
	Meta  PageMeta       `json:"meta"`
}

func toPondResponse(pond *models.Pond) *PondResponse {
	ids := make([]uuid.UUID, len(pond.Users))
	users := make([]UserSummary, len(pond.Users))
	for i := range pond.Users {
		ids[i] = pond.Users[i].ID
		users[i] = *toUserSummary(&pond.Users[i])
	}
	return &PondResponse{
		ID:        pond.ID,
		Name:      pond.Name,
		UserID:    pond.UserID,
		Owner:     toUserSummary(pond.Owner),
		UserIDs:   ids,
		Users:     users,
		CreatedAt: pond.CreatedAt,
		UpdatedAt: pond.UpdatedAt,
	}
}

// List retrieves the tenant's ponds with pagination
func (s *PondService) List(actor Actor, page, perPage int) (*PondListResponse, error) {
	page, perPage, offset := normalizePage(page, perPage)

	ponds, total, err := s.repo.List(actor.TenantID, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ponds: %w", err)
	}

	responses := make([]PondResponse, len(ponds))
	for i := range ponds {
		responses[i] = *toPondResponse(&ponds[i])
	}
	return &PondListResponse{Ponds: responses, Meta: newPageMeta(total, page, perPage)}, nil
}

// Create creates a pond; the owner defaults to the acting user
func (s *PondService) Create(actor Actor, req *PondRequest) (*PondResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ownerID, users, err := s.resolve(actor, req)
	if err != nil {
		return nil, err
	}

	pond := &models.Pond{Name: req.Name, UserID: ownerID, Users: users}
	pond.TenantID = actor.TenantID

	if err := s.repo.Create(pond); err != nil {
		return nil, fmt.Errorf("failed to create pond: %w", err)
	}
	return s.Get(actor, pond.ID)
}

// Get retrieves a pond by ID
func (s *PondService) Get(actor Actor, id uuid.UUID) (*PondResponse, error) {
	pond, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPondNotFound, "get pond")
	}
	return toPondResponse(pond), nil
}

// Update replaces a pond's name, owner and members
func (s *PondService) Update(actor Actor, id uuid.UUID, req *PondRequest) (*PondResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pond, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPondNotFound, "get pond")
	}

	if req.UserID == nil {
		req.UserID = &pond.UserID
	}
	ownerID, users, err := s.resolve(actor, req)
	if err != nil {
		return nil, err
	}

	pond.Name = req.Name
	pond.UserID = ownerID
	if err := s.repo.Update(pond); err != nil {
		return nil, fmt.Errorf("failed to update pond: %w", err)
	}
	if err := s.repo.ReplaceUsers(pond, users); err != nil {
		return nil, fmt.Errorf("failed to update pond members: %w", err)
	}
	return s.Get(actor, pond.ID)
}

// Delete deletes a pond
func (s *PondService) Delete(actor Actor, id uuid.UUID) error {
	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return notFound(err, apperrors.ErrPondNotFound, "delete pond")
	}
	return nil
}

// resolve checks owner and members belong to the tenant
func (s *PondService) resolve(actor Actor, req *PondRequest) (uuid.UUID, []models.User, error) {
	ownerID := actor.UserID
	if req.UserID != nil && *req.UserID != uuid.Nil {
		ownerID = *req.UserID
	}
	if ownerID != actor.UserID {
		if _, err := s.userRepo.GetByID(actor.TenantID, ownerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, nil, apperrors.ErrUserNotInTenant
			}
			return uuid.Nil, nil, fmt.Errorf("failed to verify pond owner: %w", err)
		}
	}

	ids := dedupeIDs(req.UserIDs)
	if len(ids) == 0 {
		return ownerID, []models.User{}, nil
	}
	users, err := s.userRepo.ListByIDs(actor.TenantID, ids)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to verify pond members: %w", err)
	}
	if len(users) != len(ids) {
		return uuid.Nil, nil, apperrors.ErrUserNotInTenant
	}
	return ownerID, users, nil
}
