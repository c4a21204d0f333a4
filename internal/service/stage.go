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

// StageService handles business logic for pipeline stages
type StageService struct {
	repo      repository.StageRepositoryInterface
	validator *validator.Validate
}

// NewStageService creates a new stage service
func NewStageService(repo repository.StageRepositoryInterface, validator *validator.Validate) *StageService {
	return &StageService{repo: repo, validator: validator}
}

// CreateStageRequest represents the request to create a stage
type CreateStageRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Position    *int   `json:"position" validate:"omitempty,min=0"`
	IsDefault   bool   `json:"is_default"`
}

// UpdateStageRequest represents the request to update a stage
type UpdateStageRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Position    *int    `json:"position" validate:"omitempty,min=0"`
	IsDefault   *bool   `json:"is_default"`
}

// StageResponse represents a stage in API responses
type StageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toStageResponse(stage *models.Stage) *StageResponse {
	return &StageResponse{
		ID:          stage.ID,
		Name:        stage.Name,
		Description: stage.Description,
		Position:    stage.Position,
		IsDefault:   stage.IsDefault,
		CreatedAt:   stage.CreatedAt,
		UpdatedAt:   stage.UpdatedAt,
	}
}

// List returns the tenant's stages ordered by position
func (s *StageService) List(actor Actor) ([]StageResponse, error) {
	stages, err := s.repo.List(actor.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	responses := make([]StageResponse, len(stages))
	for i := range stages {
		responses[i] = *toStageResponse(&stages[i])
	}
	return responses, nil
}

// Create creates a new stage. Without a position it goes to the end of the pipeline.
func (s *StageService) Create(actor Actor, req *CreateStageRequest) (*StageResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.ensureNameFree(actor.TenantID, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		stages, err := s.repo.List(actor.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to list stages: %w", err)
		}
		for _, st := range stages {
			if st.Position >= position {
				position = st.Position + 1
			}
		}
	}

	stage := &models.Stage{
		Name:        req.Name,
		Description: req.Description,
		Position:    position,
	}
	stage.TenantID = actor.TenantID

	if err := s.repo.Create(stage); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrStageExists
		}
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}

	if req.IsDefault {
		if err := s.repo.SetDefault(actor.TenantID, stage.ID); err != nil {
			return nil, fmt.Errorf("failed to set default stage: %w", err)
		}
		stage.IsDefault = true
	}

	return toStageResponse(stage), nil
}

// Get retrieves a stage by ID
func (s *StageService) Get(actor Actor, id uuid.UUID) (*StageResponse, error) {
	stage, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrStageNotFound, "get stage")
	}
	return toStageResponse(stage), nil
}

// Update updates a stage
func (s *StageService) Update(actor Actor, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stage, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrStageNotFound, "get stage")
	}

	if req.Name != nil && *req.Name != stage.Name {
		if err := s.ensureNameFree(actor.TenantID, *req.Name, stage.ID); err != nil {
			return nil, err
		}
		stage.Name = *req.Name
	}
	if req.Description != nil {
		stage.Description = *req.Description
	}
	if req.Position != nil {
		stage.Position = *req.Position
	}
	// the default flag only moves through SetDefault
	if req.IsDefault != nil && !*req.IsDefault && stage.IsDefault {
		return nil, apperrors.NewValidationError("is_default", "a default stage is required, mark another stage as default instead")
	}

	if err := s.repo.Update(stage); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrStageExists
		}
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	if req.IsDefault != nil && *req.IsDefault && !stage.IsDefault {
		if err := s.repo.SetDefault(actor.TenantID, stage.ID); err != nil {
			return nil, fmt.Errorf("failed to set default stage: %w", err)
		}
		stage.IsDefault = true
	}

	return toStageResponse(stage), nil
}

// Delete deletes a stage and moves its people to the default stage
func (s *StageService) Delete(actor Actor, id uuid.UUID) error {
	stage, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return notFound(err, apperrors.ErrStageNotFound, "get stage")
	}
	if stage.IsDefault {
		return apperrors.ErrDefaultStageDelete
	}

	fallback, err := s.repo.GetDefault(actor.TenantID)
	if err != nil {
		return notFound(err, apperrors.ErrStageNotFound, "get default stage")
	}

	if err := s.repo.DeleteAndReassign(actor.TenantID, id, fallback.ID); err != nil {
		return notFound(err, apperrors.ErrStageNotFound, "delete stage")
	}
	return nil
}

func (s *StageService) ensureNameFree(tenantID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(tenantID, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing stage: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrStageExists
	}
	return nil
}
