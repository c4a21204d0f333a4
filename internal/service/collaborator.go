package service

import (
	"errors"
	"fmt"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaboratorRequest represents the request to share a person with a user
type CollaboratorRequest struct {
	UserID uuid.UUID               `json:"user_id" validate:"required"`
	Role   models.CollaboratorRole `json:"role" validate:"omitempty,oneof=viewer editor"`
}

// CollaboratorService handles business logic for person collaborators
type CollaboratorService struct {
	repo      repository.CollaboratorRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	guard     personGuard
	validator *validator.Validate
}

// NewCollaboratorService creates a new collaborator service
func NewCollaboratorService(
	repo repository.CollaboratorRepositoryInterface,
	people repository.PersonRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *CollaboratorService {
	return &CollaboratorService{repo: repo, userRepo: userRepo, guard: personGuard{people: people}, validator: validator}
}

// List returns the person's collaborators with their users
func (s *CollaboratorService) List(actor Actor, personID uuid.UUID) ([]models.Collaborator, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	collaborators, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	return collaborators, nil
}

// Create shares the person with a user of the same tenant
func (s *CollaboratorService) Create(actor Actor, personID uuid.UUID, req *CollaboratorRequest) (*models.Collaborator, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(actor.TenantID, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotInTenant
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	existing, err := s.repo.GetByUser(personID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing collaborator: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCollaboratorExists
	}

	collaborator := &models.Collaborator{
		PersonID: personID,
		UserID:   req.UserID,
		Role:     orDefault(req.Role, models.CollaboratorRoleViewer),
	}
	if err := s.repo.Create(collaborator); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrCollaboratorExists
		}
		return nil, fmt.Errorf("failed to create collaborator: %w", err)
	}
	collaborator.User = user
	return collaborator, nil
}

// Delete removes a collaborator
func (s *CollaboratorService) Delete(actor Actor, personID, id uuid.UUID) error {
	if err := s.guard.check(actor, personID); err != nil {
		return err
	}
	if err := s.repo.Delete(personID, id); err != nil {
		return notFound(err, apperrors.ErrCollaboratorNotFound, "delete collaborator")
	}
	return nil
}
