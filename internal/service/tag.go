package service

import (
	"errors"
	"fmt"
	"strings"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagRequest represents the request to create or replace a tag
type TagRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Description string `json:"description" validate:"max=255"`
}

// TagService handles business logic for person tags
type TagService struct {
	repo      repository.TagRepositoryInterface
	guard     personGuard
	validator *validator.Validate
}

// NewTagService creates a new tag service
func NewTagService(repo repository.TagRepositoryInterface, people repository.PersonRepositoryInterface, validator *validator.Validate) *TagService {
	return &TagService{repo: repo, guard: personGuard{people: people}, validator: validator}
}

// List returns the person's tags
func (s *TagService) List(actor Actor, personID uuid.UUID) ([]models.Tag, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	tags, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Create adds a tag to the person; names are unique per person
func (s *TagService) Create(actor Actor, personID uuid.UUID, req *TagRequest) (*models.Tag, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(personID, name, uuid.Nil); err != nil {
		return nil, err
	}

	tag := &models.Tag{PersonID: personID, Name: name, Color: req.Color, Description: req.Description}
	if err := s.repo.Create(tag); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrTagExists
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// Get retrieves a tag of the person
func (s *TagService) Get(actor Actor, personID, id uuid.UUID) (*models.Tag, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	tag, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTagNotFound, "get tag")
	}
	return tag, nil
}

// Update replaces a tag
func (s *TagService) Update(actor Actor, personID, id uuid.UUID, req *TagRequest) (*models.Tag, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	tag, err := s.Get(actor, personID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if !strings.EqualFold(name, tag.Name) {
		if err := s.ensureNameFree(personID, name, tag.ID); err != nil {
			return nil, err
		}
	}
	tag.Name = name
	tag.Color = req.Color
	tag.Description = req.Description

	if err := s.repo.Update(tag); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrTagExists
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return tag, nil
}

// Delete removes a tag
func (s *TagService) Delete(actor Actor, personID, id uuid.UUID) error {
	if err := s.guard.check(actor, personID); err != nil {
		return err
	}
	if err := s.repo.Delete(personID, id); err != nil {
		return notFound(err, apperrors.ErrTagNotFound, "delete tag")
	}
	return nil
}

func (s *TagService) ensureNameFree(personID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(personID, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing tag: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrTagExists
	}
	return nil
}
