package service

import (
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
)

// EnumService exposes the option lists used by client forms
type EnumService struct{}

// NewEnumService creates a new enum service
func NewEnumService() *EnumService {
	return &EnumService{}
}

// All returns every option list keyed by name
func (s *EnumService) All() map[string][]models.EnumOption {
	names := models.EnumNames()
	all := make(map[string][]models.EnumOption, len(names))
	for _, name := range names {
		all[name], _ = models.EnumOptions(name)
	}
	return all
}

// Get returns one option list
func (s *EnumService) Get(name string) ([]models.EnumOption, error) {
	options, ok := models.EnumOptions(name)
	if !ok {
		return nil, apperrors.ErrEnumNotFound
	}
	return options, nil
}
