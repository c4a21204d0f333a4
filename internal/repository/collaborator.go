package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaboratorRepository handles database operations for person collaborators
type CollaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new collaborator repository
func NewCollaboratorRepository(db *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

// ListByPerson retrieves all collaborators of a person with their users
func (r *CollaboratorRepository) ListByPerson(personID uuid.UUID) ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	err := r.db.Preload("User").Where("person_id = ?", personID).Order("created_at ASC").Find(&collaborators).Error
	return collaborators, err
}

// GetByID retrieves a collaborator of a person
func (r *CollaboratorRepository) GetByID(personID, id uuid.UUID) (*models.Collaborator, error) {
	var collaborator models.Collaborator
	err := r.db.Preload("User").First(&collaborator, "person_id = ? AND id = ?", personID, id).Error
	if err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// GetByUser retrieves the collaborator entry of a user on a person
func (r *CollaboratorRepository) GetByUser(personID, userID uuid.UUID) (*models.Collaborator, error) {
	var collaborator models.Collaborator
	err := r.db.First(&collaborator, "person_id = ? AND user_id = ?", personID, userID).Error
	if err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// Create creates a new collaborator
func (r *CollaboratorRepository) Create(collaborator *models.Collaborator) error {
	return r.db.Omit("User").Create(collaborator).Error
}

// Delete deletes a collaborator of a person
func (r *CollaboratorRepository) Delete(personID, id uuid.UUID) error {
	result := r.db.Delete(&models.Collaborator{}, "person_id = ? AND id = ?", personID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
