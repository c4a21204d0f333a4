package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository handles database operations for person files
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// ListByPerson retrieves all files of a person, newest first
func (r *FileRepository) ListByPerson(personID uuid.UUID) ([]models.File, error) {
	var files []models.File
	err := r.db.Where("person_id = ?", personID).Order("created_at DESC").Find(&files).Error
	return files, err
}

// GetByID retrieves a file of a person
func (r *FileRepository) GetByID(personID, id uuid.UUID) (*models.File, error) {
	var file models.File
	err := r.db.First(&file, "person_id = ? AND id = ?", personID, id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Create creates a new file record
func (r *FileRepository) Create(file *models.File) error {
	return r.db.Create(file).Error
}

// Update updates a file record
func (r *FileRepository) Update(file *models.File) error {
	return r.db.Save(file).Error
}

// Delete deletes a file record of a person
func (r *FileRepository) Delete(personID, id uuid.UUID) error {
	result := r.db.Delete(&models.File{}, "person_id = ? AND id = ?", personID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
