package repository

import (
	"strings"

	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository handles database operations for person tags
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListByPerson retrieves all tags of a person
func (r *TagRepository) ListByPerson(personID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("person_id = ?", personID).Order("name ASC").Find(&tags).Error
	return tags, err
}

// GetByID retrieves a tag of a person
func (r *TagRepository) GetByID(personID, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "person_id = ? AND id = ?", personID, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag of a person by name (case-insensitive)
func (r *TagRepository) GetByName(personID uuid.UUID, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "person_id = ? AND LOWER(name) = LOWER(?)", personID, strings.TrimSpace(name)).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create creates a new tag
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// AddNames attaches tags by name, names the person already has are skipped
func (r *TagRepository) AddNames(personID uuid.UUID, names []string) error {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, models.Tag{PersonID: personID, Name: name})
	}
	if len(tags) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error
}

// Update updates a tag
func (r *TagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete deletes a tag of a person
func (r *TagRepository) Delete(personID, id uuid.UUID) error {
	result := r.db.Delete(&models.Tag{}, "person_id = ? AND id = ?", personID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
