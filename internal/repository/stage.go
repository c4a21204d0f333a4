package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageRepository handles database operations for stages
type StageRepository struct {
	db *gorm.DB
}

// NewStageRepository creates a new stage repository
func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// Create creates a new stage
func (r *StageRepository) Create(stage *models.Stage) error {
	return r.db.Create(stage).Error
}

// GetByID retrieves a stage by ID within a tenant
func (r *StageRepository) GetByID(tenantID, id uuid.UUID) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.First(&stage, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetByName retrieves a stage by name (case-insensitive) within a tenant
func (r *StageRepository) GetByName(tenantID uuid.UUID, name string) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.First(&stage, "tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetDefault retrieves the default stage of a tenant
func (r *StageRepository) GetDefault(tenantID uuid.UUID) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.Where("tenant_id = ? AND is_default = ?", tenantID, true).Order("position ASC").First(&stage).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// List retrieves all stages of a tenant ordered by position
func (r *StageRepository) List(tenantID uuid.UUID) ([]models.Stage, error) {
	var stages []models.Stage
	err := r.db.Where("tenant_id = ?", tenantID).Order("position ASC, name ASC").Find(&stages).Error
	return stages, err
}

// Update updates a stage
func (r *StageRepository) Update(stage *models.Stage) error {
	return r.db.Save(stage).Error
}

// SetDefault makes the stage the only default stage of its tenant
func (r *StageRepository) SetDefault(tenantID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Stage{}).
			Where("tenant_id = ? AND id <> ?", tenantID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Stage{}).
			Where("tenant_id = ? AND id = ?", tenantID, id).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAndReassign moves people of the stage to fallbackID, then deletes the stage
func (r *StageRepository) DeleteAndReassign(tenantID, id, fallbackID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Person{}).
			Where("tenant_id = ? AND stage_id = ?", tenantID, id).
			Update("stage_id", fallbackID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Stage{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
