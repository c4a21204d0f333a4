package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PondRepository handles database operations for ponds
type PondRepository struct {
	db *gorm.DB
}

// NewPondRepository creates a new pond repository
func NewPondRepository(db *gorm.DB) *PondRepository {
	return &PondRepository{db: db}
}

// Create creates a pond and links its member users
func (r *PondRepository) Create(pond *models.Pond) error {
	return r.db.Omit("Owner", "Users.*").Create(pond).Error
}

// GetByID retrieves a pond with owner and members
func (r *PondRepository) GetByID(tenantID, id uuid.UUID) (*models.Pond, error) {
	var pond models.Pond
	err := r.db.Preload("Owner").Preload("Users").First(&pond, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &pond, nil
}

// List retrieves ponds of a tenant with pagination
func (r *PondRepository) List(tenantID uuid.UUID, limit, offset int) ([]models.Pond, int64, error) {
	var ponds []models.Pond
	var total int64

	// Get total count
	if err := r.db.Model(&models.Pond{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Preload("Owner").Preload("Users").
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&ponds).Error
	if err != nil {
		return nil, 0, err
	}

	return ponds, total, nil
}

// Update updates the pond's own columns
func (r *PondRepository) Update(pond *models.Pond) error {
	return r.db.Omit("Owner", "Users").Save(pond).Error
}

// ReplaceUsers sets the pond membership to exactly users
func (r *PondRepository) ReplaceUsers(pond *models.Pond, users []models.User) error {
	return r.db.Model(pond).Association("Users").Replace(users)
}

// Delete deletes a pond; people in it fall back to unassigned
func (r *PondRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pond models.Pond
		if err := tx.First(&pond, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Person{}).
			Where("tenant_id = ? AND assigned_pond_id = ?", tenantID, id).
			Update("assigned_pond_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&pond).Association("Users").Clear(); err != nil {
			return err
		}
		return tx.Delete(&pond).Error
	})
}
