package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// CreateWithOwner creates a tenant, its owner and its initial stages in one transaction
func (r *TenantRepository) CreateWithOwner(tenant *models.Tenant, owner *models.User, stages []models.Stage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}

		owner.TenantID = tenant.ID
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		if len(stages) == 0 {
			return nil
		}
		for i := range stages {
			stages[i].TenantID = tenant.ID
		}
		return tx.Create(&stages).Error
	})
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update updates a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}
