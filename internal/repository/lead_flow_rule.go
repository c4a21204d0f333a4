package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadFlowRuleRepository handles database operations for lead flow rules
type LeadFlowRuleRepository struct {
	db *gorm.DB
}

// NewLeadFlowRuleRepository creates a new lead flow rule repository
func NewLeadFlowRuleRepository(db *gorm.DB) *LeadFlowRuleRepository {
	return &LeadFlowRuleRepository{db: db}
}

// Create creates a new rule
func (r *LeadFlowRuleRepository) Create(rule *models.LeadFlowRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a rule of a tenant
func (r *LeadFlowRuleRepository) GetByID(tenantID, id uuid.UUID) (*models.LeadFlowRule, error) {
	var rule models.LeadFlowRule
	err := r.db.First(&rule, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// List retrieves all rules of a tenant in evaluation order
func (r *LeadFlowRuleRepository) List(tenantID uuid.UUID) ([]models.LeadFlowRule, error) {
	var rules []models.LeadFlowRule
	err := r.db.Where("tenant_id = ?", tenantID).Order("priority ASC, created_at ASC").Find(&rules).Error
	return rules, err
}

// ListActive retrieves the active rules of a tenant in evaluation order
func (r *LeadFlowRuleRepository) ListActive(tenantID uuid.UUID) ([]models.LeadFlowRule, error) {
	var rules []models.LeadFlowRule
	err := r.db.Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	return rules, err
}

// Update updates a rule
func (r *LeadFlowRuleRepository) Update(rule *models.LeadFlowRule) error {
	return r.db.Save(rule).Error
}

// Delete deletes a rule of a tenant
func (r *LeadFlowRuleRepository) Delete(tenantID, id uuid.UUID) error {
	result := r.db.Delete(&models.LeadFlowRule{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
