package repository

import (
	"strings"

	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID within a tenant
func (r *UserRepository) GetByID(tenantID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Tenant").First(&user, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a live user by email (case-insensitive) across tenants
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Tenant").First(&user, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetBySocial retrieves a user linked to a social provider account
func (r *UserRepository) GetBySocial(provider, socialID string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Tenant").First(&user, "social_provider = ? AND social_id = ?", provider, socialID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users of a tenant with optional search and role filters
func (r *UserRepository) List(tenantID uuid.UUID, filter UserFilter) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("tenant_id = ?", tenantID)
	if q := strings.TrimSpace(filter.Search); q != "" {
		query = query.Where("(name ILIKE ? OR email ILIKE ? OR phone ILIKE ?)", likePattern(q), likePattern(q), likePattern(q))
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results, a zero limit returns every match
	listQuery := query.Order("name ASC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := listQuery.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListByIDs retrieves the users of a tenant with the given ids
func (r *UserRepository) ListByIDs(tenantID uuid.UUID, ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("tenant_id = ? AND id IN ?", tenantID, ids).Find(&users).Error
	return users, err
}

// CountByTenant counts live users of a tenant
func (r *UserRepository) CountByTenant(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Omit("Tenant").Save(user).Error
}

// Delete soft-deletes a user of a tenant and drops the user from groups, ponds and user-targeted rules
func (r *UserRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.User{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return releaseUsers(tx, tenantID, []uuid.UUID{id})
	})
}

// BulkDelete soft-deletes the given users of a tenant and returns how many were removed
func (r *UserRepository) BulkDelete(tenantID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.User{}, "tenant_id = ? AND id IN ?", tenantID, ids)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return releaseUsers(tx, tenantID, ids)
	})
	return deleted, err
}

// releaseUsers removes group and pond memberships of deleted users, restarts the
// rotation of the groups they left and deactivates rules that assign to them
func releaseUsers(tx *gorm.DB, tenantID uuid.UUID, ids []uuid.UUID) error {
	var groupIDs []uuid.UUID
	if err := tx.Model(&models.GroupMember{}).Where("user_id IN ?", ids).Distinct().Pluck("group_id", &groupIDs).Error; err != nil {
		return err
	}
	if len(groupIDs) > 0 {
		if err := tx.Where("user_id IN ?", ids).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Group{}).
			Where("tenant_id = ? AND id IN ?", tenantID, groupIDs).
			Update("last_assigned_index", -1).Error; err != nil {
			return err
		}
	}
	if err := tx.Exec("DELETE FROM pond_users WHERE user_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Model(&models.LeadFlowRule{}).
		Where("tenant_id = ? AND assign_type = ? AND assign_id IN ?", tenantID, models.AssignToUser, ids).
		Update("is_active", false).Error
}
