package repository

import (
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create creates a new group with its members
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if group.IsPrimary {
			if err := tx.Model(&models.Group{}).
				Where("tenant_id = ? AND is_primary = ?", group.TenantID, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Members.User").Create(group).Error
	})
}

// GetByID retrieves a group with members in rotation order
func (r *GroupRepository) GetByID(tenantID, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Members", orderedMembers).Preload("Members.User").
		First(&group, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List retrieves groups of a tenant with pagination
func (r *GroupRepository) List(tenantID uuid.UUID, limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	// Get total count
	if err := r.db.Model(&models.Group{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Preload("Members", orderedMembers).Preload("Members.User").
		Where("tenant_id = ?", tenantID).
		Order("is_primary DESC, name ASC").
		Limit(limit).Offset(offset).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update updates the group's own columns
func (r *GroupRepository) Update(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if group.IsPrimary {
			if err := tx.Model(&models.Group{}).
				Where("tenant_id = ? AND id <> ? AND is_primary = ?", group.TenantID, group.ID, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(group).Error
	})
}

// ReplaceMembers rewrites the rotation with userIDs in the given order and resets the cursor
func (r *GroupRepository) ReplaceMembers(groupID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		if len(userIDs) > 0 {
			members := make([]models.GroupMember, len(userIDs))
			for i, userID := range userIDs {
				members[i] = models.GroupMember{GroupID: groupID, UserID: userID, Position: i}
			}
			if err := tx.Omit("User").Create(&members).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Group{}).Where("id = ?", groupID).Update("last_assigned_index", -1).Error
	})
}

// Delete deletes a group; people assigned to it lose the group assignment
func (r *GroupRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.First(&group, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Person{}).
			Where("tenant_id = ? AND assigned_group_id = ?", tenantID, id).
			Update("assigned_group_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}

// IsMember reports whether the user is in the group's rotation
func (r *GroupRepository) IsMember(groupID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).Where("group_id = ? AND user_id = ?", groupID, userID).Count(&count).Error
	return count > 0, err
}

// NextRoundRobinMember advances the group cursor and returns the member it lands on.
// The group row is locked so concurrent assignments never pick the same member.
func (r *GroupRepository) NextRoundRobinMember(tenantID, groupID uuid.UUID) (uuid.UUID, error) {
	var next uuid.UUID
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, "tenant_id = ? AND id = ?", tenantID, groupID).Error; err != nil {
			return err
		}

		var members []models.GroupMember
		if err := tx.Where("group_id = ?", groupID).Order("position ASC").Find(&members).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return apperrors.ErrGroupHasNoMembers
		}

		index := nextIndex(group.LastAssignedIndex, len(members))
		if err := tx.Model(&models.Group{}).Where("id = ?", groupID).Update("last_assigned_index", index).Error; err != nil {
			return err
		}
		next = members[index].UserID
		return nil
	})
	return next, err
}

// nextIndex returns the rotation slot after last, wrapping at size
func nextIndex(last, size int) int {
	if last < 0 {
		return 0
	}
	return (last + 1) % size
}
