package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersonRepository handles database operations for people
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a person together with its nested emails, phones, addresses and tags
func (r *PersonRepository) Create(person *models.Person) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Stage", "AssignedUser", "Collaborators", "Files").Create(person).Error
	})
}

// GetByID retrieves a person with all child records
func (r *PersonRepository) GetByID(tenantID, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.withDetails(r.db).First(&person, "people.tenant_id = ? AND people.id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Stage").
		Preload("AssignedUser").
		Preload("Emails", func(db *gorm.DB) *gorm.DB { return db.Order("is_primary DESC, created_at ASC") }).
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("is_primary DESC, created_at ASC") }).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB { return db.Order("is_primary DESC, created_at ASC") }).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Collaborators.User").
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") })
}

// List retrieves people of a tenant matching the filter
func (r *PersonRepository) List(tenantID uuid.UUID, filter PersonFilter) ([]models.Person, int64, error) {
	var people []models.Person
	var total int64

	query := r.applyFilter(r.db.Model(&models.Person{}).Where("people.tenant_id = ?", tenantID), filter)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := r.withDetails(query).Order(filter.orderClause())
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := listQuery.Find(&people).Error; err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

func (r *PersonRepository) applyFilter(query *gorm.DB, filter PersonFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"(people.first_name ILIKE ? OR people.last_name ILIKE ? OR CONCAT(people.first_name, ' ', people.last_name) ILIKE ? OR "+
				"EXISTS (SELECT 1 FROM person_emails e WHERE e.person_id = people.id AND e.value ILIKE ?) OR "+
				"EXISTS (SELECT 1 FROM person_phones p WHERE p.person_id = people.id AND p.value ILIKE ?))",
			pattern, pattern, pattern, pattern, pattern)
	}
	if filter.StageID != nil {
		query = query.Where("people.stage_id = ?", *filter.StageID)
	}
	if filter.AssignedUserID != nil {
		query = query.Where("people.assigned_user_id = ?", *filter.AssignedUserID)
	}
	if filter.PondID != nil {
		query = query.Where("people.assigned_pond_id = ?", *filter.PondID)
	}
	if filter.Source != "" {
		query = query.Where("LOWER(people.source) = LOWER(?)", filter.Source)
	}
	if filter.Tag != "" {
		query = query.Where("EXISTS (SELECT 1 FROM person_tags t WHERE t.person_id = people.id AND LOWER(t.name) = LOWER(?))", filter.Tag)
	}
	if filter.Contacted != nil {
		query = query.Where("people.contacted = ?", *filter.Contacted)
	}
	if len(filter.IDs) > 0 {
		query = query.Where("people.id IN ?", filter.IDs)
	}
	if filter.VisibleTo != nil {
		userID := *filter.VisibleTo
		query = query.Where(
			"(people.assigned_user_id = ? OR "+
				"EXISTS (SELECT 1 FROM person_collaborators c WHERE c.person_id = people.id AND c.user_id = ?) OR "+
				"EXISTS (SELECT 1 FROM pond_users pu WHERE pu.pond_id = people.assigned_pond_id AND pu.user_id = ?) OR "+
				"EXISTS (SELECT 1 FROM group_users gu WHERE gu.group_id = people.assigned_group_id AND gu.user_id = ? AND people.claimed = false))",
			userID, userID, userID, userID)
	}
	return query
}

// CountByTenant counts live people of a tenant
func (r *PersonRepository) CountByTenant(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Person{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

// Update updates the person's own columns, child records are left untouched
func (r *PersonRepository) Update(person *models.Person) error {
	return r.db.Omit(clause.Associations).Save(person).Error
}

// Delete soft-deletes a person, child rows are kept
func (r *PersonRepository) Delete(tenantID, id uuid.UUID) error {
	result := r.db.Delete(&models.Person{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BulkDelete soft-deletes the given people of a tenant and returns how many were removed
func (r *PersonRepository) BulkDelete(tenantID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&models.Person{}, "tenant_id = ? AND id IN ?", tenantID, ids)
	return result.RowsAffected, result.Error
}

// Claim assigns an unclaimed person to userID. It reports false when someone else claimed first.
func (r *PersonRepository) Claim(tenantID, id, userID uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Person{}).
		Where("tenant_id = ? AND id = ? AND claimed = ?", tenantID, id, false).
		Updates(map[string]interface{}{
			"claimed":          true,
			"assigned_user_id": userID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Exists reports whether a live person with the id belongs to the tenant
func (r *PersonRepository) Exists(tenantID, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Person{}).Where("tenant_id = ? AND id = ?", tenantID, id).Count(&count).Error
	return count > 0, err
}

// IsVisibleTo reports whether the person is assigned, shared or pooled to the user
func (r *PersonRepository) IsVisibleTo(tenantID, id, userID uuid.UUID) (bool, error) {
	var count int64
	query := r.applyFilter(r.db.Model(&models.Person{}).Where("people.tenant_id = ? AND people.id = ?", tenantID, id),
		PersonFilter{VisibleTo: &userID})
	err := query.Count(&count).Error
	return count > 0, err
}
