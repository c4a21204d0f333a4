package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const phoneTable = "person_phones"

// PhoneRepository handles database operations for person phones
type PhoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository creates a new phone repository
func NewPhoneRepository(db *gorm.DB) *PhoneRepository {
	return &PhoneRepository{db: db}
}

// ListByPerson retrieves all phones of a person, primary first
func (r *PhoneRepository) ListByPerson(personID uuid.UUID) ([]models.Phone, error) {
	var phones []models.Phone
	err := r.db.Where("person_id = ?", personID).Order("is_primary DESC, created_at ASC").Find(&phones).Error
	return phones, err
}

// GetByID retrieves a phone of a person
func (r *PhoneRepository) GetByID(personID, id uuid.UUID) (*models.Phone, error) {
	var phone models.Phone
	err := r.db.First(&phone, "person_id = ? AND id = ?", personID, id).Error
	if err != nil {
		return nil, err
	}
	return &phone, nil
}

// Create stores a phone; the person's first phone always becomes primary
func (r *PhoneRepository) Create(phone *models.Phone) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, phone.PersonID); err != nil {
			return err
		}
		count, err := countForPerson(tx, phoneTable, phone.PersonID)
		if err != nil {
			return err
		}
		if count == 0 {
			phone.IsPrimary = true
		}
		if phone.IsPrimary {
			if err := clearPrimary(tx, phoneTable, phone.PersonID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(phone).Error
	})
}

// Update saves a phone, clearing the flag on siblings when it is primary
func (r *PhoneRepository) Update(phone *models.Phone) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, phone.PersonID); err != nil {
			return err
		}
		if phone.IsPrimary {
			if err := clearPrimary(tx, phoneTable, phone.PersonID, phone.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(phone).Error; err != nil {
			return err
		}
		if phone.IsPrimary {
			return nil
		}
		return promoteOldest(tx, phoneTable, phone.PersonID)
	})
}

// Delete removes a phone; if it was primary the oldest remaining one is promoted
func (r *PhoneRepository) Delete(personID, id uuid.UUID) error {
	return deleteChild(r.db, phoneTable, &models.Phone{}, personID, id)
}

// SetPrimary makes the phone the person's only primary phone
func (r *PhoneRepository) SetPrimary(personID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return markPrimary(tx, phoneTable, personID, id)
	})
}
