package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const emailTable = "person_emails"

// EmailRepository handles database operations for person emails
type EmailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates a new email repository
func NewEmailRepository(db *gorm.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

// ListByPerson retrieves all emails of a person, primary first
func (r *EmailRepository) ListByPerson(personID uuid.UUID) ([]models.Email, error) {
	var emails []models.Email
	err := r.db.Where("person_id = ?", personID).Order("is_primary DESC, created_at ASC").Find(&emails).Error
	return emails, err
}

// GetByID retrieves an email of a person
func (r *EmailRepository) GetByID(personID, id uuid.UUID) (*models.Email, error) {
	var email models.Email
	err := r.db.First(&email, "person_id = ? AND id = ?", personID, id).Error
	if err != nil {
		return nil, err
	}
	return &email, nil
}

// Create stores an email; the person's first email always becomes primary
func (r *EmailRepository) Create(email *models.Email) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, email.PersonID); err != nil {
			return err
		}
		count, err := countForPerson(tx, emailTable, email.PersonID)
		if err != nil {
			return err
		}
		if count == 0 {
			email.IsPrimary = true
		}
		if email.IsPrimary {
			if err := clearPrimary(tx, emailTable, email.PersonID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(email).Error
	})
}

// Update saves an email, clearing the flag on siblings when it is primary
func (r *EmailRepository) Update(email *models.Email) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, email.PersonID); err != nil {
			return err
		}
		if email.IsPrimary {
			if err := clearPrimary(tx, emailTable, email.PersonID, email.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(email).Error; err != nil {
			return err
		}
		if email.IsPrimary {
			return nil
		}
		return promoteOldest(tx, emailTable, email.PersonID)
	})
}

// Delete removes an email; if it was primary the oldest remaining one is promoted
func (r *EmailRepository) Delete(personID, id uuid.UUID) error {
	return deleteChild(r.db, emailTable, &models.Email{}, personID, id)
}

// SetPrimary makes the email the person's only primary email
func (r *EmailRepository) SetPrimary(personID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return markPrimary(tx, emailTable, personID, id)
	})
}
