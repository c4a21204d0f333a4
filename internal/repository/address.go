package repository

import (
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const addressTable = "person_addresses"

// AddressRepository handles database operations for person addresses
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// ListByPerson retrieves all addresses of a person, primary first
func (r *AddressRepository) ListByPerson(personID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Where("person_id = ?", personID).Order("is_primary DESC, created_at ASC").Find(&addresses).Error
	return addresses, err
}

// GetByID retrieves an address of a person
func (r *AddressRepository) GetByID(personID, id uuid.UUID) (*models.Address, error) {
	var address models.Address
	err := r.db.First(&address, "person_id = ? AND id = ?", personID, id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// Create stores an address; the person's first address always becomes primary
func (r *AddressRepository) Create(address *models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, address.PersonID); err != nil {
			return err
		}
		count, err := countForPerson(tx, addressTable, address.PersonID)
		if err != nil {
			return err
		}
		if count == 0 {
			address.IsPrimary = true
		}
		if address.IsPrimary {
			if err := clearPrimary(tx, addressTable, address.PersonID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}

// Update saves an address, clearing the flag on siblings when it is primary
func (r *AddressRepository) Update(address *models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, address.PersonID); err != nil {
			return err
		}
		if address.IsPrimary {
			if err := clearPrimary(tx, addressTable, address.PersonID, address.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(address).Error; err != nil {
			return err
		}
		if address.IsPrimary {
			return nil
		}
		return promoteOldest(tx, addressTable, address.PersonID)
	})
}

// Delete removes an address; if it was primary the oldest remaining one is promoted
func (r *AddressRepository) Delete(personID, id uuid.UUID) error {
	return deleteChild(r.db, addressTable, &models.Address{}, personID, id)
}

// SetPrimary makes the address the person's only primary address
func (r *AddressRepository) SetPrimary(personID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return markPrimary(tx, addressTable, personID, id)
	})
}
