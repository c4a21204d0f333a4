package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Helpers for child tables that keep at most one is_primary row per person.
// A partial unique index backs the rule, so a primary is always cleared before
// another is set, and writers lock the person row to serialize.

// lockPerson takes the person row lock for the rest of the transaction
func lockPerson(tx *gorm.DB, personID uuid.UUID) error {
	var ids []uuid.UUID
	return tx.Table("people").Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", personID).Pluck("id", &ids).Error
}

func countForPerson(tx *gorm.DB, table string, personID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Table(table).Where("person_id = ?", personID).Count(&count).Error
	return count, err
}

func clearPrimary(tx *gorm.DB, table string, personID, exceptID uuid.UUID) error {
	return tx.Table(table).
		Where("person_id = ? AND id <> ? AND is_primary = ?", personID, exceptID, true).
		Update("is_primary", false).Error
}

func markPrimary(tx *gorm.DB, table string, personID, id uuid.UUID) error {
	if err := lockPerson(tx, personID); err != nil {
		return err
	}
	if err := clearPrimary(tx, table, personID, id); err != nil {
		return err
	}
	result := tx.Table(table).Where("person_id = ? AND id = ?", personID, id).Update("is_primary", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// promoteOldest makes the earliest remaining row primary when none is
func promoteOldest(tx *gorm.DB, table string, personID uuid.UUID) error {
	var primaries int64
	if err := tx.Table(table).Where("person_id = ? AND is_primary = ?", personID, true).Count(&primaries).Error; err != nil {
		return err
	}
	if primaries > 0 {
		return nil
	}

	var oldest struct{ ID uuid.UUID }
	err := tx.Table(table).Select("id").Where("person_id = ?", personID).Order("created_at ASC").Limit(1).Scan(&oldest).Error
	if err != nil {
		return err
	}
	if oldest.ID == uuid.Nil {
		return nil
	}
	return tx.Table(table).Where("id = ?", oldest.ID).Update("is_primary", true).Error
}

// deleteChild removes a row and promotes a replacement if it was primary
func deleteChild(db *gorm.DB, table string, model interface{}, personID, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := lockPerson(tx, personID); err != nil {
			return err
		}
		result := tx.Delete(model, "person_id = ? AND id = ?", personID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return promoteOldest(tx, table, personID)
	})
}
