package models

import "github.com/google/uuid"

// Pond is a shared pool of leads that a set of users can work
type Pond struct {
	TenantModel
	Name   string    `json:"name" gorm:"not null;size:150"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"` // owner

	Owner *User  `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Users []User `json:"users,omitempty" gorm:"many2many:pond_users;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Pond
func (Pond) TableName() string {
	return "ponds"
}
