package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Person is a lead or contact, the central CRM record
type Person struct {
	TenantModel
	FirstName       string          `json:"first_name" gorm:"not null;size:100"`
	LastName        string          `json:"last_name" gorm:"size:100"`
	Source          string          `json:"source" gorm:"size:100;index"`
	SourceURL       string          `json:"source_url" gorm:"size:500"`
	StageID         *uuid.UUID      `json:"stage_id" gorm:"type:uuid;index"`
	AssignedUserID  *uuid.UUID      `json:"assigned_user_id" gorm:"type:uuid;index"`
	AssignedPondID  *uuid.UUID      `json:"assigned_pond_id" gorm:"type:uuid;index"`
	AssignedGroupID *uuid.UUID      `json:"assigned_group_id" gorm:"type:uuid;index"`
	Price           decimal.Decimal `json:"price" gorm:"type:numeric(14,2);not null;default:0"`
	Background      string          `json:"background" gorm:"type:text"`
	Timeframe       string          `json:"timeframe" gorm:"size:50"`
	Contacted       bool            `json:"contacted" gorm:"not null;default:false"`
	Claimed         bool            `json:"claimed" gorm:"not null;default:true"`
	ClaimExpiresAt  *time.Time      `json:"claim_expires_at,omitempty"`
	LastActivityAt  *time.Time      `json:"last_activity_at"`
	CreatedBy       *uuid.UUID      `json:"created_by" gorm:"type:uuid"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`

	Stage         *Stage         `json:"stage,omitempty" gorm:"foreignKey:StageID;constraint:OnDelete:SET NULL"`
	AssignedUser  *User          `json:"assigned_user,omitempty" gorm:"foreignKey:AssignedUserID;constraint:OnDelete:SET NULL"`
	Emails        []Email        `json:"emails,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Phones        []Phone        `json:"phones,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Addresses     []Address      `json:"addresses,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Tags          []Tag          `json:"tags,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Collaborators []Collaborator `json:"collaborators,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Files         []File         `json:"files,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}

// FullName joins first and last name
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PrimaryEmail returns the primary email value, or the first one
func (p Person) PrimaryEmail() string {
	for _, e := range p.Emails {
		if e.IsPrimary {
			return e.Value
		}
	}
	if len(p.Emails) > 0 {
		return p.Emails[0].Value
	}
	return ""
}

// PrimaryPhone returns the primary phone value, or the first one
func (p Person) PrimaryPhone() string {
	for _, ph := range p.Phones {
		if ph.IsPrimary {
			return ph.Value
		}
	}
	if len(p.Phones) > 0 {
		return p.Phones[0].Value
	}
	return ""
}

// PrimaryAddress returns the primary address, or the first one
func (p Person) PrimaryAddress() *Address {
	for i := range p.Addresses {
		if p.Addresses[i].IsPrimary {
			return &p.Addresses[i]
		}
	}
	if len(p.Addresses) > 0 {
		return &p.Addresses[0]
	}
	return nil
}

// TagNames lists the person's tag names
func (p Person) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}
