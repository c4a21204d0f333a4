package models

import "github.com/google/uuid"

// Email is an email address of a person
type Email struct {
	PersonChildModel
	Value     string      `json:"value" gorm:"not null;size:255;index"`
	Type      EmailType   `json:"type" gorm:"type:varchar(20);not null;default:'home'"`
	Status    EmailStatus `json:"status" gorm:"type:varchar(20);not null;default:'valid'"`
	IsPrimary bool        `json:"is_primary" gorm:"not null;default:false"`
}

// TableName returns the table name for Email
func (Email) TableName() string {
	return "person_emails"
}

// Phone is a phone number of a person
type Phone struct {
	PersonChildModel
	Value     string      `json:"value" gorm:"not null;size:40;index"`
	Type      PhoneType   `json:"type" gorm:"type:varchar(20);not null;default:'mobile'"`
	Status    PhoneStatus `json:"status" gorm:"type:varchar(20);not null;default:'valid'"`
	IsPrimary bool        `json:"is_primary" gorm:"not null;default:false"`
}

// TableName returns the table name for Phone
func (Phone) TableName() string {
	return "person_phones"
}

// Address is a postal address of a person
type Address struct {
	PersonChildModel
	Street    string      `json:"street" gorm:"size:255"`
	City      string      `json:"city" gorm:"size:100"`
	State     string      `json:"state" gorm:"size:100"`
	Code      string      `json:"code" gorm:"size:20"`
	Country   string      `json:"country" gorm:"size:100"`
	Type      AddressType `json:"type" gorm:"type:varchar(20);not null;default:'home'"`
	IsPrimary bool        `json:"is_primary" gorm:"not null;default:false"`
}

// TableName returns the table name for Address
func (Address) TableName() string {
	return "person_addresses"
}

// Tag is a free-form label attached to a person
type Tag struct {
	BaseModel
	PersonID    uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:idx_person_tags_name,priority:1"`
	Name        string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_person_tags_name,priority:2"`
	Color       string    `json:"color" gorm:"size:7"`
	Description string    `json:"description" gorm:"size:255"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "person_tags"
}

// Collaborator gives a user shared visibility on a person
type Collaborator struct {
	BaseModel
	PersonID uuid.UUID        `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:idx_person_collaborators,priority:1"`
	UserID   uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_person_collaborators,priority:2;index"`
	Role     CollaboratorRole `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Collaborator
func (Collaborator) TableName() string {
	return "person_collaborators"
}

// File is an uploaded document attached to a person
type File struct {
	PersonChildModel
	Name       string     `json:"name" gorm:"not null;size:255"`
	Path       string     `json:"path" gorm:"not null;size:500"`
	MimeType   string     `json:"mime_type" gorm:"size:150"`
	Size       int64      `json:"size"`
	Type       FileType   `json:"type" gorm:"type:varchar(20);not null;default:'other'"`
	UploadedBy *uuid.UUID `json:"uploaded_by" gorm:"type:uuid"`
}

// TableName returns the table name for File
func (File) TableName() string {
	return "person_files"
}
