package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a CRM operator (agent, lender, admin) belonging to a tenant
type User struct {
	BaseModel
	TenantID       uuid.UUID      `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Name           string         `json:"name" gorm:"not null;size:150"`
	Email          string         `json:"email" gorm:"uniqueIndex:idx_users_email_live,where:deleted_at IS NULL;not null;size:255"`
	PasswordHash   string         `json:"-" gorm:"size:255"`
	Role           UserRole       `json:"role" gorm:"type:varchar(20);not null;default:'agent'"`
	Phone          string         `json:"phone" gorm:"size:40"`
	Avatar         string         `json:"avatar" gorm:"size:500"`
	SocialProvider string         `json:"social_provider,omitempty" gorm:"size:20;index:idx_users_social"`
	SocialID       string         `json:"-" gorm:"size:191;index:idx_users_social"`
	LastLoginAt    *time.Time     `json:"last_login_at,omitempty"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// CanManage reports whether the user may administer tenant settings
func (u User) CanManage() bool {
	return u.Role == UserRoleOwner || u.Role == UserRoleAdmin
}
