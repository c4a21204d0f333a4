package models

import "github.com/google/uuid"

// Group is an ordered set of users that leads are distributed to
type Group struct {
	TenantModel
	Name               string            `json:"name" gorm:"not null;size:150"`
	Type               GroupType         `json:"type" gorm:"type:varchar(20);not null;default:'agent'"`
	Distribution       DistributionType  `json:"distribution" gorm:"type:varchar(20);not null;default:'round_robin'"`
	ClaimWindowMinutes int               `json:"claim_window_minutes" gorm:"not null;default:0"`
	IsPrimary          bool              `json:"is_primary" gorm:"not null;default:false"`
	LastAssignedIndex  int               `json:"-" gorm:"not null;default:-1"`
	Members            []GroupMember     `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// GroupMember places a user at a position in a group's rotation
type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	Position int       `json:"position" gorm:"not null;default:0"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_users"
}

// MemberIDs returns member user ids in rotation order
func (g Group) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.UserID
	}
	return ids
}
