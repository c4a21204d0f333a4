package models

import "github.com/google/uuid"

// Stage is a pipeline status a person occupies
type Stage struct {
	BaseModel
	TenantID    uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_stages_tenant_name,priority:1"`
	Name        string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_stages_tenant_name,priority:2"`
	Description string    `json:"description" gorm:"type:text"`
	Position    int       `json:"position" gorm:"not null;default:0"`
	IsDefault   bool      `json:"is_default" gorm:"not null;default:false"`
}

// TableName returns the table name for Stage
func (Stage) TableName() string {
	return "stages"
}

// DefaultStageNames are seeded for every new tenant, the first one is the default
var DefaultStageNames = []string{"New", "Contacted", "Qualified", "Nurture", "Closed", "Trash"}
