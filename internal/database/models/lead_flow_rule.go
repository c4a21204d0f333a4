package models

import "github.com/google/uuid"

// LeadFlowRule routes newly created or imported people
type LeadFlowRule struct {
	TenantModel
	Name       string         `json:"name" gorm:"not null;size:150"`
	Source     string         `json:"source" gorm:"size:100"`
	Priority   int            `json:"priority" gorm:"not null;default:0;index"`
	IsActive   bool           `json:"is_active" gorm:"not null;default:true"`
	MatchType  MatchType      `json:"match_type" gorm:"type:varchar(10);not null;default:'all'"`
	Conditions RuleConditions `json:"conditions" gorm:"type:jsonb"`
	AssignType AssignType     `json:"assign_type" gorm:"type:varchar(10)"`
	AssignID   *uuid.UUID     `json:"assign_id" gorm:"type:uuid"`
	StageID    *uuid.UUID     `json:"stage_id" gorm:"type:uuid"`
	Tags       StringList     `json:"tags" gorm:"type:jsonb"`
}

// TableName returns the table name for LeadFlowRule
func (LeadFlowRule) TableName() string {
	return "lead_flow_rules"
}

// RuleCondition is a single predicate on a person field
type RuleCondition struct {
	Field    ConditionField    `json:"field" yaml:"field" validate:"required"`
	Operator ConditionOperator `json:"operator" yaml:"operator" validate:"required"`
	Value    string            `json:"value" yaml:"value"`
}
