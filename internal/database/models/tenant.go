package models

// Tenant is an account (brokerage, team) that owns users and people
type Tenant struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:150"`
	Plan Plan   `json:"plan" gorm:"type:varchar(20);not null;default:'free'"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// PlanLimits describes the quotas of a plan. Zero means unlimited.
type PlanLimits struct {
	MaxUsers  int `json:"max_users"`
	MaxPeople int `json:"max_people"`
}

var planLimits = map[Plan]PlanLimits{
	PlanFree:       {MaxUsers: 3, MaxPeople: 500},
	PlanPro:        {MaxUsers: 25, MaxPeople: 25000},
	PlanEnterprise: {MaxUsers: 0, MaxPeople: 0},
}

// PlanConfig returns the limits for the tenant's plan. Unknown plans get the free tier.
func (t Tenant) PlanConfig() PlanLimits {
	if limits, ok := planLimits[t.Plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// Allows reports whether count existing rows leave room for one more under limit
func (l PlanLimits) Allows(limit int, count int64) bool {
	return limit == 0 || count < int64(limit)
}
