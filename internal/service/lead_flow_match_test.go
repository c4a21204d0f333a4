package service

import (
	"testing"

	"dealspace-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func matchPerson() *models.Person {
	return &models.Person{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Source:    "Zillow",
		Price:     decimal.NewFromInt(450000),
		Emails: []models.Email{
			{Value: "ada@example.com"},
			{Value: "ada@work.example.org"},
		},
		Phones:    []models.Phone{{Value: "+1 555 0100"}},
		Addresses: []models.Address{{City: "Austin", State: "TX"}},
		Tags:      []models.Tag{{Name: "Buyer"}, {Name: "VIP"}},
	}
}

func TestConditionMatches(t *testing.T) {
	person := matchPerson()

	tests := []struct {
		name   string
		cond   models.RuleCondition
		person *models.Person
		want   bool
	}{
		{"equals ignores case", models.RuleCondition{Field: models.FieldFirstName, Operator: models.OpEquals, Value: "ADA"}, person, true},
		{"equals mismatch", models.RuleCondition{Field: models.FieldLastName, Operator: models.OpEquals, Value: "Hopper"}, person, false},
		{"contains any email", models.RuleCondition{Field: models.FieldEmail, Operator: models.OpContains, Value: "work.example"}, person, true},
		{"starts with phone", models.RuleCondition{Field: models.FieldPhone, Operator: models.OpStartsWith, Value: "+1 555"}, person, true},
		{"in list", models.RuleCondition{Field: models.FieldState, Operator: models.OpIn, Value: "CA, TX ,NY"}, person, true},
		{"not in list", models.RuleCondition{Field: models.FieldCity, Operator: models.OpIn, Value: "Dallas,Houston"}, person, false},
		{"tag equals", models.RuleCondition{Field: models.FieldTag, Operator: models.OpEquals, Value: "vip"}, person, true},
		{"not equals checks every value", models.RuleCondition{Field: models.FieldTag, Operator: models.OpNotEquals, Value: "buyer"}, person, false},
		{"not equals with no match", models.RuleCondition{Field: models.FieldTag, Operator: models.OpNotEquals, Value: "seller"}, person, true},
		{"greater than", models.RuleCondition{Field: models.FieldPrice, Operator: models.OpGreater, Value: "400000"}, person, true},
		{"less than", models.RuleCondition{Field: models.FieldPrice, Operator: models.OpLess, Value: "400000"}, person, false},
		{"numeric op on text", models.RuleCondition{Field: models.FieldSource, Operator: models.OpGreater, Value: "1"}, person, false},
		{"empty multi-valued field", models.RuleCondition{Field: models.FieldEmail, Operator: models.OpEquals, Value: ""}, &models.Person{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conditionMatches(tt.cond, tt.person))
		})
	}
}

func TestRuleMatches(t *testing.T) {
	person := matchPerson()
	cheap := models.RuleCondition{Field: models.FieldPrice, Operator: models.OpLess, Value: "100000"}
	texas := models.RuleCondition{Field: models.FieldState, Operator: models.OpEquals, Value: "tx"}

	t.Run("source must match", func(t *testing.T) {
		assert.False(t, ruleMatches(&models.LeadFlowRule{Source: "Realtor.com"}, person))
		assert.True(t, ruleMatches(&models.LeadFlowRule{Source: " zillow "}, person))
	})

	t.Run("no conditions matches", func(t *testing.T) {
		assert.True(t, ruleMatches(&models.LeadFlowRule{}, person))
	})

	t.Run("all requires every condition", func(t *testing.T) {
		rule := &models.LeadFlowRule{MatchType: models.MatchAll, Conditions: models.RuleConditions{cheap, texas}}
		assert.False(t, ruleMatches(rule, person))
	})

	t.Run("any requires one condition", func(t *testing.T) {
		rule := &models.LeadFlowRule{MatchType: models.MatchAny, Conditions: models.RuleConditions{cheap, texas}}
		assert.True(t, ruleMatches(rule, person))
	})
}
