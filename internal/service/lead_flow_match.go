package service

import (
	"strings"

	"dealspace-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

// ruleMatches reports whether the rule's source and conditions accept the person
func ruleMatches(rule *models.LeadFlowRule, person *models.Person) bool {
	if rule.Source != "" && !strings.EqualFold(strings.TrimSpace(rule.Source), strings.TrimSpace(person.Source)) {
		return false
	}
	if len(rule.Conditions) == 0 {
		return true
	}

	if rule.MatchType == models.MatchAny {
		for _, cond := range rule.Conditions {
			if conditionMatches(cond, person) {
				return true
			}
		}
		return false
	}

	for _, cond := range rule.Conditions {
		if !conditionMatches(cond, person) {
			return false
		}
	}
	return true
}

// fieldValues returns every value the person holds for a field; multi-valued fields yield one entry per child record
func fieldValues(field models.ConditionField, person *models.Person) []string {
	switch field {
	case models.FieldSource:
		return []string{person.Source}
	case models.FieldFirstName:
		return []string{person.FirstName}
	case models.FieldLastName:
		return []string{person.LastName}
	case models.FieldPrice:
		return []string{person.Price.String()}
	case models.FieldEmail:
		values := make([]string, len(person.Emails))
		for i, e := range person.Emails {
			values[i] = e.Value
		}
		return values
	case models.FieldPhone:
		values := make([]string, len(person.Phones))
		for i, p := range person.Phones {
			values[i] = p.Value
		}
		return values
	case models.FieldTag:
		return person.TagNames()
	case models.FieldCity:
		values := make([]string, len(person.Addresses))
		for i, a := range person.Addresses {
			values[i] = a.City
		}
		return values
	case models.FieldState:
		values := make([]string, len(person.Addresses))
		for i, a := range person.Addresses {
			values[i] = a.State
		}
		return values
	}
	return nil
}

func conditionMatches(cond models.RuleCondition, person *models.Person) bool {
	values := fieldValues(cond.Field, person)
	expected := strings.ToLower(strings.TrimSpace(cond.Value))

	if cond.Operator == models.OpNotEquals {
		for _, v := range values {
			if strings.ToLower(strings.TrimSpace(v)) == expected {
				return false
			}
		}
		return true
	}

	for _, v := range values {
		if valueMatches(cond.Operator, strings.ToLower(strings.TrimSpace(v)), expected) {
			return true
		}
	}
	return false
}

func valueMatches(op models.ConditionOperator, actual, expected string) bool {
	switch op {
	case models.OpEquals:
		return actual == expected
	case models.OpContains:
		return strings.Contains(actual, expected)
	case models.OpStartsWith:
		return strings.HasPrefix(actual, expected)
	case models.OpIn:
		for _, candidate := range strings.Split(expected, ",") {
			if strings.TrimSpace(candidate) == actual {
				return true
			}
		}
		return false
	case models.OpGreater, models.OpLess:
		a, err := decimal.NewFromString(actual)
		if err != nil {
			return false
		}
		e, err := decimal.NewFromString(expected)
		if err != nil {
			return false
		}
		if op == models.OpGreater {
			return a.GreaterThan(e)
		}
		return a.LessThan(e)
	}
	return false
}
