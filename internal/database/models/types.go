package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RuleConditions is stored as a jsonb array
type RuleConditions []RuleCondition

// Value implements driver.Valuer
func (c RuleConditions) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	return string(b), err
}

// Scan implements sql.Scanner
func (c *RuleConditions) Scan(src interface{}) error {
	return scanJSON(src, c)
}

// StringList is stored as a jsonb array of strings
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
