package repository

import (
	"strings"

	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFilter narrows user listings
type UserFilter struct {
	Search string
	Role   models.UserRole
	Limit  int
	Offset int
}

// PersonFilter narrows person listings. Nil pointers and empty strings are ignored.
type PersonFilter struct {
	Search         string
	StageID        *uuid.UUID
	AssignedUserID *uuid.UUID
	PondID         *uuid.UUID
	Source         string
	Tag            string
	Contacted      *bool
	IDs            []uuid.UUID
	// VisibleTo restricts results to people assigned to the user, shared with
	// them as collaborator, or sitting in a pond they belong to
	VisibleTo *uuid.UUID
	SortBy    string
	SortDir   string
	Limit     int
	Offset    int
}

var personSortColumns = map[string]string{
	"created_at":       "people.created_at",
	"first_name":       "people.first_name",
	"last_name":        "people.last_name",
	"last_activity_at": "people.last_activity_at",
}

// orderClause returns a safe ORDER BY expression for the filter
func (f PersonFilter) orderClause() string {
	column, ok := personSortColumns[f.SortBy]
	if !ok {
		column = personSortColumns["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(f.SortDir, "asc") {
		dir = "ASC"
	}
	return column + " " + dir
}

func likePattern(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}
