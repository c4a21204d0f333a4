package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor is the authenticated user a request is performed for
type Actor struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     models.UserRole
	Email    string
}

// CanManage reports whether the actor administers the tenant
func (a Actor) CanManage() bool {
	return a.Role == models.UserRoleOwner || a.Role == models.UserRoleAdmin
}

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// PageMeta describes the page returned by a list operation
type PageMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

// normalizePage clamps paging input and returns page, page size and offset
func normalizePage(page, perPage int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage, (page - 1) * perPage
}

func newPageMeta(total int64, page, perPage int) PageMeta {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return PageMeta{Total: total, Page: page, PerPage: perPage, LastPage: lastPage}
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{5,24}$`)

// NewValidator returns a validator with the custom rules used by request DTOs
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("e164ish", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	}); err != nil {
		panic(fmt.Sprintf("register e164ish validation: %v", err))
	}
	return v
}

// normalizer is implemented by requests that clean their input before validation
type normalizer interface {
	normalize()
}

// validateRequest normalizes the request when it supports it, then validates it
func validateRequest(v *validator.Validate, req interface{}) error {
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	return v.Struct(req)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeEmailPtr(s *string) {
	if s != nil {
		*s = normalizeEmail(*s)
	}
}

// notFound maps gorm.ErrRecordNotFound to the entity sentinel and wraps anything else
func notFound(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// isUniqueViolation reports a Postgres unique constraint violation
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key value")
}

// personGuard checks that a person exists in the actor's tenant and that the actor may see it
type personGuard struct {
	people repository.PersonRepositoryInterface
}

func (g personGuard) check(actor Actor, personID uuid.UUID) error {
	exists, err := g.people.Exists(actor.TenantID, personID)
	if err != nil {
		return fmt.Errorf("failed to verify person: %w", err)
	}
	if !exists {
		return apperrors.ErrPersonNotFound
	}
	if actor.CanManage() {
		return nil
	}

	visible, err := g.people.IsVisibleTo(actor.TenantID, personID, actor.UserID)
	if err != nil {
		return fmt.Errorf("failed to verify person access: %w", err)
	}
	if !visible {
		return apperrors.ErrPersonNotFound
	}
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
