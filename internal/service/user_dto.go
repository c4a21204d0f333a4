package service

import (
	"time"

	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantResponse represents the account a user belongs to
type TenantResponse struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Plan   models.Plan       `json:"plan"`
	Limits models.PlanLimits `json:"limits"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	Phone          string          `json:"phone"`
	Avatar         string          `json:"avatar"`
	SocialProvider string          `json:"social_provider,omitempty"`
	LastLoginAt    *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Tenant         *TenantResponse `json:"tenant,omitempty"`
}

func toTenantResponse(t *models.Tenant) *TenantResponse {
	if t == nil {
		return nil
	}
	return &TenantResponse{ID: t.ID, Name: t.Name, Plan: t.Plan, Limits: t.PlanConfig()}
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		TenantID:       u.TenantID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		Avatar:         u.Avatar,
		SocialProvider: u.SocialProvider,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		Tenant:         toTenantResponse(u.Tenant),
	}
}

// UserSummary is the short form of a user embedded in other resources
type UserSummary struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func toUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
