package service

import (
	"strings"
	"time"

	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NestedEmail is an email submitted together with a person
type NestedEmail struct {
	Value     string             `json:"value" validate:"required,email,max=255"`
	Type      models.EmailType   `json:"type" validate:"omitempty,oneof=home work other"`
	Status    models.EmailStatus `json:"status" validate:"omitempty,oneof=valid bounced unsubscribed"`
	IsPrimary bool               `json:"is_primary"`
}

// NestedPhone is a phone submitted together with a person
type NestedPhone struct {
	Value     string             `json:"value" validate:"required,e164ish"`
	Type      models.PhoneType   `json:"type" validate:"omitempty,oneof=mobile home work fax other"`
	Status    models.PhoneStatus `json:"status" validate:"omitempty,oneof=valid invalid do_not_call"`
	IsPrimary bool               `json:"is_primary"`
}

// NestedAddress is an address submitted together with a person
type NestedAddress struct {
	Street    string             `json:"street" validate:"required_without_all=City State Code Country,max=255"`
	City      string             `json:"city" validate:"max=100"`
	State     string             `json:"state" validate:"max=100"`
	Code      string             `json:"code" validate:"max=20"`
	Country   string             `json:"country" validate:"max=100"`
	Type      models.AddressType `json:"type" validate:"omitempty,oneof=home work mailing other"`
	IsPrimary bool               `json:"is_primary"`
}

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	FirstName      string           `json:"first_name" validate:"required,max=100"`
	LastName       string           `json:"last_name" validate:"max=100"`
	Source         string           `json:"source" validate:"max=100"`
	SourceURL      string           `json:"source_url" validate:"omitempty,url,max=500"`
	StageID        *uuid.UUID       `json:"stage_id"`
	AssignedUserID *uuid.UUID       `json:"assigned_user_id"`
	AssignedPondID *uuid.UUID       `json:"assigned_pond_id"`
	Price          *decimal.Decimal `json:"price" swaggertype:"number"`
	Background     string           `json:"background" validate:"max=10000"`
	Timeframe      string           `json:"timeframe" validate:"max=50"`
	Contacted      bool             `json:"contacted"`
	Emails         []NestedEmail    `json:"emails" validate:"dive"`
	Phones         []NestedPhone    `json:"phones" validate:"dive"`
	Addresses      []NestedAddress  `json:"addresses" validate:"dive"`
	Tags           []string         `json:"tags" validate:"dive,required,max=100"`
}

// UpdatePersonRequest represents a partial update of a person's own fields
type UpdatePersonRequest struct {
	FirstName      *string          `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName       *string          `json:"last_name" validate:"omitempty,max=100"`
	Source         *string          `json:"source" validate:"omitempty,max=100"`
	SourceURL      *string          `json:"source_url" validate:"omitempty,url,max=500"`
	StageID        *uuid.UUID       `json:"stage_id"`
	AssignedUserID *uuid.UUID       `json:"assigned_user_id"`
	AssignedPondID *uuid.UUID       `json:"assigned_pond_id"`
	Price          *decimal.Decimal `json:"price" swaggertype:"number"`
	Background     *string          `json:"background" validate:"omitempty,max=10000"`
	Timeframe      *string          `json:"timeframe" validate:"omitempty,max=50"`
	Contacted      *bool            `json:"contacted"`
}

func (r *CreatePersonRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Source = strings.TrimSpace(r.Source)
	r.SourceURL = strings.TrimSpace(r.SourceURL)
	r.Timeframe = strings.TrimSpace(r.Timeframe)
	for i := range r.Emails {
		r.Emails[i].Value = normalizeEmail(r.Emails[i].Value)
	}
	for i := range r.Phones {
		r.Phones[i].Value = strings.TrimSpace(r.Phones[i].Value)
	}
	for i := range r.Addresses {
		a := &r.Addresses[i]
		a.Street = strings.TrimSpace(a.Street)
		a.City = strings.TrimSpace(a.City)
		a.State = strings.TrimSpace(a.State)
		a.Code = strings.TrimSpace(a.Code)
		a.Country = strings.TrimSpace(a.Country)
	}
	for i := range r.Tags {
		r.Tags[i] = strings.TrimSpace(r.Tags[i])
	}
}

func (r *UpdatePersonRequest) normalize() {
	trimPtr(r.FirstName)
	trimPtr(r.LastName)
	trimPtr(r.Source)
	trimPtr(r.SourceURL)
	trimPtr(r.Timeframe)
}

// PersonListQuery holds the normalized index filters
type PersonListQuery struct {
	Search         string
	StageID        *uuid.UUID
	AssignedUserID *uuid.UUID
	PondID         *uuid.UUID
	Source         string
	Tag            string
	Contacted      *bool
	SortBy         string `validate:"omitempty,oneof=created_at first_name last_name last_activity_at"`
	SortDir        string `validate:"omitempty,oneof=asc desc"`
	Page           int
	PerPage        int
}

// BulkIDsRequest carries the ids of a bulk operation
type BulkIDsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// StageSummary is the short form of a stage embedded in a person
type StageSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PersonResponse represents a person with child records
type PersonResponse struct {
	ID              uuid.UUID             `json:"id"`
	FirstName       string                `json:"first_name"`
	LastName        string                `json:"last_name"`
	Name            string                `json:"name"`
	Source          string                `json:"source"`
	SourceURL       string                `json:"source_url"`
	StageID         *uuid.UUID            `json:"stage_id"`
	Stage           *StageSummary         `json:"stage,omitempty"`
	AssignedUserID  *uuid.UUID            `json:"assigned_user_id"`
	AssignedUser    *UserSummary          `json:"assigned_user,omitempty"`
	AssignedPondID  *uuid.UUID            `json:"assigned_pond_id"`
	AssignedGroupID *uuid.UUID            `json:"assigned_group_id"`
	Price           decimal.Decimal       `json:"price" swaggertype:"number"`
	Background      string                `json:"background"`
	Timeframe       string                `json:"timeframe"`
	Contacted       bool                  `json:"contacted"`
	Claimed         bool                  `json:"claimed"`
	ClaimExpiresAt  *time.Time            `json:"claim_expires_at,omitempty"`
	LastActivityAt  *time.Time            `json:"last_activity_at"`
	CreatedBy       *uuid.UUID            `json:"created_by"`
	Emails          []models.Email        `json:"emails"`
	Phones          []models.Phone        `json:"phones"`
	Addresses       []models.Address      `json:"addresses"`
	Tags            []models.Tag          `json:"tags"`
	Collaborators   []models.Collaborator `json:"collaborators"`
	Files           []models.File         `json:"files"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// PersonListResponse represents a paginated list of people
type PersonListResponse struct {
	People []PersonResponse `json:"people"`
	Meta   PageMeta         `json:"meta"`
}

// ImportRowError reports why a row was skipped
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a person import
type ImportResult struct {
	Imported          int              `json:"imported"`
	Failed            int              `json:"failed"`
	Errors            []ImportRowError `json:"errors"`
	LeadFlowProcessed int              `json:"lead_flow_processed"`
}

func toPersonResponse(p *models.Person) *PersonResponse {
	resp := &PersonResponse{
		ID:              p.ID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Name:            p.FullName(),
		Source:          p.Source,
		SourceURL:       p.SourceURL,
		StageID:         p.StageID,
		AssignedUserID:  p.AssignedUserID,
		AssignedUser:    toUserSummary(p.AssignedUser),
		AssignedPondID:  p.AssignedPondID,
		AssignedGroupID: p.AssignedGroupID,
		Price:           p.Price,
		Background:      p.Background,
		Timeframe:       p.Timeframe,
		Contacted:       p.Contacted,
		Claimed:         p.Claimed,
		ClaimExpiresAt:  p.ClaimExpiresAt,
		LastActivityAt:  p.LastActivityAt,
		CreatedBy:       p.CreatedBy,
		Emails:          nonNil(p.Emails),
		Phones:          nonNil(p.Phones),
		Addresses:       nonNil(p.Addresses),
		Tags:            nonNil(p.Tags),
		Collaborators:   nonNil(p.Collaborators),
		Files:           nonNil(p.Files),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Stage != nil {
		resp.Stage = &StageSummary{ID: p.Stage.ID, Name: p.Stage.Name}
	}
	return resp
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
