package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/metrics"
	"dealspace-backend/internal/repository"
	"dealspace-backend/internal/spreadsheet"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TemplateHeaders are the import columns, in template order
var TemplateHeaders = []string{
	"first_name", "last_name", "email", "phone", "source", "stage", "price", "tags",
	"street", "city", "state", "code", "country", "background",
}

// Template writes the empty import workbook
func (s *PersonService) Template(w io.Writer) error {
	return spreadsheet.WriteXLSX(w, spreadsheet.Sheet{Name: "People", Headers: TemplateHeaders})
}

// Import creates a person for every valid data row. Invalid rows are skipped and reported.
func (s *PersonService) Import(ctx context.Context, actor Actor, filename string, r io.Reader) (*ImportResult, error) {
	format, err := spreadsheet.FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	rows, err := spreadsheet.ReadRows(format, r)
	if err != nil {
		var fieldErr *apperrors.ValidationError
		if errors.As(err, &fieldErr) {
			return nil, err
		}
		// unreadable uploads are client input, not server faults
		return nil, apperrors.NewValidationError("file", err.Error())
	}

	limiter, err := s.newPeopleLimiter(actor.TenantID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []ImportRowError{}}
	stages := map[string]*uuid.UUID{}
	fail := func(row int, msg string) {
		result.Failed++
		result.Errors = append(result.Errors, ImportRowError{Row: row, Message: msg})
	}

	for _, row := range rows {
		if row.Empty() {
			continue
		}

		req, err := s.rowToRequest(actor.TenantID, row, stages)
		if err != nil {
			fail(row.Number, err.Error())
			continue
		}
		if err := validateRequest(s.validator, req); err != nil {
			fail(row.Number, describeValidation(err))
			continue
		}
		if err := limiter.reserve(); err != nil {
			fail(row.Number, err.Error())
			continue
		}

		person, err := s.buildPerson(actor, req)
		if err == nil {
			err = s.repo.Create(person)
		}
		if err != nil {
			limiter.release()
			logger.WithContext(ctx).WithField("row", row.Number).WithField("error", err.Error()).Warn("import row rejected")
			fail(row.Number, err.Error())
			continue
		}

		result.Imported++
		if s.runLeadFlow(ctx, person) {
			result.LeadFlowProcessed++
		}
	}

	metrics.PeopleImported.WithLabelValues("imported").Add(float64(result.Imported))
	metrics.PeopleImported.WithLabelValues("failed").Add(float64(result.Failed))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"file":                filename,
		"imported":            result.Imported,
		"failed":              result.Failed,
		"lead_flow_processed": result.LeadFlowProcessed,
	}).Info("people import finished")

	return result, nil
}

func (s *PersonService) rowToRequest(tenantID uuid.UUID, row spreadsheet.Row, stages map[string]*uuid.UUID) (*CreatePersonRequest, error) {
	req := &CreatePersonRequest{
		FirstName:  row.Get("first_name"),
		LastName:   row.Get("last_name"),
		Source:     row.Get("source"),
		Background: row.Get("background"),
		Tags:       splitList(row.Get("tags")),
	}

	for _, e := range splitList(row.Get("email")) {
		req.Emails = append(req.Emails, NestedEmail{Value: e})
	}
	for _, p := range splitList(row.Get("phone")) {
		req.Phones = append(req.Phones, NestedPhone{Value: p})
	}

	address := NestedAddress{
		Street:  row.Get("street"),
		City:    row.Get("city"),
		State:   row.Get("state"),
		Code:    row.Get("code"),
		Country: row.Get("country"),
	}
	if address != (NestedAddress{}) {
		req.Addresses = []NestedAddress{address}
	}

	if raw := row.Get("price"); raw != "" {
		price, err := decimal.NewFromString(strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", raw)
		}
		req.Price = &price
	}

	if name := row.Get("stage"); name != "" {
		key := strings.ToLower(name)
		id, cached := stages[key]
		if !cached {
			stage, err := s.stageRepo.GetByName(tenantID, name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to look up stage: %w", err)
			}
			if stage != nil {
				id = &stage.ID
			}
			stages[key] = id
		}
		if id == nil {
			return nil, fmt.Errorf("unknown stage %q", name)
		}
		req.StageID = id
	}

	return req, nil
}

// splitList splits a cell holding several values separated by commas or semicolons
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s is invalid (%s)", fe.Namespace(), fe.Tag())
	}
	return strings.Join(msgs, "; ")
}

var exportHeaders = append([]string{"id"}, append(TemplateHeaders, "assigned_to", "created_at")...)

// Export writes the given people, or every person the actor can see when ids is empty, as xlsx
func (s *PersonService) Export(actor Actor, req *BulkIDsRequest, w io.Writer) error {
	filter := repository.PersonFilter{IDs: dedupeIDs(req.IDs), SortBy: "created_at", SortDir: "asc"}
	if !actor.CanManage() {
		filter.VisibleTo = &actor.UserID
	}

	people, _, err := s.repo.List(actor.TenantID, filter)
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}

	rows := make([][]string, len(people))
	for i := range people {
		rows[i] = exportRow(&people[i])
	}
	return spreadsheet.WriteXLSX(w, spreadsheet.Sheet{Name: "People", Headers: exportHeaders, Rows: rows})
}

func exportRow(p *models.Person) []string {
	var stage, assigned string
	if p.Stage != nil {
		stage = p.Stage.Name
	}
	if p.AssignedUser != nil {
		assigned = p.AssignedUser.Name
	}
	address := p.PrimaryAddress()
	if address == nil {
		address = &models.Address{}
	}
	return []string{
		p.ID.String(),
		p.FirstName,
		p.LastName,
		p.PrimaryEmail(),
		p.PrimaryPhone(),
		p.Source,
		stage,
		p.Price.StringFixed(2),
		strings.Join(p.TagNames(), ", "),
		address.Street,
		address.City,
		address.State,
		address.Code,
		address.Country,
		p.Background,
		assigned,
		p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
