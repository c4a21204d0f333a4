package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadProcessor runs lead flow rules on a newly created person
type LeadProcessor interface {
	ProcessLead(ctx context.Context, person *models.Person) (*models.LeadFlowRule, error)
}

// PersonService handles business logic for people
type PersonService struct {
	repo       repository.PersonRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	stageRepo  repository.StageRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	pondRepo   repository.PondRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
	leadFlow   LeadProcessor
	guard      personGuard
	validator  *validator.Validate
	now        func() time.Time
}

// NewPersonService creates a new person service
func NewPersonService(
	repo repository.PersonRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	stageRepo repository.StageRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	pondRepo repository.PondRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	leadFlow LeadProcessor,
	validator *validator.Validate,
) *PersonService {
	return &PersonService{
		repo:       repo,
		tenantRepo: tenantRepo,
		stageRepo:  stageRepo,
		userRepo:   userRepo,
		pondRepo:   pondRepo,
		groupRepo:  groupRepo,
		leadFlow:   leadFlow,
		guard:      personGuard{people: repo},
		validator:  validator,
		now:        time.Now,
	}
}

// List retrieves people matching the query. Agents and lenders only see people visible to them.
func (s *PersonService) List(actor Actor, query *PersonListQuery) (*PersonListResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	page, perPage, offset := normalizePage(query.Page, query.PerPage)
	filter := repository.PersonFilter{
		Search:         query.Search,
		StageID:        query.StageID,
		AssignedUserID: query.AssignedUserID,
		PondID:         query.PondID,
		Source:         query.Source,
		Tag:            query.Tag,
		Contacted:      query.Contacted,
		SortBy:         query.SortBy,
		SortDir:        query.SortDir,
		Limit:          perPage,
		Offset:         offset,
	}
	if !actor.CanManage() {
		filter.VisibleTo = &actor.UserID
	}

	people, total, err := s.repo.List(actor.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	responses := make([]PersonResponse, len(people))
	for i := range people {
		responses[i] = *toPersonResponse(&people[i])
	}
	return &PersonListResponse{People: responses, Meta: newPageMeta(total, page, perPage)}, nil
}

// Create creates a person with nested contact data and runs the lead flow.
// Lead flow failures are logged and never fail the creation.
func (s *PersonService) Create(ctx context.Context, actor Actor, req *CreatePersonRequest) (*PersonResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	limiter, err := s.newPeopleLimiter(actor.TenantID)
	if err != nil {
		return nil, err
	}
	if err := limiter.reserve(); err != nil {
		return nil, err
	}

	person, err := s.buildPerson(actor, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	s.runLeadFlow(ctx, person)

	return s.load(actor.TenantID, person.ID)
}

// buildPerson resolves references and turns the request into a model ready to insert
func (s *PersonService) buildPerson(actor Actor, req *CreatePersonRequest) (*models.Person, error) {
	stageID, err := s.resolveStage(actor.TenantID, req.StageID)
	if err != nil {
		return nil, err
	}

	assignedUserID := req.AssignedUserID
	if assignedUserID == nil && !actor.CanManage() {
		assignedUserID = &actor.UserID
	}
	if err := s.verifyUser(actor.TenantID, assignedUserID); err != nil {
		return nil, err
	}
	if err := s.verifyPond(actor.TenantID, req.AssignedPondID); err != nil {
		return nil, err
	}

	now := s.now()
	person := &models.Person{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Source:         strings.TrimSpace(req.Source),
		SourceURL:      req.SourceURL,
		StageID:        stageID,
		AssignedUserID: assignedUserID,
		AssignedPondID: req.AssignedPondID,
		Background:     req.Background,
		Timeframe:      req.Timeframe,
		Contacted:      req.Contacted,
		Claimed:        true,
		LastActivityAt: &now,
		CreatedBy:      &actor.UserID,
	}
	person.TenantID = actor.TenantID
	if req.Price != nil {
		person.Price = *req.Price
	}

	primary := primaryIndex(len(req.Emails), func(i int) bool { return req.Emails[i].IsPrimary })
	for i, e := range req.Emails {
		person.Emails = append(person.Emails, models.Email{
			Value:     strings.ToLower(strings.TrimSpace(e.Value)),
			Type:      orDefault(e.Type, models.EmailTypeHome),
			Status:    orDefault(e.Status, models.EmailStatusValid),
			IsPrimary: i == primary,
		})
	}

	primary = primaryIndex(len(req.Phones), func(i int) bool { return req.Phones[i].IsPrimary })
	for i, p := range req.Phones {
		person.Phones = append(person.Phones, models.Phone{
			Value:     strings.TrimSpace(p.Value),
			Type:      orDefault(p.Type, models.PhoneTypeMobile),
			Status:    orDefault(p.Status, models.PhoneStatusValid),
			IsPrimary: i == primary,
		})
	}

	primary = primaryIndex(len(req.Addresses), func(i int) bool { return req.Addresses[i].IsPrimary })
	for i, a := range req.Addresses {
		person.Addresses = append(person.Addresses, models.Address{
			Street:    a.Street,
			City:      a.City,
			State:     a.State,
			Code:      a.Code,
			Country:   a.Country,
			Type:      orDefault(a.Type, models.AddressTypeHome),
			IsPrimary: i == primary,
		})
	}

	for _, name := range uniqueNames(req.Tags) {
		person.Tags = append(person.Tags, models.Tag{Name: name})
	}

	return person, nil
}

// primaryIndex returns the first flagged record, or 0 when none is flagged
func primaryIndex(n int, flagged func(int) bool) int {
	for i := 0; i < n; i++ {
		if flagged(i) {
			return i
		}
	}
	return 0
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}

// uniqueNames trims names and drops blanks and case-insensitive duplicates
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

func (s *PersonService) runLeadFlow(ctx context.Context, person *models.Person) bool {
	rule, err := s.leadFlow.ProcessLead(ctx, person)
	if err != nil {
		logger.WithContext(ctx).WithField("person_id", person.ID.String()).
			WithField("error", err.Error()).
			Warn("lead flow processing failed")
		return false
	}
	return rule != nil
}

// Get retrieves a person the actor may see
func (s *PersonService) Get(actor Actor, id uuid.UUID) (*PersonResponse, error) {
	if err := s.guard.check(actor, id); err != nil {
		return nil, err
	}
	return s.load(actor.TenantID, id)
}

func (s *PersonService) load(tenantID, id uuid.UUID) (*PersonResponse, error) {
	person, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPersonNotFound, "get person")
	}
	return toPersonResponse(person), nil
}

// Update changes a person's own fields
func (s *PersonService) Update(actor Actor, id uuid.UUID, req *UpdatePersonRequest) (*PersonResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.guard.check(actor, id); err != nil {
		return nil, err
	}
	person, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPersonNotFound, "get person")
	}

	if req.FirstName != nil {
		person.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		person.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Source != nil {
		person.Source = strings.TrimSpace(*req.Source)
	}
	if req.SourceURL != nil {
		person.SourceURL = *req.SourceURL
	}
	if req.StageID != nil {
		if _, err := s.stageRepo.GetByID(actor.TenantID, *req.StageID); err != nil {
			return nil, notFound(err, apperrors.ErrStageNotFound, "verify stage")
		}
		person.StageID = req.StageID
		person.Stage = nil
	}
	if req.AssignedUserID != nil {
		if err := s.verifyUser(actor.TenantID, req.AssignedUserID); err != nil {
			return nil, err
		}
		person.AssignedUserID = req.AssignedUserID
		person.AssignedUser = nil
		person.Claimed = true
		person.ClaimExpiresAt = nil
	}
	if req.AssignedPondID != nil {
		if err := s.verifyPond(actor.TenantID, req.AssignedPondID); err != nil {
			return nil, err
		}
		person.AssignedPondID = req.AssignedPondID
	}
	if req.Price != nil {
		person.Price = *req.Price
	}
	if req.Background != nil {
		person.Background = *req.Background
	}
	if req.Timeframe != nil {
		person.Timeframe = *req.Timeframe
	}
	if req.Contacted != nil {
		person.Contacted = *req.Contacted
	}
	now := s.now()
	person.LastActivityAt = &now

	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	return s.load(actor.TenantID, id)
}

// Delete soft-deletes a person
func (s *PersonService) Delete(actor Actor, id uuid.UUID) error {
	if err := s.guard.check(actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return notFound(err, apperrors.ErrPersonNotFound, "delete person")
	}
	return nil
}

// BulkDelete soft-deletes the given people of the tenant and returns how many were removed
func (s *PersonService) BulkDelete(actor Actor, req *BulkIDsRequest) (int64, error) {
	ids := dedupeIDs(req.IDs)
	if len(ids) == 0 {
		return 0, apperrors.NewValidationError("ids", "at least one id is required")
	}
	if !actor.CanManage() {
		return 0, apperrors.ErrForbidden
	}

	deleted, err := s.repo.BulkDelete(actor.TenantID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete people: %w", err)
	}
	return deleted, nil
}

// Claim lets a member of the assigned group take an unclaimed person. The first claim wins.
func (s *PersonService) Claim(ctx context.Context, actor Actor, id uuid.UUID) (*PersonResponse, error) {
	person, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPersonNotFound, "get person")
	}
	if person.Claimed {
		return nil, apperrors.ErrPersonClaimed
	}
	if person.AssignedGroupID == nil {
		return nil, apperrors.ErrNotGroupMember
	}

	member, err := s.groupRepo.IsMember(*person.AssignedGroupID, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify group membership: %w", err)
	}
	if !member {
		return nil, apperrors.ErrNotGroupMember
	}
	if person.ClaimExpiresAt != nil && s.now().After(*person.ClaimExpiresAt) {
		return nil, apperrors.ErrClaimWindowExpired
	}

	won, err := s.repo.Claim(actor.TenantID, id, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim person: %w", err)
	}
	if !won {
		return nil, apperrors.ErrPersonClaimed
	}

	logger.WithContext(ctx).WithField("person_id", id.String()).Info("person claimed")
	return s.load(actor.TenantID, id)
}

func (s *PersonService) resolveStage(tenantID uuid.UUID, stageID *uuid.UUID) (*uuid.UUID, error) {
	if stageID != nil {
		if _, err := s.stageRepo.GetByID(tenantID, *stageID); err != nil {
			return nil, notFound(err, apperrors.ErrStageNotFound, "verify stage")
		}
		return stageID, nil
	}

	stage, err := s.stageRepo.GetDefault(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default stage: %w", err)
	}
	return &stage.ID, nil
}

func (s *PersonService) verifyUser(tenantID uuid.UUID, userID *uuid.UUID) error {
	if userID == nil {
		return nil
	}
	if _, err := s.userRepo.GetByID(tenantID, *userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotInTenant
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

func (s *PersonService) verifyPond(tenantID uuid.UUID, pondID *uuid.UUID) error {
	if pondID == nil {
		return nil
	}
	if _, err := s.pondRepo.GetByID(tenantID, *pondID); err != nil {
		return notFound(err, apperrors.ErrPondNotFound, "verify pond")
	}
	return nil
}

// peopleLimiter tracks the plan's people quota across several inserts
type peopleLimiter struct {
	limit int
	count int64
}

func (s *PersonService) newPeopleLimiter(tenantID uuid.UUID) (*peopleLimiter, error) {
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTenantNotFound, "get tenant")
	}
	count, err := s.repo.CountByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count people: %w", err)
	}
	return &peopleLimiter{limit: tenant.PlanConfig().MaxPeople, count: count}, nil
}

func (l *peopleLimiter) reserve() error {
	if l.limit > 0 && l.count >= int64(l.limit) {
		return apperrors.NewPlanLimitError("people", l.limit)
	}
	l.count++
	return nil
}

func (l *peopleLimiter) release() {
	l.count--
}
