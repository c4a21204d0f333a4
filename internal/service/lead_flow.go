package service

import (
	"context"
	"fmt"
	"strings"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/metrics"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LeadDistributor hands a person to a group according to the group's strategy
type LeadDistributor interface {
	Distribute(ctx context.Context, person *models.Person, groupID uuid.UUID) error
}

// LeadFlowService manages routing rules and applies them to new people
type LeadFlowService struct {
	repo       repository.LeadFlowRuleRepositoryInterface
	personRepo repository.PersonRepositoryInterface
	tagRepo    repository.TagRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	pondRepo   repository.PondRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
	stageRepo  repository.StageRepositoryInterface
	groups     LeadDistributor
	validator  *validator.Validate
}

// NewLeadFlowService creates a new lead flow service
func NewLeadFlowService(
	repo repository.LeadFlowRuleRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	tagRepo repository.TagRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	pondRepo repository.PondRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	stageRepo repository.StageRepositoryInterface,
	groups LeadDistributor,
	validator *validator.Validate,
) *LeadFlowService {
	return &LeadFlowService{
		repo:       repo,
		personRepo: personRepo,
		tagRepo:    tagRepo,
		userRepo:   userRepo,
		pondRepo:   pondRepo,
		groupRepo:  groupRepo,
		stageRepo:  stageRepo,
		groups:     groups,
		validator:  validator,
	}
}

// LeadFlowRuleRequest represents the request to create or replace a lead flow rule
type LeadFlowRuleRequest struct {
	Name       string                 `json:"name" validate:"required,max=150"`
	Source     string                 `json:"source" validate:"max=100"`
	Priority   int                    `json:"priority" validate:"min=0"`
	IsActive   *bool                  `json:"is_active"`
	MatchType  models.MatchType       `json:"match_type" validate:"omitempty,oneof=all any"`
	Conditions []models.RuleCondition `json:"conditions" validate:"dive"`
	AssignType models.AssignType      `json:"assign_type" validate:"omitempty,oneof=user group pond"`
	AssignID   *uuid.UUID             `json:"assign_id" validate:"required_with=AssignType"`
	StageID    *uuid.UUID             `json:"stage_id"`
	Tags       []string               `json:"tags" validate:"dive,required,max=100"`
}

// List returns the tenant's rules in evaluation order
func (s *LeadFlowService) List(actor Actor) ([]models.LeadFlowRule, error) {
	rules, err := s.repo.List(actor.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead flow rules: %w", err)
	}
	return rules, nil
}

// Create creates a new rule
func (s *LeadFlowService) Create(actor Actor, req *LeadFlowRuleRequest) (*models.LeadFlowRule, error) {
	if err := s.checkRequest(actor.TenantID, req); err != nil {
		return nil, err
	}

	rule := &models.LeadFlowRule{}
	rule.TenantID = actor.TenantID
	applyRuleRequest(rule, req)

	if err := s.repo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create lead flow rule: %w", err)
	}
	return rule, nil
}

// Get retrieves a rule by ID
func (s *LeadFlowService) Get(actor Actor, id uuid.UUID) (*models.LeadFlowRule, error) {
	rule, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLeadFlowRuleNotFound, "get lead flow rule")
	}
	return rule, nil
}

// Update replaces a rule's definition
func (s *LeadFlowService) Update(actor Actor, id uuid.UUID, req *LeadFlowRuleRequest) (*models.LeadFlowRule, error) {
	rule, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLeadFlowRuleNotFound, "get lead flow rule")
	}

	if err := s.checkRequest(actor.TenantID, req); err != nil {
		return nil, err
	}
	applyRuleRequest(rule, req)

	if err := s.repo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update lead flow rule: %w", err)
	}
	return rule, nil
}

// Delete deletes a rule
func (s *LeadFlowService) Delete(actor Actor, id uuid.UUID) error {
	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return notFound(err, apperrors.ErrLeadFlowRuleNotFound, "delete lead flow rule")
	}
	return nil
}

func applyRuleRequest(rule *models.LeadFlowRule, req *LeadFlowRuleRequest) {
	rule.Name = req.Name
	rule.Source = strings.TrimSpace(req.Source)
	rule.Priority = req.Priority
	rule.IsActive = req.IsActive == nil || *req.IsActive
	rule.MatchType = req.MatchType
	if rule.MatchType == "" {
		rule.MatchType = models.MatchAll
	}
	rule.Conditions = models.RuleConditions(req.Conditions)
	rule.AssignType = req.AssignType
	rule.AssignID = req.AssignID
	if req.AssignType == "" {
		rule.AssignID = nil
	}
	rule.StageID = req.StageID
	rule.Tags = models.StringList(req.Tags)
}

// checkRequest checks the request shape and that every referenced row lives in the tenant
func (s *LeadFlowService) checkRequest(tenantID uuid.UUID, req *LeadFlowRuleRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	for i, cond := range req.Conditions {
		if !cond.Field.IsValid() {
			return apperrors.NewValidationError(fmt.Sprintf("conditions[%d].field", i), fmt.Sprintf("unknown field %q", cond.Field))
		}
		if !cond.Operator.IsValid() {
			return apperrors.NewValidationError(fmt.Sprintf("conditions[%d].operator", i), fmt.Sprintf("unknown operator %q", cond.Operator))
		}
	}

	if req.StageID != nil {
		if _, err := s.stageRepo.GetByID(tenantID, *req.StageID); err != nil {
			return notFound(err, apperrors.ErrStageNotFound, "verify stage")
		}
	}

	if req.AssignID == nil {
		return nil
	}
	switch req.AssignType {
	case models.AssignToUser:
		if _, err := s.userRepo.GetByID(tenantID, *req.AssignID); err != nil {
			return notFound(err, apperrors.ErrUserNotFound, "verify user")
		}
	case models.AssignToGroup:
		if _, err := s.groupRepo.GetByID(tenantID, *req.AssignID); err != nil {
			return notFound(err, apperrors.ErrGroupNotFound, "verify group")
		}
	case models.AssignToPond:
		if _, err := s.pondRepo.GetByID(tenantID, *req.AssignID); err != nil {
			return notFound(err, apperrors.ErrPondNotFound, "verify pond")
		}
	}
	return nil
}

// ProcessLead runs the tenant's active rules against the person and applies the first match.
// It returns nil without error when no rule matches.
func (s *LeadFlowService) ProcessLead(ctx context.Context, person *models.Person) (*models.LeadFlowRule, error) {
	rules, err := s.repo.ListActive(person.TenantID)
	if err != nil {
		metrics.LeadFlowOutcomes.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("failed to load lead flow rules: %w", err)
	}

	for i := range rules {
		rule := &rules[i]
		if !ruleMatches(rule, person) {
			continue
		}

		if err := s.apply(ctx, rule, person); err != nil {
			metrics.LeadFlowOutcomes.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("failed to apply lead flow rule %s: %w", rule.ID, err)
		}

		metrics.LeadFlowOutcomes.WithLabelValues(metrics.OutcomeMatched).Inc()
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"person_id": person.ID.String(),
			"rule_id":   rule.ID.String(),
			"rule":      rule.Name,
		}).Info("lead flow rule applied")
		return rule, nil
	}

	metrics.LeadFlowOutcomes.WithLabelValues(metrics.OutcomeUnmatched).Inc()
	return nil, nil
}

func (s *LeadFlowService) apply(ctx context.Context, rule *models.LeadFlowRule, person *models.Person) error {
	if rule.StageID != nil {
		person.StageID = rule.StageID
		person.Stage = nil
	}

	if rule.AssignID != nil {
		switch rule.AssignType {
		case models.AssignToUser:
			person.AssignedUserID = rule.AssignID
			person.AssignedUser = nil
			person.Claimed = true
			person.ClaimExpiresAt = nil
		case models.AssignToPond:
			person.AssignedPondID = rule.AssignID
		case models.AssignToGroup:
			if err := s.groups.Distribute(ctx, person, *rule.AssignID); err != nil {
				return err
			}
		}
	}

	if err := s.personRepo.Update(person); err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}

	if len(rule.Tags) > 0 {
		if err := s.tagRepo.AddNames(person.ID, rule.Tags); err != nil {
			return fmt.Errorf("failed to tag person: %w", err)
		}
		for _, name := range rule.Tags {
			if !hasTag(person.Tags, name) {
				person.Tags = append(person.Tags, models.Tag{PersonID: person.ID, Name: name})
			}
		}
	}
	return nil
}

func hasTag(tags []models.Tag, name string) bool {
	for _, t := range tags {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}
