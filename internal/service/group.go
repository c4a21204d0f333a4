package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GroupService handles business logic for distribution groups
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
		now:       time.Now,
	}
}

// GroupRequest represents the request to create or replace a group
type GroupRequest struct {
	Name               string                  `json:"name" validate:"required,min=1,max=150"`
	Type               models.GroupType        `json:"type" validate:"omitempty,oneof=agent lender"`
	Distribution       models.DistributionType `json:"distribution" validate:"omitempty,oneof=round_robin first_to_claim"`
	ClaimWindowMinutes int                     `json:"claim_window_minutes" validate:"min=0,max=10080"`
	IsPrimary          bool                    `json:"is_primary"`
	UserIDs            []uuid.UUID             `json:"user_ids"`
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Name               string                  `json:"name"`
	Type               models.GroupType        `json:"type"`
	Distribution       models.DistributionType `json:"distribution"`
	ClaimWindowMinutes int                     `json:"claim_window_minutes"`
	IsPrimary          bool                    `json:"is_primary"`
	UserIDs            []uuid.UUID             `json:"user_ids"`
	Users              []UserSummary           `json:"users"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Meta   PageMeta        `json:"meta"`
}

func toGroupResponse(group *models.Group) *GroupResponse {
	users := make([]UserSummary, 0, len(group.Members))
	for i := range group.Members {
		if group.Members[i].User != nil {
			users = append(users, *toUserSummary(group.Members[i].User))
		}
	}
	return &GroupResponse{
		ID:                 group.ID,
		Name:               group.Name,
		Type:               group.Type,
		Distribution:       group.Distribution,
		ClaimWindowMinutes: group.ClaimWindowMinutes,
		IsPrimary:          group.IsPrimary,
		UserIDs:            group.MemberIDs(),
		Users:              users,
		CreatedAt:          group.CreatedAt,
		UpdatedAt:          group.UpdatedAt,
	}
}

// List retrieves the tenant's groups with pagination
func (s *GroupService) List(actor Actor, page, perPage int) (*GroupListResponse, error) {
	page, perPage, offset := normalizePage(page, perPage)

	groups, total, err := s.repo.List(actor.TenantID, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i])
	}
	return &GroupListResponse{Groups: responses, Meta: newPageMeta(total, page, perPage)}, nil
}

// Create creates a new group with its members in the given order
func (s *GroupService) Create(actor Actor, req *GroupRequest) (*GroupResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	userIDs, err := resolveTenantUsers(s.userRepo, actor.TenantID, req.UserIDs)
	if err != nil {
		return nil, err
	}

	group := &models.Group{LastAssignedIndex: -1}
	group.TenantID = actor.TenantID
	applyGroupRequest(group, req)
	for i, userID := range userIDs {
		group.Members = append(group.Members, models.GroupMember{UserID: userID, Position: i})
	}

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.Get(actor, group.ID)
}

// Get retrieves a group by ID
func (s *GroupService) Get(actor Actor, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGroupNotFound, "get group")
	}
	return toGroupResponse(group), nil
}

// Update replaces a group's settings and member rotation
func (s *GroupService) Update(actor Actor, id uuid.UUID, req *GroupRequest) (*GroupResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.repo.GetByID(actor.TenantID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGroupNotFound, "get group")
	}

	userIDs, err := resolveTenantUsers(s.userRepo, actor.TenantID, req.UserIDs)
	if err != nil {
		return nil, err
	}

	applyGroupRequest(group, req)
	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	if !sameIDs(group.MemberIDs(), userIDs) {
		if err := s.repo.ReplaceMembers(group.ID, userIDs); err != nil {
			return nil, fmt.Errorf("failed to update group members: %w", err)
		}
	}

	return s.Get(actor, group.ID)
}

// Delete deletes a group
func (s *GroupService) Delete(actor Actor, id uuid.UUID) error {
	if err := s.repo.Delete(actor.TenantID, id); err != nil {
		return notFound(err, apperrors.ErrGroupNotFound, "delete group")
	}
	return nil
}

// Distribute assigns the person to the group following its distribution strategy.
// Only the person struct is changed; the caller saves it.
func (s *GroupService) Distribute(ctx context.Context, person *models.Person, groupID uuid.UUID) error {
	group, err := s.repo.GetByID(person.TenantID, groupID)
	if err != nil {
		return notFound(err, apperrors.ErrGroupNotFound, "get group")
	}

	switch group.Distribution {
	case models.DistributionFirstToClaim:
		if len(group.Members) == 0 {
			return apperrors.ErrGroupHasNoMembers
		}
		person.AssignedGroupID = &group.ID
		person.AssignedUserID = nil
		person.AssignedUser = nil
		person.Claimed = false
		person.ClaimExpiresAt = nil
		if group.ClaimWindowMinutes > 0 {
			expires := s.now().Add(time.Duration(group.ClaimWindowMinutes) * time.Minute)
			person.ClaimExpiresAt = &expires
		}
	default:
		userID, err := s.repo.NextRoundRobinMember(person.TenantID, group.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrGroupHasNoMembers) {
				return err
			}
			return fmt.Errorf("failed to pick group member: %w", err)
		}
		person.AssignedGroupID = &group.ID
		person.AssignedUserID = &userID
		person.AssignedUser = nil
		person.Claimed = true
		person.ClaimExpiresAt = nil
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"person_id":    person.ID.String(),
		"group_id":     group.ID.String(),
		"distribution": string(group.Distribution),
	}).Debug("person distributed to group")
	return nil
}

func applyGroupRequest(group *models.Group, req *GroupRequest) {
	group.Name = req.Name
	group.Type = req.Type
	if group.Type == "" {
		group.Type = models.GroupTypeAgent
	}
	group.Distribution = req.Distribution
	if group.Distribution == "" {
		group.Distribution = models.DistributionRoundRobin
	}
	group.ClaimWindowMinutes = req.ClaimWindowMinutes
	group.IsPrimary = req.IsPrimary
}

// resolveTenantUsers dedupes ids and checks that each belongs to the tenant, keeping order
func resolveTenantUsers(userRepo repository.UserRepositoryInterface, tenantID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}
	users, err := userRepo.ListByIDs(tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify users: %w", err)
	}
	if len(users) != len(ids) {
		return nil, apperrors.ErrUserNotInTenant
	}
	return ids, nil
}

func sameIDs(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
