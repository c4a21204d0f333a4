package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles registration, login and profile management
type AuthService struct {
	tenantRepo repository.TenantRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	tokens     TokenIssuer
	social     SocialProfileFetcher
	validator  *validator.Validate
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	tenantRepo repository.TenantRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	tokens TokenIssuer,
	social SocialProfileFetcher,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		tokens:     tokens,
		social:     social,
		validator:  validator,
		now:        time.Now,
	}
}

// RegisterRequest represents the request to open a new account
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=150"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	CompanyName          string `json:"company_name" validate:"omitempty,max=150"`
	Phone                string `json:"phone" validate:"omitempty,e164ish"`
}

// LoginRequest represents an email and password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginRequest represents a login with a provider access token
type SocialLoginRequest struct {
	Provider    string `json:"provider" validate:"required,oneof=google facebook"`
	AccessToken string `json:"access_token" validate:"required"`
}

// UpdateProfileRequest represents changes to the current user's profile
type UpdateProfileRequest struct {
	Name                 *string `json:"name" validate:"omitempty,min=1,max=150"`
	Email                *string `json:"email" validate:"omitempty,email,max=255"`
	Phone                *string `json:"phone" validate:"omitempty,e164ish"`
	Avatar               *string `json:"avatar" validate:"omitempty,url,max=500"`
	CurrentPassword      string  `json:"current_password" validate:"required_with=Password"`
	Password             string  `json:"password" validate:"omitempty,min=8,max=72"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required_with=Password,omitempty,eqfield=Password"`
}

func (r *RegisterRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *LoginRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (r *UpdateProfileRequest) normalize() {
	trimPtr(r.Name)
	normalizeEmailPtr(r.Email)
	trimPtr(r.Phone)
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	TokenType string        `json:"token_type" example:"Bearer"`
}

// Register creates a tenant on the free plan with its owner and default stages
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.ensureEmailFree(email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	tenantName := strings.TrimSpace(req.CompanyName)
	if tenantName == "" {
		tenantName = req.Name + "'s team"
	}
	tenant := &models.Tenant{Name: tenantName, Plan: models.PlanFree}

	now := s.now()
	owner := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleOwner,
		Phone:        req.Phone,
		LastLoginAt:  &now,
	}

	if err := s.tenantRepo.CreateWithOwner(tenant, owner, defaultStages()); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to register account: %w", err)
	}
	owner.Tenant = tenant

	logger.WithContext(ctx).WithField("tenant_id", tenant.ID.String()).Info("account registered")
	return s.issue(owner)
}

func defaultStages() []models.Stage {
	stages := make([]models.Stage, len(models.DefaultStageNames))
	for i, name := range models.DefaultStageNames {
		stages[i] = models.Stage{Name: name, Position: i, IsDefault: i == 0}
	}
	return stages
}

// Login authenticates with email and password
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logger.WithContext(ctx).WithField("user_id", user.ID.String()).Warn("login rejected: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.touchLogin(user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// SocialLogin authenticates an existing user with a Google or Facebook access token
func (s *AuthService) SocialLogin(ctx context.Context, req *SocialLoginRequest) (*AuthResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.social.FetchProfile(ctx, req.Provider, req.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetBySocial(profile.Provider, profile.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user == nil {
		if profile.Email == "" {
			return nil, apperrors.ErrSocialAccountNotFound
		}
		user, err = s.userRepo.GetByEmail(profile.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSocialAccountNotFound
			}
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		user.SocialProvider = profile.Provider
		user.SocialID = profile.ID
		if user.Avatar == "" {
			user.Avatar = profile.AvatarURL
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"user_id":  user.ID.String(),
			"provider": profile.Provider,
		}).Info("social account linked")
	}

	if err := s.touchLogin(user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Logout revokes the presented token
func (s *AuthService) Logout(ctx context.Context, claims *auth.AuthClaims) error {
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Me returns the current user with plan information
func (s *AuthService) Me(actor Actor) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(actor.TenantID, actor.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// LoadSubject returns the live identity of a token's user
func (s *AuthService) LoadSubject(_ context.Context, tenantID, userID uuid.UUID) (*auth.TokenSubject, error) {
	user, err := s.userRepo.GetByID(tenantID, userID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "load token user")
	}
	return &auth.TokenSubject{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

// UpdateProfile changes the current user's profile and optionally the password
func (s *AuthService) UpdateProfile(actor Actor, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(actor.TenantID, actor.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if err := s.ensureEmailFree(email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Password != "" {
		if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
			return nil, apperrors.ErrCurrentPasswordMismatch
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *AuthService) ensureEmailFree(email string) error {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return apperrors.ErrUserExists
	}
	return nil
}

func (s *AuthService) touchLogin(user *models.User) error {
	now := s.now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

func (s *AuthService) issue(user *models.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateJWT(auth.TokenSubject{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{User: toUserResponse(user), Token: token, TokenType: "Bearer"}, nil
}
