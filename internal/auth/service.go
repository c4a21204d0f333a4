package auth

import (
	"context"
	"fmt"
	"time"

	apperrors "dealspace-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id" example:"7f1c2b8e-4c52-4f5e-9a55-5f5b0e7c1f11"`
	TenantID             uuid.UUID `json:"tenant_id" example:"0b3c9d44-1c1e-4a0a-9f87-2f3f7c1a2b33"`
	Email                string    `json:"email" example:"jane@acme.test"`
	Role                 string    `json:"role" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenSubject is the identity a token is issued for
type TokenSubject struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Email    string
	Role     string
}

// TokenService issues, validates and revokes access tokens
type TokenService struct {
	config    *AuthConfig
	blacklist Blacklist
	now       func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig, blacklist Blacklist) (*TokenService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if blacklist == nil {
		blacklist = NewMemoryBlacklist()
	}
	return &TokenService{config: config, blacklist: blacklist, now: time.Now}, nil
}

// GenerateJWT creates a signed token for the subject
func (s *TokenService) GenerateJWT(subject TokenSubject) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   subject.UserID,
		TenantID: subject.TenantID,
		Email:    subject.Email,
		Role:     subject.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   subject.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Authenticate validates the token and rejects revoked token ids
func (s *TokenService) Authenticate(ctx context.Context, tokenString string) (*AuthClaims, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	return claims, nil
}

// Revoke blacklists the token id until the token would have expired anyway
func (s *TokenService) Revoke(ctx context.Context, claims *AuthClaims) error {
	if claims == nil || claims.ID == "" {
		return apperrors.ErrInvalidToken
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}

	return s.blacklist.Revoke(ctx, claims.ID, ttl)
}

// TokenTTL returns the lifetime of issued tokens
func (s *TokenService) TokenTTL() time.Duration {
	return s.config.TokenTTL
}
