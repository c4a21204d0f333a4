package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	ContextUserID   = "user_id"
	ContextTenantID = "tenant_id"
	ContextEmail    = "email"
	ContextRole     = "role"
	ContextClaims   = "auth_claims"
	ContextToken    = "auth_token"
)

// SubjectLoader returns the current identity of a token's user.
// It returns apperrors.ErrUserNotFound once the user is gone.
type SubjectLoader interface {
	LoadSubject(ctx context.Context, tenantID, userID uuid.UUID) (*TokenSubject, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
	users  SubjectLoader
}

// NewAuthMiddleware creates a new authentication middleware. When users is set,
// every request is checked against the live user so deletions and role changes
// take effect before the token expires.
func NewAuthMiddleware(tokens *TokenService, users SubjectLoader) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"status": false, "message": message, "data": nil})
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, apperrors.ErrMissingToken.Error())
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.tokens.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				abort(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
				return
			}
			logger.WithContext(c).WithField("error", err.Error()).Error("token authentication failed")
			abort(c, http.StatusInternalServerError, "Failed to authenticate request")
			return
		}

		if m.users != nil {
			subject, err := m.users.LoadSubject(c.Request.Context(), claims.TenantID, claims.UserID)
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					abort(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
					return
				}
				logger.WithContext(c).WithField("error", err.Error()).Error("failed to load token user")
				abort(c, http.StatusInternalServerError, "Failed to authenticate request")
				return
			}
			claims.Email = subject.Email
			claims.Role = subject.Role
		}

		// Set user context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTenantID, claims.TenantID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}

// RequireRole allows the request only when the authenticated role is one of roles
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		abort(c, http.StatusForbidden, apperrors.ErrForbidden.Error())
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetTenantID is a helper function to extract tenant ID from context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	tenantID, exists := c.Get(ContextTenantID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := tenantID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetRole is a helper function to extract the user role from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}

	roleStr, ok := role.(string)
	return roleStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
