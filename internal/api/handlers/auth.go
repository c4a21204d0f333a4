package handlers

import (
	"net/http"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and profile endpoints
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a tenant with its owner user
// @Summary Register an account
// @Description Create a new tenant on the free plan together with its owner user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration data"
// @Success 201 {object} Response{data=service.AuthResponse}
// @Failure 409 {object} Response "Email already registered"
// @Failure 422 {object} Response "Validation failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Register(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Registration successful", resp)
}

// Login authenticates with email and password
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} Response{data=service.AuthResponse}
// @Failure 401 {object} Response "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", resp)
}

// SocialLogin authenticates with a Google or Facebook access token
// @Summary Social login
// @Description Resolve a provider access token to a linked user. Social login never creates accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.SocialLoginRequest true "Provider token"
// @Success 200 {object} Response{data=service.AuthResponse}
// @Failure 401 {object} Response "No linked account"
// @Router /auth/social-login [post]
func (h *AuthHandler) SocialLogin(c *gin.Context) {
	var req service.SocialLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.SocialLogin(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", resp)
}

// Logout revokes the presented token
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} Response "Unauthenticated"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	if err := h.service.Logout(c, claims); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Logged out", nil)
}

// Me returns the authenticated user
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 401 {object} Response "Unauthenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := h.service.Me(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", user)
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /auth/update [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.UpdateProfile(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Profile updated", user)
}
