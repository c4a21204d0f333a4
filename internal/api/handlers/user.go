package handlers

import (
	"bytes"
	"net/http"

	"dealspace-backend/internal/database/models"
	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the account's users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers returns a page of users
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Name or email substring"
// @Param role query string false "owner, admin, agent or lender"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Success 200 {object} Response{data=service.UserListResponse}
// @Failure 403 {object} Response "Forbidden"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	users, err := h.service.List(actor, &service.UserListQuery{
		Search:  c.Query("search"),
		Role:    models.UserRole(c.Query("role")),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", users)
}

// CreateUser adds a user to the account
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} Response{data=service.UserResponse}
// @Failure 403 {object} Response "Plan limit reached"
// @Failure 409 {object} Response "Email taken"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User created", user)
}

// GetUser retrieves a user by ID
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 404 {object} Response "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", user)
}

// UpdateUser updates a user
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 403 {object} Response "Owner role cannot change"
// @Failure 404 {object} Response "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User updated", user)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description Users cannot delete themselves or the account owner
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response "Forbidden"
// @Failure 404 {object} Response "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User deleted", nil)
}

// BulkDeleteUsers deletes the listed users
// @Summary Bulk delete users
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.BulkIDsRequest true "User IDs"
// @Success 200 {object} Response{data=map[string]int64}
// @Failure 403 {object} Response "Includes self or owner"
// @Security BearerAuth
// @Router /users/bulk-delete [delete]
func (h *UserHandler) BulkDeleteUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.BulkIDsRequest
	if !bindJSON(c, &req) {
		return
	}

	deleted, err := h.service.BulkDelete(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Users deleted", gin.H{"deleted": deleted})
}

// BulkExportUsers streams the listed users as a workbook
// @Summary Export users
// @Tags users
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body service.BulkIDsRequest false "User IDs"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /users/bulk-export [post]
func (h *UserHandler) BulkExportUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.BulkIDsRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	sendWorkbook(c, "users.xlsx", func(buf *bytes.Buffer) error {
		return h.service.Export(actor, &req, buf)
	})
}
