package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// ListGroups returns a page of groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Success 200 {object} Response{data=service.GroupListResponse}
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	groups, err := h.service.List(actor, queryInt(c, "page"), queryInt(c, "per_page"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", groups)
}

// CreateGroup creates a group
// @Summary Create group
// @Description Members are distributed leads in user_ids order
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.GroupRequest true "Group data"
// @Success 201 {object} Response{data=service.GroupResponse}
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.GroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Group created", group)
}

// GetGroup retrieves a group by ID
// @Summary Get group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} Response{data=service.GroupResponse}
// @Failure 404 {object} Response "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "group")
	if !ok {
		return
	}

	group, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", group)
}

// UpdateGroup replaces a group and its members
// @Summary Update group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param group body service.GroupRequest true "Group data"
// @Success 200 {object} Response{data=service.GroupResponse}
// @Failure 404 {object} Response "Group not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "group")
	if !ok {
		return
	}

	var req service.GroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Group updated", group)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "group")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Group deleted", nil)
}
