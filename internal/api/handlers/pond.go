package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PondHandler handles HTTP requests for ponds
type PondHandler struct {
	service service.PondServiceInterface
}

// NewPondHandler creates a new pond handler
func NewPondHandler(service service.PondServiceInterface) *PondHandler {
	return &PondHandler{service: service}
}

// ListPonds returns a page of ponds
// @Summary List ponds
// @Tags ponds
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Success 200 {object} Response{data=service.PondListResponse}
// @Security BearerAuth
// @Router /ponds [get]
func (h *PondHandler) ListPonds(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	ponds, err := h.service.List(actor, queryInt(c, "page"), queryInt(c, "per_page"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", ponds)
}

// CreatePond creates a pond
// @Summary Create pond
// @Description The owner defaults to the current user; members can see pond people
// @Tags ponds
// @Accept json
// @Produce json
// @Param pond body service.PondRequest true "Pond data"
// @Success 201 {object} Response{data=service.PondResponse}
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /ponds [post]
func (h *PondHandler) CreatePond(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.PondRequest
	if !bindJSON(c, &req) {
		return
	}

	pond, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Pond created", pond)
}

// GetPond retrieves a pond by ID
// @Summary Get pond
// @Tags ponds
// @Produce json
// @Param id path string true "Pond ID"
// @Success 200 {object} Response{data=service.PondResponse}
// @Failure 404 {object} Response "Pond not found"
// @Security BearerAuth
// @Router /ponds/{id} [get]
func (h *PondHandler) GetPond(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pond")
	if !ok {
		return
	}

	pond, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", pond)
}

// UpdatePond replaces a pond and its members
// @Summary Update pond
// @Tags ponds
// @Accept json
// @Produce json
// @Param id path string true "Pond ID"
// @Param pond body service.PondRequest true "Pond data"
// @Success 200 {object} Response{data=service.PondResponse}
// @Failure 404 {object} Response "Pond not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /ponds/{id} [put]
func (h *PondHandler) UpdatePond(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pond")
	if !ok {
		return
	}

	var req service.PondRequest
	if !bindJSON(c, &req) {
		return
	}

	pond, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Pond updated", pond)
}

// DeletePond deletes a pond
// @Summary Delete pond
// @Tags ponds
// @Produce json
// @Param id path string true "Pond ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Pond not found"
// @Security BearerAuth
// @Router /ponds/{id} [delete]
func (h *PondHandler) DeletePond(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pond")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Pond deleted", nil)
}
