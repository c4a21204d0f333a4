package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StageHandler handles HTTP requests for pipeline stages
type StageHandler struct {
	service service.StageServiceInterface
}

// NewStageHandler creates a new stage handler
func NewStageHandler(service service.StageServiceInterface) *StageHandler {
	return &StageHandler{service: service}
}

// ListStages returns the tenant's stages ordered by position
// @Summary List stages
// @Tags stages
// @Produce json
// @Success 200 {object} Response{data=[]service.StageResponse}
// @Security BearerAuth
// @Router /people/stages [get]
func (h *StageHandler) ListStages(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stages, err := h.service.List(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", stages)
}

// CreateStage creates a stage
// @Summary Create stage
// @Tags stages
// @Accept json
// @Produce json
// @Param stage body service.CreateStageRequest true "Stage data"
// @Success 201 {object} Response{data=service.StageResponse}
// @Failure 409 {object} Response "Name taken"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/stages [post]
func (h *StageHandler) CreateStage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateStageRequest
	if !bindJSON(c, &req) {
		return
	}

	stage, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Stage created", stage)
}

// GetStage returns a stage
// @Summary Get stage
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {object} Response{data=service.StageResponse}
// @Failure 404 {object} Response "Stage not found"
// @Security BearerAuth
// @Router /people/stages/{id} [get]
func (h *StageHandler) GetStage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "stage")
	if !ok {
		return
	}

	stage, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", stage)
}

// UpdateStage updates a stage
// @Summary Update stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param stage body service.UpdateStageRequest true "Fields to change"
// @Success 200 {object} Response{data=service.StageResponse}
// @Failure 404 {object} Response "Stage not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/stages/{id} [put]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "stage")
	if !ok {
		return
	}

	var req service.UpdateStageRequest
	if !bindJSON(c, &req) {
		return
	}

	stage, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Stage updated", stage)
}

// DeleteStage deletes a stage and moves its people to the default stage
// @Summary Delete stage
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Stage not found"
// @Failure 422 {object} Response "Default stage"
// @Security BearerAuth
// @Router /people/stages/{id} [delete]
func (h *StageHandler) DeleteStage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "stage")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Stage deleted", nil)
}
