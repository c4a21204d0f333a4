package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CollaboratorHandler handles HTTP requests for the users a person is shared with
type CollaboratorHandler struct {
	service service.CollaboratorServiceInterface
}

// NewCollaboratorHandler creates a new collaborator handler
func NewCollaboratorHandler(service service.CollaboratorServiceInterface) *CollaboratorHandler {
	return &CollaboratorHandler{service: service}
}

// ListCollaborators returns the collaborators of a person
// @Summary List collaborators
// @Tags collaborators
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=[]models.Collaborator}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id}/collaborators [get]
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	collaborators, err := h.service.List(actor, personID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", collaborators)
}

// CreateCollaborator shares a person with a user of the same account
// @Summary Add collaborator
// @Tags collaborators
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param collaborator body service.CollaboratorRequest true "Collaborator data"
// @Success 201 {object} Response{data=models.Collaborator}
// @Failure 409 {object} Response "Already a collaborator"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/collaborators [post]
func (h *CollaboratorHandler) CreateCollaborator(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	var req service.CollaboratorRequest
	if !bindJSON(c, &req) {
		return
	}

	collaborator, err := h.service.Create(actor, personID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Collaborator added", collaborator)
}

// DeleteCollaborator removes a collaborator from a person
// @Summary Remove collaborator
// @Tags collaborators
// @Produce json
// @Param id path string true "Person ID"
// @Param collaboratorId path string true "Collaborator ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/collaborators/{collaboratorId} [delete]
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "collaboratorId", "collaborator")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, personID, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Collaborator removed", nil)
}
