package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for a person's tags
type TagHandler struct {
	service service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(service service.TagServiceInterface) *TagHandler {
	return &TagHandler{service: service}
}

// ListTags returns the tags of a person
// @Summary List tags
// @Tags tags
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=[]models.Tag}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id}/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	items, err := h.service.List(actor, personID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", items)
}

// CreateTag adds a tag to a person
// @Summary Create tag
// @Description Tag names are unique per person
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param tag body service.TagRequest true "Tag data"
// @Success 201 {object} Response{data=models.Tag}
// @Failure 404 {object} Response "Person not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	var req service.TagRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(actor, personID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Tag created", item)
}

// GetTag returns one tag of a person
// @Summary Get tag
// @Tags tags
// @Produce json
// @Param id path string true "Person ID"
// @Param tagId path string true "Tag ID"
// @Success 200 {object} Response{data=models.Tag}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/tags/{tagId} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "tagId", "tag")
	if !ok {
		return
	}

	item, err := h.service.Get(actor, personID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", item)
}

// UpdateTag updates a tag of a person
// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param tagId path string true "Tag ID"
// @Param tag body service.TagRequest true "Tag data"
// @Success 200 {object} Response{data=models.Tag}
// @Failure 404 {object} Response "Not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/tags/{tagId} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "tagId", "tag")
	if !ok {
		return
	}

	var req service.TagRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(actor, personID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tag updated", item)
}

// DeleteTag removes a tag from a person
// @Summary Delete tag
// @Tags tags
// @Produce json
// @Param id path string true "Person ID"
// @Param tagId path string true "Tag ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/tags/{tagId} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "tagId", "tag")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, personID, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tag deleted", nil)
}
