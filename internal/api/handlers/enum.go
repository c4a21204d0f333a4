package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EnumHandler serves the option lists used by forms
type EnumHandler struct {
	service service.EnumServiceInterface
}

// NewEnumHandler creates a new enum handler
func NewEnumHandler(service service.EnumServiceInterface) *EnumHandler {
	return &EnumHandler{service: service}
}

// ListEnums returns every option list keyed by name
// @Summary List enums
// @Tags enums
// @Produce json
// @Success 200 {object} Response{data=map[string][]models.EnumOption}
// @Security BearerAuth
// @Router /enums [get]
func (h *EnumHandler) ListEnums(c *gin.Context) {
	respond(c, http.StatusOK, "OK", h.service.All())
}

// GetEnum returns one option list
// @Summary Get enum
// @Tags enums
// @Produce json
// @Param name path string true "Enum name"
// @Success 200 {object} Response{data=[]models.EnumOption}
// @Failure 404 {object} Response "Unknown enum"
// @Security BearerAuth
// @Router /enums/{name} [get]
func (h *EnumHandler) GetEnum(c *gin.Context) {
	options, err := h.service.Get(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", options)
}
