package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadFlowHandler handles HTTP requests for lead flow rules
type LeadFlowHandler struct {
	service service.LeadFlowServiceInterface
}

// NewLeadFlowHandler creates a new lead flow handler
func NewLeadFlowHandler(service service.LeadFlowServiceInterface) *LeadFlowHandler {
	return &LeadFlowHandler{service: service}
}

// ListRules returns the tenant's rules in evaluation order
// @Summary List lead flow rules
// @Tags lead-flow-rules
// @Produce json
// @Success 200 {object} Response{data=[]models.LeadFlowRule}
// @Failure 403 {object} Response "Forbidden"
// @Security BearerAuth
// @Router /lead-flow-rules [get]
func (h *LeadFlowHandler) ListRules(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	rules, err := h.service.List(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", rules)
}

// CreateRule creates a lead flow rule
// @Summary Create lead flow rule
// @Tags lead-flow-rules
// @Accept json
// @Produce json
// @Param rule body service.LeadFlowRuleRequest true "Rule data"
// @Success 201 {object} Response{data=models.LeadFlowRule}
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /lead-flow-rules [post]
func (h *LeadFlowHandler) CreateRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.LeadFlowRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Lead flow rule created", rule)
}

// GetRule returns a lead flow rule
// @Summary Get lead flow rule
// @Tags lead-flow-rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} Response{data=models.LeadFlowRule}
// @Failure 404 {object} Response "Rule not found"
// @Security BearerAuth
// @Router /lead-flow-rules/{id} [get]
func (h *LeadFlowHandler) GetRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "rule")
	if !ok {
		return
	}

	rule, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", rule)
}

// UpdateRule replaces a lead flow rule
// @Summary Update lead flow rule
// @Tags lead-flow-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param rule body service.LeadFlowRuleRequest true "Rule data"
// @Success 200 {object} Response{data=models.LeadFlowRule}
// @Failure 404 {object} Response "Rule not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /lead-flow-rules/{id} [put]
func (h *LeadFlowHandler) UpdateRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "rule")
	if !ok {
		return
	}

	var req service.LeadFlowRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Lead flow rule updated", rule)
}

// DeleteRule deletes a lead flow rule
// @Summary Delete lead flow rule
// @Tags lead-flow-rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Rule not found"
// @Security BearerAuth
// @Router /lead-flow-rules/{id} [delete]
func (h *LeadFlowHandler) DeleteRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "rule")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Lead flow rule deleted", nil)
}
