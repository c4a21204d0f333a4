package handlers

import (
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailHandler handles HTTP requests for a person's emails
type EmailHandler struct {
	service service.EmailServiceInterface
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(service service.EmailServiceInterface) *EmailHandler {
	return &EmailHandler{service: service}
}

// ListEmails returns the emails of a person
// @Summary List emails
// @Tags emails
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=[]models.Email}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id}/emails [get]
func (h *EmailHandler) ListEmails(c *gin.Context) {
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

// CreateEmail adds an email to a person
// @Summary Create email
// @Description The first email of a person becomes primary; is_primary clears the other primaries
// @Tags emails
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param email body service.EmailRequest true "Email data"
// @Success 201 {object} Response{data=models.Email}
// @Failure 404 {object} Response "Person not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/emails [post]
func (h *EmailHandler) CreateEmail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	var req service.EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(actor, personID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Email created", item)
}

// GetEmail returns one email of a person
// @Summary Get email
// @Tags emails
// @Produce json
// @Param id path string true "Person ID"
// @Param emailId path string true "Email ID"
// @Success 200 {object} Response{data=models.Email}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/emails/{emailId} [get]
func (h *EmailHandler) GetEmail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "emailId", "email")
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

// UpdateEmail updates an email of a person
// @Summary Update email
// @Tags emails
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param emailId path string true "Email ID"
// @Param email body service.EmailRequest true "Email data"
// @Success 200 {object} Response{data=models.Email}
// @Failure 404 {object} Response "Not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/emails/{emailId} [put]
func (h *EmailHandler) UpdateEmail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "emailId", "email")
	if !ok {
		return
	}

	var req service.EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(actor, personID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Email updated", item)
}

// DeleteEmail removes an email from a person
// @Summary Delete email
// @Tags emails
// @Produce json
// @Param id path string true "Person ID"
// @Param emailId path string true "Email ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/emails/{emailId} [delete]
func (h *EmailHandler) DeleteEmail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "emailId", "email")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, personID, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Email deleted", nil)
}

// SetPrimaryEmail makes an email the person's primary one
// @Summary Set primary email
// @Tags emails
// @Produce json
// @Param id path string true "Person ID"
// @Param emailId path string true "Email ID"
// @Success 200 {object} Response{data=models.Email}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/emails/{emailId}/primary [put]
func (h *EmailHandler) SetPrimaryEmail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "emailId", "email")
	if !ok {
		return
	}

	item, err := h.service.SetPrimary(actor, personID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Primary email updated", item)
}

// PhoneHandler handles HTTP requests for a person's phones
type PhoneHandler struct {
	service service.PhoneServiceInterface
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(service service.PhoneServiceInterface) *PhoneHandler {
	return &PhoneHandler{service: service}
}

// ListPhones returns the phones of a person
// @Summary List phones
// @Tags phones
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=[]models.Phone}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id}/phones [get]
func (h *PhoneHandler) ListPhones(c *gin.Context) {
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

// CreatePhone adds a phone to a person
// @Summary Create phone
// @Description The first phone of a person becomes primary; is_primary clears the other primaries
// @Tags phones
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param phone body service.PhoneRequest true "Phone data"
// @Success 201 {object} Response{data=models.Phone}
// @Failure 404 {object} Response "Person not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/phones [post]
func (h *PhoneHandler) CreatePhone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	var req service.PhoneRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(actor, personID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Phone created", item)
}

// GetPhone returns one phone of a person
// @Summary Get phone
// @Tags phones
// @Produce json
// @Param id path string true "Person ID"
// @Param phoneId path string true "Phone ID"
// @Success 200 {object} Response{data=models.Phone}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/phones/{phoneId} [get]
func (h *PhoneHandler) GetPhone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "phoneId", "phone")
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

// UpdatePhone updates a phone of a person
// @Summary Update phone
// @Tags phones
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param phoneId path string true "Phone ID"
// @Param phone body service.PhoneRequest true "Phone data"
// @Success 200 {object} Response{data=models.Phone}
// @Failure 404 {object} Response "Not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/phones/{phoneId} [put]
func (h *PhoneHandler) UpdatePhone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "phoneId", "phone")
	if !ok {
		return
	}

	var req service.PhoneRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(actor, personID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Phone updated", item)
}

// DeletePhone removes a phone from a person
// @Summary Delete phone
// @Tags phones
// @Produce json
// @Param id path string true "Person ID"
// @Param phoneId path string true "Phone ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/phones/{phoneId} [delete]
func (h *PhoneHandler) DeletePhone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "phoneId", "phone")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, personID, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Phone deleted", nil)
}

// SetPrimaryPhone makes a phone the person's primary one
// @Summary Set primary phone
// @Tags phones
// @Produce json
// @Param id path string true "Person ID"
// @Param phoneId path string true "Phone ID"
// @Success 200 {object} Response{data=models.Phone}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/phones/{phoneId}/primary [put]
func (h *PhoneHandler) SetPrimaryPhone(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "phoneId", "phone")
	if !ok {
		return
	}

	item, err := h.service.SetPrimary(actor, personID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Primary phone updated", item)
}

// AddressHandler handles HTTP requests for a person's addresses
type AddressHandler struct {
	service service.AddressServiceInterface
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(service service.AddressServiceInterface) *AddressHandler {
	return &AddressHandler{service: service}
}

// ListAddresses returns the addresses of a person
// @Summary List addresses
// @Tags addresses
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=[]models.Address}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id}/addresses [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
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

// CreateAddress adds an address to a person
// @Summary Create address
// @Description The first address of a person becomes primary; is_primary clears the other primaries
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param address body service.AddressRequest true "Address data"
// @Success 201 {object} Response{data=models.Address}
// @Failure 404 {object} Response "Person not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	var req service.AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(actor, personID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Address created", item)
}

// GetAddress returns one address of a person
// @Summary Get address
// @Tags addresses
// @Produce json
// @Param id path string true "Person ID"
// @Param addressId path string true "Address ID"
// @Success 200 {object} Response{data=models.Address}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/addresses/{addressId} [get]
func (h *AddressHandler) GetAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "addressId", "address")
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

// UpdateAddress updates an address of a person
// @Summary Update address
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param addressId path string true "Address ID"
// @Param address body service.AddressRequest true "Address data"
// @Success 200 {object} Response{data=models.Address}
// @Failure 404 {object} Response "Not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id}/addresses/{addressId} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "addressId", "address")
	if !ok {
		return
	}

	var req service.AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(actor, personID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Address updated", item)
}

// DeleteAddress removes an address from a person
// @Summary Delete address
// @Tags addresses
// @Produce json
// @Param id path string true "Person ID"
// @Param addressId path string true "Address ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/addresses/{addressId} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "addressId", "address")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, personID, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Address deleted", nil)
}

// SetPrimaryAddress makes an address the person's primary one
// @Summary Set primary address
// @Tags addresses
// @Produce json
// @Param id path string true "Person ID"
// @Param addressId path string true "Address ID"
// @Success 200 {object} Response{data=models.Address}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/addresses/{addressId}/primary [put]
func (h *AddressHandler) SetPrimaryAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "addressId", "address")
	if !ok {
		return
	}

	item, err := h.service.SetPrimary(actor, personID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Primary address updated", item)
}
