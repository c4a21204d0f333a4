package handlers

import (
	"bytes"
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonHandler handles HTTP requests for people
type PersonHandler struct {
	service service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(service service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{service: service}
}

// ListPeople returns a filtered page of people
// @Summary List people
// @Description Agents and lenders only see people assigned to them, in their ponds or where they collaborate
// @Tags people
// @Produce json
// @Param search query string false "Name, email or phone substring"
// @Param stage_id query string false "Stage ID"
// @Param assigned_user_id query string false "Assigned user ID"
// @Param pond_id query string false "Pond ID"
// @Param source query string false "Lead source"
// @Param tag query string false "Tag name"
// @Param contacted query bool false "Contacted flag"
// @Param sort_by query string false "created_at, first_name, last_name or last_activity_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Success 200 {object} Response{data=service.PersonListResponse}
// @Failure 422 {object} Response "Invalid filters"
// @Security BearerAuth
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	query := service.PersonListQuery{
		Search:  c.Query("search"),
		Source:  c.Query("source"),
		Tag:     c.Query("tag"),
		SortBy:  c.Query("sort_by"),
		SortDir: c.Query("sort_dir"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	}
	if query.StageID, ok = queryUUID(c, "stage_id"); !ok {
		return
	}
	if query.AssignedUserID, ok = queryUUID(c, "assigned_user_id"); !ok {
		return
	}
	if query.PondID, ok = queryUUID(c, "pond_id"); !ok {
		return
	}
	if query.Contacted, ok = queryBool(c, "contacted"); !ok {
		return
	}

	people, err := h.service.List(actor, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", people)
}

// CreatePerson creates a person and runs lead flow on it
// @Summary Create person
// @Description Nested emails, phones, addresses and tags are created in one transaction. Lead flow failures never fail the request.
// @Tags people
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 201 {object} Response{data=service.PersonResponse}
// @Failure 403 {object} Response "Plan limit reached"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreatePersonRequest
	if !bindJSON(c, &req) {
		return
	}

	person, err := h.service.Create(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Person created", person)
}

// GetPerson returns one person
// @Summary Get person
// @Tags people
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=service.PersonResponse}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	person, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", person)
}

// UpdatePerson updates a person
// @Summary Update person
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param person body service.UpdatePersonRequest true "Fields to change"
// @Success 200 {object} Response{data=service.PersonResponse}
// @Failure 404 {object} Response "Person not found"
// @Failure 422 {object} Response "Validation failed"
// @Security BearerAuth
// @Router /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	var req service.UpdatePersonRequest
	if !bindJSON(c, &req) {
		return
	}

	person, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Person updated", person)
}

// DeletePerson soft-deletes a person
// @Summary Delete person
// @Tags people
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Person deleted", nil)
}

// ClaimPerson claims a first-to-claim lead for the current user
// @Summary Claim person
// @Description The first group member to claim within the claim window wins
// @Tags people
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=service.PersonResponse}
// @Failure 403 {object} Response "Not a group member or window expired"
// @Failure 409 {object} Response "Already claimed"
// @Security BearerAuth
// @Router /people/{id}/claim [post]
func (h *PersonHandler) ClaimPerson(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	person, err := h.service.Claim(c, actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Person claimed", person)
}

// BulkDeletePeople soft-deletes the listed people
// @Summary Bulk delete people
// @Tags people
// @Accept json
// @Produce json
// @Param request body service.BulkIDsRequest true "Person IDs"
// @Success 200 {object} Response{data=map[string]int64}
// @Failure 403 {object} Response "Forbidden"
// @Failure 422 {object} Response "No ids given"
// @Security BearerAuth
// @Router /people/bulk-delete [delete]
func (h *PersonHandler) BulkDeletePeople(c *gin.Context) {
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

	respond(c, http.StatusOK, "People deleted", gin.H{"deleted": deleted})
}

// BulkExportPeople streams the listed people as a workbook
// @Summary Export people
// @Description An empty id list exports every visible person
// @Tags people
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body service.BulkIDsRequest false "Person IDs"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /people/bulk-export [post]
func (h *PersonHandler) BulkExportPeople(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.BulkIDsRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	sendWorkbook(c, "people.xlsx", func(buf *bytes.Buffer) error {
		return h.service.Export(actor, &req, buf)
	})
}

// DownloadTemplate returns the import template workbook
// @Summary Download import template
// @Tags people
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security BearerAuth
// @Router /people/download-template [get]
func (h *PersonHandler) DownloadTemplate(c *gin.Context) {
	sendWorkbook(c, "people-import-template.xlsx", func(buf *bytes.Buffer) error {
		return h.service.Template(buf)
	})
}

// ImportPeople imports people from an uploaded .xlsx or .csv file
// @Summary Import people
// @Description Invalid rows are reported by row number and skipped
// @Tags people
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet"
// @Success 200 {object} Response{data=service.ImportResult}
// @Failure 422 {object} Response "Missing or unsupported file"
// @Security BearerAuth
// @Router /people/import [post]
func (h *PersonHandler) ImportPeople(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, Response{
			Message: "The file field is required.",
			Errors:  map[string][]string{"file": {"The file field is required."}},
		})
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	result, err := h.service.Import(c, actor, header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Import completed", result)
}
