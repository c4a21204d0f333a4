package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FileHandler handles HTTP requests for files attached to a person
type FileHandler struct {
	service service.FileServiceInterface
}

// NewFileHandler creates a new file handler
func NewFileHandler(service service.FileServiceInterface) *FileHandler {
	return &FileHandler{service: service}
}

// openUpload returns the multipart "file" part, or nil when none was sent
func openUpload(c *gin.Context) (*service.FileUpload, func(), error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	return uploadFromHeader(header, c.PostForm("name"))
}

func uploadFromHeader(header *multipart.FileHeader, name string) (*service.FileUpload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &service.FileUpload{
		Name:        name,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, func() { file.Close() }, nil
}

// ListFiles returns the files of a person
// @Summary List files
// @Tags files
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} Response{data=[]service.FileResponse}
// @Failure 404 {object} Response "Person not found"
// @Security BearerAuth
// @Router /people/{id}/files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	files, err := h.service.List(c, actor, personID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", files)
}

// CreateFile uploads a file to a person
// @Summary Upload file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Person ID"
// @Param file formData file true "File content"
// @Param name formData string false "Display name"
// @Success 201 {object} Response{data=service.FileResponse}
// @Failure 422 {object} Response "Missing or oversized file"
// @Security BearerAuth
// @Router /people/{id}/files [post]
func (h *FileHandler) CreateFile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}

	upload, closeUpload, err := openUpload(c)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}
	defer closeUpload()

	file, err := h.service.Create(c, actor, personID, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "File uploaded", file)
}

// GetFile returns one file of a person
// @Summary Get file
// @Tags files
// @Produce json
// @Param id path string true "Person ID"
// @Param fileId path string true "File ID"
// @Success 200 {object} Response{data=service.FileResponse}
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/files/{fileId} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "fileId", "file")
	if !ok {
		return
	}

	file, err := h.service.Get(c, actor, personID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", file)
}

// UpdateFile renames a file and/or replaces its content
// @Summary Update file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Person ID"
// @Param fileId path string true "File ID"
// @Param file formData file false "New content"
// @Param name formData string false "New display name"
// @Success 200 {object} Response{data=service.FileResponse}
// @Failure 404 {object} Response "Not found"
// @Failure 422 {object} Response "Nothing to change"
// @Security BearerAuth
// @Router /people/{id}/files/{fileId} [put]
func (h *FileHandler) UpdateFile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "fileId", "file")
	if !ok {
		return
	}

	upload, closeUpload, err := openUpload(c)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}
	defer closeUpload()

	file, err := h.service.Update(c, actor, personID, id, c.PostForm("name"), upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "File updated", file)
}

// DeleteFile removes a file and its stored content
// @Summary Delete file
// @Tags files
// @Produce json
// @Param id path string true "Person ID"
// @Param fileId path string true "File ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Not found"
// @Security BearerAuth
// @Router /people/{id}/files/{fileId} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	personID, ok := pathUUID(c, "id", "person")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "fileId", "file")
	if !ok {
		return
	}

	if err := h.service.Delete(c, actor, personID, id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "File deleted", nil)
}
