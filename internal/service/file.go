package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/repository"
	"dealspace-backend/internal/storage"

	"github.com/google/uuid"
)

const sniffLen = 512

// FileUpload is an uploaded file stream with its client supplied metadata
type FileUpload struct {
	Name        string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileResponse represents a stored file with a download URL
type FileResponse struct {
	ID         uuid.UUID       `json:"id"`
	PersonID   uuid.UUID       `json:"person_id"`
	Name       string          `json:"name"`
	MimeType   string          `json:"mime_type"`
	Size       int64           `json:"size"`
	Type       models.FileType `json:"type"`
	URL        string          `json:"url"`
	UploadedBy *uuid.UUID      `json:"uploaded_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FileService handles person file uploads
type FileService struct {
	repo     repository.FileRepositoryInterface
	guard    personGuard
	store    storage.Storage
	maxBytes int64
}

// NewFileService creates a new file service
func NewFileService(repo repository.FileRepositoryInterface, people repository.PersonRepositoryInterface, store storage.Storage, maxBytes int64) *FileService {
	return &FileService{repo: repo, guard: personGuard{people: people}, store: store, maxBytes: maxBytes}
}

func (s *FileService) toResponse(ctx context.Context, file *models.File) *FileResponse {
	url, err := s.store.URL(ctx, file.Path)
	if err != nil {
		logger.WithContext(ctx).WithField("file_id", file.ID.String()).WithField("error", err.Error()).Warn("could not build file url")
	}
	return &FileResponse{
		ID:         file.ID,
		PersonID:   file.PersonID,
		Name:       file.Name,
		MimeType:   file.MimeType,
		Size:       file.Size,
		Type:       file.Type,
		URL:        url,
		UploadedBy: file.UploadedBy,
		CreatedAt:  file.CreatedAt,
		UpdatedAt:  file.UpdatedAt,
	}
}

// List returns the person's files, newest first
func (s *FileService) List(ctx context.Context, actor Actor, personID uuid.UUID) ([]FileResponse, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	files, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	responses := make([]FileResponse, len(files))
	for i := range files {
		responses[i] = *s.toResponse(ctx, &files[i])
	}
	return responses, nil
}

// Create stores the upload and records it on the person
func (s *FileService) Create(ctx context.Context, actor Actor, personID uuid.UUID, upload *FileUpload) (*FileResponse, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}

	file := &models.File{UploadedBy: &actor.UserID}
	file.PersonID = personID
	if err := s.putObject(ctx, file, upload); err != nil {
		return nil, err
	}
	file.Name = strings.TrimSpace(upload.Name)
	if file.Name == "" {
		file.Name = filepath.Base(upload.Filename)
	}

	if err := s.repo.Create(file); err != nil {
		s.removeObject(ctx, file.Path)
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return s.toResponse(ctx, file), nil
}

// Get retrieves a file of the person
func (s *FileService) Get(ctx context.Context, actor Actor, personID, id uuid.UUID) (*FileResponse, error) {
	file, err := s.get(actor, personID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, file), nil
}

func (s *FileService) get(actor Actor, personID, id uuid.UUID) (*models.File, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	file, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrFileNotFound, "get file")
	}
	return file, nil
}

// Update renames a file and/or replaces its content. The new object is stored
// before the row changes and the old object is removed only afterwards.
func (s *FileService) Update(ctx context.Context, actor Actor, personID, id uuid.UUID, name string, upload *FileUpload) (*FileResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" && upload == nil {
		return nil, apperrors.NewValidationError("file", "a new name or file is required")
	}

	file, err := s.get(actor, personID, id)
	if err != nil {
		return nil, err
	}

	oldPath := file.Path
	if upload != nil {
		if err := s.putObject(ctx, file, upload); err != nil {
			return nil, err
		}
		if name == "" {
			file.Name = filepath.Base(upload.Filename)
		}
	}
	if name != "" {
		file.Name = name
	}

	if err := s.repo.Update(file); err != nil {
		if file.Path != oldPath {
			s.removeObject(ctx, file.Path)
		}
		return nil, fmt.Errorf("failed to update file: %w", err)
	}
	if file.Path != oldPath {
		s.removeObject(ctx, oldPath)
	}
	return s.toResponse(ctx, file), nil
}

// Delete removes the stored object and the file row
func (s *FileService) Delete(ctx context.Context, actor Actor, personID, id uuid.UUID) error {
	file, err := s.get(actor, personID, id)
	if err != nil {
		return err
	}

	err = s.store.Delete(ctx, file.Path)
	switch {
	case errors.Is(err, apperrors.ErrObjectNotFound):
		logger.WithContext(ctx).WithField("path", file.Path).Warn("stored file already missing")
	case err != nil:
		return fmt.Errorf("failed to delete stored file: %w", err)
	}

	if err := s.repo.Delete(personID, id); err != nil {
		return notFound(err, apperrors.ErrFileNotFound, "delete file")
	}
	return nil
}

// putObject enforces the size limit, sniffs the MIME type and uploads the content under a fresh key
func (s *FileService) putObject(ctx context.Context, file *models.File, upload *FileUpload) error {
	if upload == nil || upload.Body == nil || upload.Filename == "" {
		return apperrors.NewValidationError("file", "file is required")
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return apperrors.ErrFileTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mimeType := storage.DetectMime(head, upload.ContentType)
	key := fmt.Sprintf("people/%s/%s%s", file.PersonID, uuid.New(), strings.ToLower(filepath.Ext(upload.Filename)))
	body := io.MultiReader(bytes.NewReader(head), upload.Body)

	if err := s.store.Put(ctx, key, body, upload.Size, mimeType); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}

	file.Path = key
	file.MimeType = mimeType
	file.Size = upload.Size
	file.Type = storage.FileTypeFromMime(mimeType)
	return nil
}

func (s *FileService) removeObject(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, apperrors.ErrObjectNotFound) {
		logger.WithContext(ctx).WithField("path", key).WithField("error", err.Error()).Warn("failed to remove stored file")
	}
}
