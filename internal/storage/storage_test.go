package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocalStorage(root, "http://localhost:8000/storage/")
	require.NoError(t, err)

	key := "people/abc/file.txt"

	t.Run("put and open", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, strings.NewReader("hello"), 5, "text/plain"))

		_, err := os.Stat(filepath.Join(root, "people", "abc", "file.txt"))
		require.NoError(t, err)

		rc, err := store.Open(ctx, key)
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))
	})

	t.Run("put replaces content", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, strings.NewReader("bye"), 3, "text/plain"))
		rc, err := store.Open(ctx, key)
		require.NoError(t, err)
		defer rc.Close()
		body, _ := io.ReadAll(rc)
		assert.Equal(t, "bye", string(body))
	})

	t.Run("url", func(t *testing.T) {
		url, err := store.URL(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/storage/people/abc/file.txt", url)
	})

	t.Run("keys cannot escape root", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "../../outside.txt", strings.NewReader("x"), 1, "text/plain"))
		_, err := os.Stat(filepath.Join(root, "outside.txt"))
		assert.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))
		assert.ErrorIs(t, store.Delete(ctx, key), apperrors.ErrObjectNotFound)

		_, err := store.Open(ctx, key)
		assert.ErrorIs(t, err, apperrors.ErrObjectNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		assert.Error(t, store.Put(ctx, "  ", strings.NewReader(""), 0, ""))
	})
}

func TestFileTypeFromMime(t *testing.T) {
	tests := []struct {
		mime string
		want models.FileType
	}{
		{"image/png", models.FileTypeImage},
		{"image/jpeg", models.FileTypeImage},
		{"application/pdf", models.FileTypeDocument},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", models.FileTypeDocument},
		{"text/plain; charset=utf-8", models.FileTypeDocument},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", models.FileTypeSpreadsheet},
		{"text/csv", models.FileTypeSpreadsheet},
		{"application/vnd.ms-powerpoint", models.FileTypePresentation},
		{"audio/mpeg", models.FileTypeAudio},
		{"video/mp4", models.FileTypeVideo},
		{"application/zip", models.FileTypeArchive},
		{"application/octet-stream", models.FileTypeOther},
		{"", models.FileTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, FileTypeFromMime(tt.mime))
		})
	}
}

func TestDetectMime(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	pdf := []byte("%PDF-1.7\n")

	assert.Equal(t, "image/png", DetectMime(png, "application/octet-stream"))
	assert.Equal(t, "application/pdf", DetectMime(pdf, "image/png"))
	assert.Equal(t, "text/csv", DetectMime([]byte("first_name,last_name\n"), "text/csv"))
	assert.Equal(t, "application/octet-stream", DetectMime([]byte{0x00, 0x01, 0x02}, ""))
}
