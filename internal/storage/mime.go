package storage

import (
	"mime"
	"strings"

	"dealspace-backend/internal/database/models"

	"github.com/gabriel-vasile/mimetype"
)

var mimeGroups = map[models.FileType][]string{
	models.FileTypeDocument: {
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.oasis.opendocument.text",
		"application/rtf",
		"text/rtf",
		"text/plain",
	},
	models.FileTypeSpreadsheet: {
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.oasis.opendocument.spreadsheet",
		"text/csv",
	},
	models.FileTypePresentation: {
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"application/vnd.oasis.opendocument.presentation",
	},
	models.FileTypeArchive: {
		"application/zip",
		"application/x-zip-compressed",
		"application/x-rar-compressed",
		"application/vnd.rar",
		"application/x-7z-compressed",
		"application/x-tar",
		"application/gzip",
	},
}

var fileTypesByMime = func() map[string]models.FileType {
	lookup := make(map[string]models.FileType)
	for fileType, mimes := range mimeGroups {
		for _, m := range mimes {
			lookup[m] = fileType
		}
	}
	return lookup
}()

// FileTypeFromMime maps a MIME type to the file category shown in the CRM
func FileTypeFromMime(mimeType string) models.FileType {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}

	if fileType, ok := fileTypesByMime[mediaType]; ok {
		return fileType
	}

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return models.FileTypeImage
	case strings.HasPrefix(mediaType, "audio/"):
		return models.FileTypeAudio
	case strings.HasPrefix(mediaType, "video/"):
		return models.FileTypeVideo
	}
	return models.FileTypeOther
}

// DetectMime sniffs the content type from the first bytes of an upload. When
// sniffing only yields a generic type the client supplied header wins.
func DetectMime(head []byte, declared string) string {
	detected := mimetype.Detect(head)
	sniffed := detected.String()
	if mediaType, _, err := mime.ParseMediaType(sniffed); err == nil {
		sniffed = mediaType
	}

	generic := detected.Is("application/octet-stream") || detected.Is("text/plain") || detected.Is("application/zip")
	if generic && declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}
	return sniffed
}
