// Package upload validates uploaded text files before analysis.
package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/report"
)

var (
	ErrUnsupportedExtension = errors.New("unsupported file type")
	ErrInvalidEncoding      = errors.New("file is not valid UTF-8 text")
	ErrTooLarge             = errors.New("file is too large")
)

var allowedExtensions = map[string]struct{}{
	".txt": {},
	".csv": {},
	".md":  {},
}

func AllowedExtensions() []string {
	return []string{".txt", ".csv", ".md"}
}

// Decode checks the extension and size of an uploaded file and returns its
// content as text. The whole content is kept for analysis; Preview is for display.
func Decode(filename string, data []byte, limit int64) (models.UploadedText, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return models.UploadedText{}, fmt.Errorf("%w %q, accepted: %s",
			ErrUnsupportedExtension, ext, strings.Join(AllowedExtensions(), ", "))
	}

	if limit > 0 && int64(len(data)) > limit {
		return models.UploadedText{}, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), limit)
	}

	if !utf8.Valid(data) {
		return models.UploadedText{}, ErrInvalidEncoding
	}

	content := string(data)
	return models.UploadedText{
		Name:    filepath.Base(filename),
		Content: content,
		Preview: report.Preview(content),
	}, nil
}
