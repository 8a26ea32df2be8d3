package study

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageBytes caps how large a photo may be before submission.
const MaxImageBytes = 20 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
	"image/heic": true,
	"image/heif": true,
}

// LoadImage reads an image file and sniffs its MIME type against the
// supported set. HEIC is not detectable from content alone, so the
// extension decides when sniffing comes back generic.
func LoadImage(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, "", &ErrInvalidInput{Reason: "no image path provided"}
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", &ErrInvalidInput{Reason: "image file is empty"}
	}
	if len(data) > MaxImageBytes {
		return nil, "", &ErrInvalidInput{Reason: "image file is too large"}
	}

	mimeType := SniffImageType(data, path)
	if !allowedImageTypes[mimeType] {
		return nil, "", &ErrInvalidInput{
			Reason: fmt.Sprintf("unsupported image type %q", mimeType),
		}
	}

	return data, mimeType, nil
}

// SniffImageType determines the MIME type of image bytes, falling back
// to the file extension for formats content sniffing cannot identify.
func SniffImageType(data []byte, path string) string {
	mimeType := http.DetectContentType(data)
	if mimeType != "application/octet-stream" {
		return mimeType
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	}
	return mimeType
}
