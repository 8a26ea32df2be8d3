package study

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImagePNG(t *testing.T) {
	path := writeTestFile(t, "notes.png", append(pngHeader, make([]byte, 64)...))

	data, mimeType, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("expected image/png, got %q", mimeType)
	}
	if len(data) != len(pngHeader)+64 {
		t.Errorf("unexpected data length %d", len(data))
	}
}

func TestLoadImageJPEG(t *testing.T) {
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 32)...)
	path := writeTestFile(t, "photo.jpg", jpeg)

	_, mimeType, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", mimeType)
	}
}

func TestLoadImageHEICByExtension(t *testing.T) {
	// HEIC is not sniffable from content; the extension decides.
	path := writeTestFile(t, "photo.heic", make([]byte, 128))

	_, mimeType, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if mimeType != "image/heic" {
		t.Errorf("expected image/heic, got %q", mimeType)
	}
}

func TestLoadImageRejectsNonImage(t *testing.T) {
	path := writeTestFile(t, "notes.txt", []byte("plain text, not an image at all"))

	_, _, err := LoadImage(path)
	var invErr *ErrInvalidInput
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestLoadImageRejectsEmptyAndMissing(t *testing.T) {
	path := writeTestFile(t, "empty.png", nil)

	var invErr *ErrInvalidInput
	if _, _, err := LoadImage(path); !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidInput for empty file, got: %v", err)
	}

	if _, _, err := LoadImage(""); !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidInput for blank path, got: %v", err)
	}

	if _, _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
