package study

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildRequest_TextThreshold(t *testing.T) {
	// Exactly 10 characters: rejected. 11: accepted.
	_, err := BuildRequest(TextContent("abcdefghij"))
	var invErr *ErrInvalidInput
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidInput for 10-char text, got: %v", err)
	}

	req, err := BuildRequest(TextContent("abcdefghijk"))
	if err != nil {
		t.Fatalf("expected 11-char text accepted, got: %v", err)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
}

func TestBuildRequest_TextThresholdIgnoresWhitespace(t *testing.T) {
	_, err := BuildRequest(TextContent("   abcdefghij   \n"))
	var invErr *ErrInvalidInput
	if !errors.As(err, &invErr) {
		t.Fatalf("expected padding not to count toward the threshold, got: %v", err)
	}
}

func TestBuildRequest_TextAppendsVerbatim(t *testing.T) {
	text := "Photosynthesis converts light energy into chemical energy."
	req, err := BuildRequest(TextContent(text))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	parts := req.Messages[0].Parts
	if len(parts) != 1 {
		t.Fatalf("expected single text part, got %d", len(parts))
	}
	if !strings.HasSuffix(parts[0].Text, text) {
		t.Error("expected user text appended verbatim after the instruction")
	}
	if !strings.Contains(parts[0].Text, "glossary") {
		t.Error("expected instruction framing in the text part")
	}
}

func TestBuildRequest_ImagePartOrder(t *testing.T) {
	req, err := BuildRequest(ImageContent([]byte{0xFF, 0xD8, 0xFF}, "image/jpeg"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	parts := req.Messages[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if !parts[0].IsData() {
		t.Error("expected image part first")
	}
	if parts[0].MIMEType != "image/jpeg" {
		t.Errorf("expected declared MIME type, got %q", parts[0].MIMEType)
	}
	if parts[1].IsData() || parts[1].Text == "" {
		t.Error("expected instruction text part second")
	}
}

func TestBuildRequest_SchemaAttached(t *testing.T) {
	req, err := BuildRequest(TextContent("some study notes on cell division"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if req.Schema != AnalysisSchema {
		t.Error("expected the shared analysis schema on the request")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}

func TestBuildRequest_EmptyContent(t *testing.T) {
	_, err := BuildRequest(PendingContent{})
	var invErr *ErrInvalidInput
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidInput for empty content, got: %v", err)
	}

	_, err = BuildRequest(ImageContent(nil, "image/png"))
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidInput for empty image, got: %v", err)
	}
}
