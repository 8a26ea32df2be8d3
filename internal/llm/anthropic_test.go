package llm

import (
	"testing"
)

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-3-opus-latest", "claude-3-opus-latest"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildAnthropicMessages_RolesAndParts(t *testing.T) {
	msgs := buildAnthropicMessages([]Message{
		{Role: RoleUser, Parts: []Part{
			DataPart([]byte{1, 2, 3}, "image/png"),
			TextPart("analyze"),
		}},
		TextMessage(RoleAssistant, "ok"),
	})

	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "user" {
		t.Errorf("expected user role, got %s", msgs[0].Role)
	}
	if len(msgs[0].Content) != 2 {
		t.Fatalf("expected 2 content blocks, got %d", len(msgs[0].Content))
	}
	if msgs[0].Content[0].OfImage == nil {
		t.Error("expected image block first")
	}
	if msgs[0].Content[1].OfText == nil {
		t.Error("expected text block second")
	}
	if msgs[1].Role != "assistant" {
		t.Errorf("expected assistant role, got %s", msgs[1].Role)
	}
}
