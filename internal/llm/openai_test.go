package llm

import (
	"strings"
	"testing"
)

func TestBuildOpenAIMessages_SystemPrompt(t *testing.T) {
	req := Request{
		System:   "You are a study assistant.",
		Messages: []Message{TextMessage(RoleUser, "summarize this")},
	}

	messages := buildOpenAIMessages(req)

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("expected system role first, got %s", messages[0].Role)
	}
	if messages[1].Content != "summarize this" {
		t.Errorf("expected plain content for single text part, got %q", messages[1].Content)
	}
	if messages[1].MultiContent != nil {
		t.Error("expected no multi-content for single text part")
	}
}

func TestBuildOpenAIMessage_InlineDataBecomesDataURL(t *testing.T) {
	msg := buildOpenAIMessage("user", []Part{
		DataPart([]byte("fakeimage"), "image/jpeg"),
		TextPart("what does this say?"),
	})

	if msg.Content != "" {
		t.Error("expected empty plain content for multi-part message")
	}
	if len(msg.MultiContent) != 2 {
		t.Fatalf("expected 2 content parts, got %d", len(msg.MultiContent))
	}
	if msg.MultiContent[0].ImageURL == nil {
		t.Fatal("expected image URL part first")
	}
	url := msg.MultiContent[0].ImageURL.URL
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Errorf("expected data URL with jpeg prefix, got %q", url)
	}
	if msg.MultiContent[1].Text != "what does this say?" {
		t.Errorf("expected text part second, got %q", msg.MultiContent[1].Text)
	}
}
