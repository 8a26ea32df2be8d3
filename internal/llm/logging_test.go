package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nmehta/studysnap/internal/store"
)

// memRepo is an in-memory EventRepo capturing appended events.
type memRepo struct {
	events []store.LLMRequestEventData
}

func (m *memRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memRepo) LLMUsageByPurpose(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok": true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	repo := &memRepo{}
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "analysis")
	req := Request{
		System: "be helpful",
		Messages: []Message{{
			Role: RoleUser,
			Parts: []Part{
				DataPart([]byte{1, 2, 3}, "image/png"),
				TextPart("describe this"),
			},
		}},
	}

	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "mock" || e.Purpose != "analysis" {
		t.Errorf("unexpected provider/purpose: %q/%q", e.Provider, e.Purpose)
	}
	if !e.Success {
		t.Error("expected success recorded")
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 {
		t.Errorf("unexpected tokens: %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[inline image/png, 3 bytes]") {
		t.Error("expected binary parts summarized, not stored raw")
	}
	if !strings.Contains(e.RequestBody, "describe this") {
		t.Error("expected text parts captured")
	}
	if e.ResponseBody != `{"ok": true}` {
		t.Errorf("unexpected response body %q", e.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{},
	})
	repo := &memRepo{}
	p := WithLogging(mock, "mock", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure recorded")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message captured")
	}
}
