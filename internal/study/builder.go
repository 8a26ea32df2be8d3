package study

import (
	"fmt"
	"strings"

	"github.com/nmehta/studysnap/internal/llm"
)

// MinTextChars is the threshold for text submissions: the trimmed text
// must be strictly longer than this.
const MinTextChars = 10

// BuildRequest converts pending content into an analysis request: the
// content part(s), the fixed instruction, and the output schema. Pure;
// a fresh request is built for every attempt.
func BuildRequest(pending PendingContent) (llm.Request, error) {
	var msg llm.Message

	switch {
	case pending.IsImage():
		data, mimeType := pending.Image()
		if len(data) == 0 {
			return llm.Request{}, &ErrInvalidInput{Reason: "no image content"}
		}
		msg = llm.Message{
			Role: llm.RoleUser,
			Parts: []llm.Part{
				llm.DataPart(data, mimeType),
				llm.TextPart(imageInstruction),
			},
		}

	case pending.IsText():
		if !TextSubmittable(pending.Text()) {
			return llm.Request{}, &ErrInvalidInput{
				Reason: fmt.Sprintf("text must be longer than %d characters", MinTextChars),
			}
		}
		// User text is appended verbatim: no truncation, no sanitization.
		msg = llm.TextMessage(llm.RoleUser, textInstruction+pending.Text())

	default:
		return llm.Request{}, &ErrInvalidInput{Reason: "no content provided"}
	}

	return llm.Request{
		System:   analysisSystemPrompt,
		Messages: []llm.Message{msg},
		Schema:   AnalysisSchema,
	}, nil
}

// TextSubmittable reports whether text meets the submission threshold.
func TextSubmittable(s string) bool {
	return len(strings.TrimSpace(s)) > MinTextChars
}
