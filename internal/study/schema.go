package study

import "github.com/nmehta/studysnap/internal/llm"

// AnalysisSchema defines the JSON schema for the structured study aid.
// It is the single contract shared by the request builder and the
// analysis client: responses are checked against it once, at the
// boundary, and trusted downstream.
var AnalysisSchema = &llm.Schema{
	Name:        "study-analysis",
	Description: "A structured study aid: summary, glossary, and multiple-choice quiz for the supplied material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Clear summary of the material in 2-4 short paragraphs",
			},
			"keyTerms": map[string]any{
				"type":        "array",
				"description": "Glossary of the most important terms, in order of appearance",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "The term as it appears in the material",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "One or two sentence definition in plain language",
						},
					},
					"required":             []any{"term", "definition"},
					"additionalProperties": false,
				},
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "Multiple-choice questions testing understanding of the material",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
							"maxItems":    26,
							"description": "Answer options; exactly one is correct",
						},
						"answer": map[string]any{
							"type":        "string",
							"pattern":     "^[A-Z]$",
							"description": "Letter of the correct option: A for the first option, B for the second, and so on",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "A short encouraging note to close the study session",
			},
		},
		"required":             []any{"summary", "keyTerms", "questions", "encouragement"},
		"additionalProperties": false,
	},
}
