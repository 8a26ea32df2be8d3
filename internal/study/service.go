package study

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nmehta/studysnap/internal/llm"
)

// Analyzer performs the one-shot analysis call against the LLM provider.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
}

// NewAnalyzer creates an analysis service.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// ModelID returns the model identifier of the underlying provider.
func (a *Analyzer) ModelID() string {
	return a.provider.ModelID()
}

type analysisOutput struct {
	Summary       string           `json:"summary"`
	KeyTerms      []keyTermOutput  `json:"keyTerms"`
	Questions     []questionOutput `json:"questions"`
	Encouragement string           `json:"encouragement"`
}

type keyTermOutput struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type questionOutput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Analyze submits pending content for analysis and returns the validated
// result. One call, no retries: it either fully succeeds or fully fails.
// Below-threshold input returns *ErrInvalidInput without calling the
// provider; every other failure is collapsed into *ErrAnalysis.
func (a *Analyzer) Analyze(ctx context.Context, pending PendingContent) (*AnalysisResult, error) {
	req, err := BuildRequest(pending)
	if err != nil {
		return nil, err
	}
	req.MaxTokens = a.cfg.MaxTokens
	req.Temperature = a.cfg.Temperature

	ctx = llm.WithPurpose(ctx, "analysis")

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrAnalysis{Err: err}
	}

	var out analysisOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrAnalysis{Err: fmt.Errorf("parse analysis response: %w", err)}
	}

	result := out.toResult()
	if err := checkAnswerLetters(result.Questions); err != nil {
		return nil, &ErrAnalysis{Err: err}
	}

	return result, nil
}

func (o analysisOutput) toResult() *AnalysisResult {
	result := &AnalysisResult{
		Summary:       o.Summary,
		Encouragement: o.Encouragement,
	}
	for _, kt := range o.KeyTerms {
		result.KeyTerms = append(result.KeyTerms, KeyTerm{
			Term:       kt.Term,
			Definition: kt.Definition,
		})
	}
	for _, q := range o.Questions {
		result.Questions = append(result.Questions, Question{
			Question: q.Question,
			Options:  q.Options,
			Answer:   q.Answer,
		})
	}
	return result
}

// checkAnswerLetters verifies each answer is a positional letter that
// actually names one of the question's options. The letter itself is
// otherwise trusted as-is; option text is never consulted.
func checkAnswerLetters(questions []Question) error {
	for i, q := range questions {
		if len(q.Answer) != 1 {
			return fmt.Errorf("question %d: answer %q is not a single letter", i, q.Answer)
		}
		idx := int(q.Answer[0] - 'A')
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Errorf("question %d: answer %q does not name one of %d options", i, q.Answer, len(q.Options))
		}
	}
	return nil
}
