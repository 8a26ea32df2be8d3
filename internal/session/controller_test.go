package session

import (
	"testing"

	"github.com/nmehta/studysnap/internal/quiz"
	"github.com/nmehta/studysnap/internal/study"
)

func testResult() *study.AnalysisResult {
	return &study.AnalysisResult{
		Summary: "Plants make glucose from light, water, and carbon dioxide.",
		KeyTerms: []study.KeyTerm{
			{Term: "Chloroplast", Definition: "Organelle where photosynthesis happens."},
		},
		Questions: []study.Question{
			{
				Question: "Where does photosynthesis happen?",
				Options:  []string{"Mitochondria", "Chloroplast", "Nucleus"},
				Answer:   "B",
			},
			{
				Question: "What gas do plants take in?",
				Options:  []string{"Oxygen", "Carbon dioxide"},
				Answer:   "B",
			},
		},
		Encouragement: "You've got this!",
	}
}

func TestBeginAnalysisRequiresSubmittableInput(t *testing.T) {
	c := NewController()

	if _, _, ok := c.BeginAnalysis(); ok {
		t.Fatal("expected begin to fail with empty text")
	}

	c.Text = "short"
	if _, _, ok := c.BeginAnalysis(); ok {
		t.Fatal("expected begin to fail below the text threshold")
	}

	c.Text = "the krebs cycle produces ATP in the mitochondria"
	attempt, pending, ok := c.BeginAnalysis()
	if !ok {
		t.Fatal("expected begin to succeed")
	}
	if attempt == "" {
		t.Error("expected an attempt token")
	}
	if !pending.IsText() {
		t.Error("expected text content")
	}
	if c.Phase() != PhaseAnalyzing {
		t.Errorf("expected PhaseAnalyzing, got %v", c.Phase())
	}
}

func TestBeginAnalysisImageMode(t *testing.T) {
	c := NewController()
	c.Mode = study.ModeImage

	if c.Submittable() {
		t.Fatal("expected image mode without a loaded image to be unsubmittable")
	}

	c.ImageData = []byte{0x89, 0x50, 0x4E, 0x47}
	c.ImageMIME = "image/png"

	_, pending, ok := c.BeginAnalysis()
	if !ok {
		t.Fatal("expected begin to succeed")
	}
	if !pending.IsImage() {
		t.Fatal("expected image content")
	}
	data, mime := pending.Image()
	if len(data) != 4 || mime != "image/png" {
		t.Errorf("unexpected image payload: %d bytes, %q", len(data), mime)
	}
}

func TestNoSecondSubmitWhileAnalyzing(t *testing.T) {
	c := NewController()
	c.Text = "newton's first law says objects in motion stay in motion"

	if _, _, ok := c.BeginAnalysis(); !ok {
		t.Fatal("expected first begin to succeed")
	}
	if _, _, ok := c.BeginAnalysis(); ok {
		t.Fatal("expected second begin to fail while analyzing")
	}
}

func TestFinishAnalysisSuccess(t *testing.T) {
	c := NewController()
	c.Text = "the water cycle moves water through evaporation and rain"
	attempt, _, _ := c.BeginAnalysis()

	// Select on a stale result must not survive the replacement.
	c.FinishAnalysis(attempt, testResult(), nil)

	if c.Phase() != PhaseShowingResult {
		t.Fatalf("expected PhaseShowingResult, got %v", c.Phase())
	}
	if c.Result == nil || len(c.Result.Questions) != 2 {
		t.Fatal("expected result installed")
	}
	if revealed, _ := c.Progress.Revealed(); revealed != 0 {
		t.Error("expected fresh quiz progress")
	}
}

func TestFinishAnalysisError(t *testing.T) {
	c := NewController()
	c.Text = "mitochondria are the powerhouse of the cell, they make ATP"
	attempt, _, _ := c.BeginAnalysis()

	c.FinishAnalysis(attempt, nil, &study.ErrAnalysis{})

	if c.Phase() != PhaseShowingError {
		t.Fatalf("expected PhaseShowingError, got %v", c.Phase())
	}
	if c.ErrMessage != study.UserErrorMessage {
		t.Errorf("expected the uniform error message, got %q", c.ErrMessage)
	}
	if c.Text == "" {
		t.Error("expected captured input preserved on failure")
	}

	c.Dismiss()
	if c.Phase() != PhaseAwaitingInput {
		t.Errorf("expected dismiss to return to capture, got %v", c.Phase())
	}
	if !c.Submittable() {
		t.Error("expected preserved input to remain submittable")
	}
}

func TestStaleCompletionDropped(t *testing.T) {
	c := NewController()
	c.Text = "acids donate protons and bases accept them in solution"
	attempt, _, _ := c.BeginAnalysis()

	c.Reset()

	c.FinishAnalysis(attempt, testResult(), nil)

	if c.Phase() != PhaseAwaitingInput {
		t.Fatalf("expected stale completion dropped, got %v", c.Phase())
	}
	if c.Result != nil {
		t.Error("expected no result after reset")
	}
}

func TestResetClearsEverything(t *testing.T) {
	c := NewController()
	c.Mode = study.ModeImage
	c.Text = "leftover typed notes about covalent bonds and electrons"
	c.ImageData = []byte{1, 2, 3}
	c.ImageMIME = "image/jpeg"
	attempt, _, _ := c.BeginAnalysis()
	c.FinishAnalysis(attempt, testResult(), nil)
	c.SelectOption(0, 1)
	c.RevealAnswer(0)

	c.Reset()

	if c.Phase() != PhaseAwaitingInput {
		t.Errorf("expected PhaseAwaitingInput, got %v", c.Phase())
	}
	if c.Mode != study.ModeText {
		t.Error("expected mode back to text")
	}
	if c.Text != "" || c.ImageData != nil || c.ImageMIME != "" {
		t.Error("expected all input cleared")
	}
	if c.Result != nil {
		t.Error("expected result cleared")
	}
	if revealed, _ := c.Progress.Revealed(); revealed != 0 {
		t.Error("expected quiz progress cleared")
	}
}

func TestQuizInteraction(t *testing.T) {
	c := NewController()
	c.Text = "photosynthesis happens in the chloroplast using sunlight"
	attempt, _, _ := c.BeginAnalysis()
	c.FinishAnalysis(attempt, testResult(), nil)

	c.SelectOption(0, 1)
	c.RevealAnswer(0)

	state := c.Progress.State(0)
	if state.Phase != quiz.Revealed || !state.Correct {
		t.Fatalf("expected question 0 revealed correct, got %+v", state)
	}

	c.SelectOption(1, 0)
	c.RevealAnswer(1)

	state = c.Progress.State(1)
	if state.Phase != quiz.Revealed || state.Correct {
		t.Fatalf("expected question 1 revealed incorrect, got %+v", state)
	}

	revealed, correct := c.Progress.Revealed()
	if revealed != 2 || correct != 1 {
		t.Errorf("expected 2 revealed 1 correct, got %d/%d", revealed, correct)
	}
}

func TestQuizInteractionIgnoredOutsideResult(t *testing.T) {
	c := NewController()
	c.SelectOption(0, 0)
	c.RevealAnswer(0)

	if revealed, _ := c.Progress.Revealed(); revealed != 0 {
		t.Error("expected quiz calls to be no-ops without a result")
	}

	c.Text = "glaciers carve valleys over thousands of years of movement"
	attempt, _, _ := c.BeginAnalysis()
	c.FinishAnalysis(attempt, testResult(), nil)

	c.SelectOption(5, 0)
	c.SelectOption(0, 9)
	if state := c.Progress.State(0); state.Phase != quiz.Unanswered {
		t.Error("expected out-of-range option select to be a no-op")
	}
}
