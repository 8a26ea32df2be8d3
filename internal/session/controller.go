// Package session coordinates one study session: capturing input,
// running the analysis, and walking the resulting study aid.
package session

import (
	"github.com/google/uuid"

	"github.com/nmehta/studysnap/internal/quiz"
	"github.com/nmehta/studysnap/internal/study"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseAwaitingInput Phase = iota // Capturing text or an image
	PhaseAnalyzing                  // Analysis request in flight
	PhaseShowingResult              // Study aid displayed
	PhaseShowingError               // Analysis failed; input preserved
)

func (p Phase) String() string {
	switch p {
	case PhaseAnalyzing:
		return "analyzing"
	case PhaseShowingResult:
		return "showing-result"
	case PhaseShowingError:
		return "showing-error"
	default:
		return "awaiting-input"
	}
}

// Controller tracks the runtime state of one study session. It is not
// safe for concurrent use; the UI drives it from a single goroutine and
// delivers analysis completions back through FinishAnalysis.
type Controller struct {
	// Mode selects which input variant is being captured. Switching
	// modes never clears the other variant's data.
	Mode study.Mode

	// Text is the typed-notes input, kept across mode switches.
	Text string

	// ImageData and ImageMIME hold the loaded photo, kept across mode
	// switches.
	ImageData []byte
	ImageMIME string

	// Result is the current study aid (nil until an analysis succeeds).
	Result *study.AnalysisResult

	// Progress tracks quiz interaction for the current result.
	Progress *quiz.Progress

	// ErrMessage is the user-facing message shown in PhaseShowingError.
	ErrMessage string

	phase   Phase
	attempt string
}

// NewController creates a session in the input-capture phase.
func NewController() *Controller {
	return &Controller{
		Mode:     study.ModeText,
		Progress: quiz.NewProgress(),
	}
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Pending returns the active input variant as submittable content.
func (c *Controller) Pending() study.PendingContent {
	switch c.Mode {
	case study.ModeImage:
		if len(c.ImageData) == 0 {
			return study.PendingContent{}
		}
		return study.ImageContent(c.ImageData, c.ImageMIME)
	default:
		return study.TextContent(c.Text)
	}
}

// Submittable reports whether the active input variant can be sent:
// text above the length threshold, or a loaded image.
func (c *Controller) Submittable() bool {
	switch c.Mode {
	case study.ModeImage:
		return len(c.ImageData) > 0
	default:
		return study.TextSubmittable(c.Text)
	}
}

// BeginAnalysis moves the session into the analyzing phase and returns
// an attempt token plus the content to analyze. The token must be
// passed back to FinishAnalysis; a token minted before a Reset is
// rejected there, so a reset mid-flight discards the eventual response.
// Returns ok=false if the session is already analyzing or the input is
// not submittable.
func (c *Controller) BeginAnalysis() (attempt string, pending study.PendingContent, ok bool) {
	if c.phase == PhaseAnalyzing || !c.Submittable() {
		return "", study.PendingContent{}, false
	}

	c.attempt = uuid.New().String()
	c.phase = PhaseAnalyzing
	c.ErrMessage = ""
	return c.attempt, c.Pending(), true
}

// FinishAnalysis delivers the outcome of an analysis attempt. Stale
// completions, whose token no longer matches, are dropped silently. On
// success the previous result and quiz progress are replaced wholesale;
// on failure the captured input is preserved so the user can resubmit.
func (c *Controller) FinishAnalysis(attempt string, result *study.AnalysisResult, err error) {
	if attempt == "" || attempt != c.attempt {
		return
	}
	c.attempt = ""

	if err != nil {
		c.phase = PhaseShowingError
		c.ErrMessage = study.UserErrorMessage
		return
	}

	c.Result = result
	c.Progress = quiz.NewProgress()
	c.phase = PhaseShowingResult
	c.ErrMessage = ""
}

// SelectOption records an option choice for a quiz question. Only valid
// while a result is showing.
func (c *Controller) SelectOption(questionIndex, optionIndex int) {
	if c.phase != PhaseShowingResult || c.Result == nil {
		return
	}
	if questionIndex < 0 || questionIndex >= len(c.Result.Questions) {
		return
	}
	q := c.Result.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}
	c.Progress.Select(questionIndex, quiz.OptionLetter(optionIndex))
}

// RevealAnswer grades the selected option of a quiz question. Only
// valid while a result is showing.
func (c *Controller) RevealAnswer(questionIndex int) {
	if c.phase != PhaseShowingResult || c.Result == nil {
		return
	}
	if questionIndex < 0 || questionIndex >= len(c.Result.Questions) {
		return
	}
	c.Progress.Reveal(questionIndex, c.Result.Questions[questionIndex].Answer)
}

// Dismiss returns from the error phase to input capture, keeping the
// captured input for another attempt.
func (c *Controller) Dismiss() {
	if c.phase != PhaseShowingError {
		return
	}
	c.phase = PhaseAwaitingInput
	c.ErrMessage = ""
}

// Reset clears the session back to a blank capture phase: input, result,
// and quiz progress are dropped, and any in-flight attempt is
// invalidated. Takes effect immediately regardless of phase.
func (c *Controller) Reset() {
	c.Mode = study.ModeText
	c.Text = ""
	c.ImageData = nil
	c.ImageMIME = ""
	c.Result = nil
	c.Progress = quiz.NewProgress()
	c.ErrMessage = ""
	c.phase = PhaseAwaitingInput
	c.attempt = ""
}
