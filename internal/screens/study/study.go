// Package study implements the study session screen: capturing notes or
// a photo, running the analysis, and presenting the resulting study aid.
package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nmehta/studysnap/internal/router"
	"github.com/nmehta/studysnap/internal/screen"
	"github.com/nmehta/studysnap/internal/session"
	"github.com/nmehta/studysnap/internal/study"
	"github.com/nmehta/studysnap/internal/ui/components"
	"github.com/nmehta/studysnap/internal/ui/layout"
)

// resultTab identifies which section of the study aid is showing.
type resultTab int

const (
	tabSummary resultTab = iota
	tabGlossary
	tabQuiz
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StudyScreen implements screen.Screen for the full study flow.
type StudyScreen struct {
	ctrl     *session.Controller
	analyzer *study.Analyzer

	notes  components.TextArea
	pathIn components.TextInput

	tab          resultTab
	questionIdx  int
	optionCursor int
	spinnerFrame int

	loadErr string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen with injected dependencies.
func New(analyzer *study.Analyzer) *StudyScreen {
	return &StudyScreen{
		ctrl:     session.NewController(),
		analyzer: analyzer,
		notes:    components.NewTextArea("Paste or type your study notes here..."),
		pathIn:   components.NewTextInput("Path to a photo of your notes...", 512),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.notes.Init()
}

func (s *StudyScreen) Title() string {
	switch s.ctrl.Phase() {
	case session.PhaseAnalyzing:
		return "Analyzing"
	case session.PhaseShowingResult:
		return "Study Aid"
	default:
		return "New Session"
	}
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Phase() {
	case session.PhaseAnalyzing:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case session.PhaseShowingResult:
		hints := []layout.KeyHint{
			{Key: "Tab", Description: "Next section"},
		}
		if s.tab == tabQuiz {
			hints = append(hints,
				layout.KeyHint{Key: "←/→", Description: "Question"},
				layout.KeyHint{Key: "Enter", Description: "Choose"},
				layout.KeyHint{Key: "R", Description: "Reveal"},
			)
		}
		return append(hints,
			layout.KeyHint{Key: "N", Description: "New session"},
			layout.KeyHint{Key: "Esc", Description: "Home"},
		)
	case session.PhaseShowingError:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to input"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch input"},
			{Key: "Ctrl+S", Description: "Analyze"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		s.ctrl.FinishAnalysis(msg.Attempt, msg.Result, msg.Err)
		if s.ctrl.Phase() == session.PhaseShowingResult {
			s.tab = tabSummary
			s.questionIdx = 0
			s.optionCursor = 0
		}
		return s, nil

	case imageLoadedMsg:
		return s.handleImageLoaded(msg)

	case spinnerTickMsg:
		if s.ctrl.Phase() != session.PhaseAnalyzing {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, s.spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.ctrl.Phase() {
	case session.PhaseAnalyzing:
		if msg.String() == "esc" {
			// Cancel: the in-flight response is dropped by its stale token.
			s.ctrl.Reset()
		}
		return s, nil

	case session.PhaseShowingResult:
		return s.handleResultKey(msg)

	case session.PhaseShowingError:
		switch msg.String() {
		case "enter":
			s.ctrl.Dismiss()
			return s, nil
		case "esc":
			return s, popScreen()
		}
		return s, nil

	default:
		return s.handleCaptureKey(msg)
	}
}

func (s *StudyScreen) handleCaptureKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, popScreen()

	case "tab":
		if s.ctrl.Mode == study.ModeText {
			s.ctrl.Text = s.notes.Value()
			s.ctrl.Mode = study.ModeImage
			s.notes.Blur()
			return s, s.pathIn.Init()
		}
		s.ctrl.Mode = study.ModeText
		s.loadErr = ""
		return s, s.notes.Focus()

	case "ctrl+s":
		return s.submit()
	}

	if s.ctrl.Mode == study.ModeImage && msg.String() == "enter" {
		return s, s.loadImage(s.pathIn.Value())
	}

	return s.forwardToInput(msg)
}

func (s *StudyScreen) handleResultKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, popScreen()
	case "n":
		s.ctrl.Reset()
		s.notes.SetValue("")
		s.pathIn.ClearSubmit()
		s.loadErr = ""
		return s, s.notes.Focus()
	case "tab":
		s.tab = (s.tab + 1) % 3
		return s, nil
	}

	if s.tab != tabQuiz || s.ctrl.Result == nil || len(s.ctrl.Result.Questions) == 0 {
		return s, nil
	}

	q := s.ctrl.Result.Questions[s.questionIdx]

	switch msg.String() {
	case "left", "h":
		if s.questionIdx > 0 {
			s.questionIdx--
			s.optionCursor = 0
		}
	case "right", "l":
		if s.questionIdx < len(s.ctrl.Result.Questions)-1 {
			s.questionIdx++
			s.optionCursor = 0
		}
	case "up", "k":
		if s.optionCursor > 0 {
			s.optionCursor--
		}
	case "down", "j":
		if s.optionCursor < len(q.Options)-1 {
			s.optionCursor++
		}
	case "enter":
		s.ctrl.SelectOption(s.questionIdx, s.optionCursor)
	case "r", " ":
		s.ctrl.RevealAnswer(s.questionIdx)
	}

	return s, nil
}

func (s *StudyScreen) handleImageLoaded(msg imageLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.loadErr = msg.Err.Error()
		s.pathIn.Submit(false)
		return s, nil
	}
	s.ctrl.ImageData = msg.Data
	s.ctrl.ImageMIME = msg.MIMEType
	s.loadErr = ""
	s.pathIn.Submit(true)
	return s, nil
}

func (s *StudyScreen) submit() (screen.Screen, tea.Cmd) {
	if s.analyzer == nil {
		return s, nil
	}
	if s.ctrl.Mode == study.ModeText {
		s.ctrl.Text = s.notes.Value()
	}

	attempt, pending, ok := s.ctrl.BeginAnalysis()
	if !ok {
		return s, nil
	}

	analyzer := s.analyzer
	return s, tea.Batch(
		func() tea.Msg {
			result, err := analyzer.Analyze(context.Background(), pending)
			return analysisDoneMsg{Attempt: attempt, Result: result, Err: err}
		},
		s.spinnerTick(),
	)
}

func (s *StudyScreen) loadImage(path string) tea.Cmd {
	return func() tea.Msg {
		data, mimeType, err := study.LoadImage(path)
		return imageLoadedMsg{Data: data, MIMEType: mimeType, Err: err}
	}
}

func (s *StudyScreen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *StudyScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() != session.PhaseAwaitingInput {
		return s, nil
	}

	var cmd tea.Cmd
	if s.ctrl.Mode == study.ModeText {
		s.notes, cmd = s.notes.Update(msg)
		s.ctrl.Text = s.notes.Value()
	} else {
		s.pathIn, cmd = s.pathIn.Update(msg)
	}
	return s, cmd
}

func popScreen() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}
