package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nmehta/studysnap/internal/session"
	"github.com/nmehta/studysnap/internal/study"
	"github.com/nmehta/studysnap/internal/ui/components"
	"github.com/nmehta/studysnap/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch s.ctrl.Phase() {
	case session.PhaseAnalyzing:
		return s.renderAnalyzing(width, height)
	case session.PhaseShowingResult:
		return s.renderResult(width, height)
	case session.PhaseShowingError:
		return s.renderError(width, height)
	default:
		return s.renderCapture(width, height)
	}
}

func (s *StudyScreen) renderCapture(width, height int) string {
	var b strings.Builder

	b.WriteString(renderModeTabs(s.ctrl.Mode, width))
	b.WriteString("\n\n")

	if s.ctrl.Mode == study.ModeText {
		s.notes.SetSize(width-8, contentLines(height))
		b.WriteString(s.notes.View())
		b.WriteString("\n\n")

		count := len(strings.TrimSpace(s.notes.Value()))
		hint := fmt.Sprintf("  %d characters", count)
		if !study.TextSubmittable(s.notes.Value()) {
			hint += fmt.Sprintf("  (need more than %d to analyze)", study.MinTextChars)
		}
		b.WriteString(theme.Hint.Render(hint))
	} else {
		b.WriteString("  " + s.pathIn.View())
		b.WriteString("\n\n")

		switch {
		case s.loadErr != "":
			b.WriteString(theme.Incorrect.Render("  " + s.loadErr))
		case len(s.ctrl.ImageData) > 0:
			b.WriteString(theme.Correct.Render(fmt.Sprintf(
				"  Loaded %s (%d KB)", s.ctrl.ImageMIME, len(s.ctrl.ImageData)/1024)))
		default:
			b.WriteString(theme.Hint.Render("  Enter a file path and press Enter to load it."))
		}
	}

	return b.String()
}

func (s *StudyScreen) renderAnalyzing(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame]
	msg := fmt.Sprintf("%s  Analyzing your material...", frame)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(msg)
}

func (s *StudyScreen) renderError(width, height int) string {
	card := theme.Card.Render(
		theme.Incorrect.Render("Analysis failed") + "\n\n" +
			theme.Body.Render(s.ctrl.ErrMessage) + "\n\n" +
			theme.Hint.Render("Your input is still here. Press Enter to try again."))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *StudyScreen) renderResult(width, height int) string {
	var b strings.Builder

	b.WriteString(renderResultTabs(s.tab, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	switch s.tab {
	case tabGlossary:
		b.WriteString(s.renderGlossary(width))
	case tabQuiz:
		b.WriteString(s.renderQuiz(width))
	default:
		b.WriteString(s.renderSummary(width))
	}

	return b.String()
}

func (s *StudyScreen) renderSummary(width int) string {
	result := s.ctrl.Result

	body := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text).
		Render(result.Summary)

	note := lipgloss.NewStyle().
		Width(width - 8).
		Render(theme.Encouragement.Render(result.Encouragement))

	return "  " + strings.ReplaceAll(body, "\n", "\n  ") +
		"\n\n  " + strings.ReplaceAll(note, "\n", "\n  ")
}

func (s *StudyScreen) renderGlossary(width int) string {
	var b strings.Builder
	for _, kt := range s.ctrl.Result.KeyTerms {
		b.WriteString("  " + theme.TermStyle.Render(kt.Term) + "\n")
		def := lipgloss.NewStyle().
			Width(width - 10).
			Foreground(theme.TextDim).
			Render(kt.Definition)
		b.WriteString("    " + strings.ReplaceAll(def, "\n", "\n    ") + "\n\n")
	}
	return b.String()
}

func (s *StudyScreen) renderQuiz(width int) string {
	result := s.ctrl.Result
	if len(result.Questions) == 0 {
		return theme.Hint.Render("  No quiz questions this time.")
	}

	q := result.Questions[s.questionIdx]

	var b strings.Builder

	revealed, correct := s.ctrl.Progress.Revealed()
	header := fmt.Sprintf("  Question %d of %d", s.questionIdx+1, len(result.Questions))
	if revealed > 0 {
		header += theme.Hint.Render(fmt.Sprintf("   %d/%d correct so far", correct, revealed))
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n\n")

	list := components.OptionList{
		Question: q.Question,
		Options:  q.Options,
		Answer:   q.Answer,
		Cursor:   s.optionCursor,
		State:    s.ctrl.Progress.State(s.questionIdx),
	}
	b.WriteString("  " + strings.ReplaceAll(list.View(), "\n", "\n  "))

	return b.String()
}

func renderModeTabs(mode study.Mode, width int) string {
	var textTab, imageTab string
	if mode == study.ModeText {
		textTab = theme.ButtonActive.Render("Type notes")
		imageTab = theme.ButtonInactive.Render("Photo")
	} else {
		textTab = theme.ButtonInactive.Render("Type notes")
		imageTab = theme.ButtonActive.Render("Photo")
	}

	return "  " + lipgloss.JoinHorizontal(lipgloss.Center, textTab, "  ", imageTab)
}

func renderResultTabs(active resultTab, width int) string {
	names := []string{"Summary", "Glossary", "Quiz"}
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if resultTab(i) == active {
			parts = append(parts, theme.Selected.Render(name))
		} else {
			parts = append(parts, theme.Hint.Render(name))
		}
	}
	return "  " + strings.Join(parts, "   ")
}

// contentLines reserves room for the tabs and the status line under the editor.
func contentLines(height int) int {
	h := height - 6
	if h < 3 {
		return 3
	}
	return h
}
