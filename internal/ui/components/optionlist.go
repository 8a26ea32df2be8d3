package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/nmehta/studysnap/internal/quiz"
	"github.com/nmehta/studysnap/internal/ui/theme"
)

// OptionList renders one multiple-choice question from its interaction
// state. It is display-only; the owning screen moves the cursor and
// drives selection and reveal.
type OptionList struct {
	Question string
	Options  []string
	Answer   string

	// Cursor is the option index under the keyboard cursor.
	Cursor int

	// State is the current interaction state of the question.
	State quiz.QuestionState
}

// View renders the question and its lettered options. Before reveal the
// cursor and any selection are highlighted; after reveal the correct
// option is green, a wrong choice rose, and the rest dimmed.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	revealed := o.State.Phase == quiz.Revealed

	for i, opt := range o.Options {
		letter := quiz.OptionLetter(i)
		prefix := "  "
		if !revealed && i == o.Cursor {
			prefix = "▸ "
		}

		marker := " "
		if o.State.Phase != quiz.Unanswered && o.State.Chosen == letter {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, letter, opt)

		switch {
		case revealed && letter == o.Answer:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case revealed && letter == o.State.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case o.State.Chosen == letter:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if revealed {
		s += "\n"
		if o.State.Correct {
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("Not quite. The answer is %s.", o.Answer))
		}
		s += "\n"
	}

	return s
}
