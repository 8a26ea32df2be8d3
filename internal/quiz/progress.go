// Package quiz tracks per-question interaction state for a study quiz.
// Grading is positional: each option is addressed by its letter ("A" for
// the first option), and a revealed selection is correct exactly when its
// letter equals the question's answer letter.
package quiz

// Phase is the interaction state of a single question.
type Phase int

const (
	// Unanswered means no option has been chosen yet.
	Unanswered Phase = iota
	// Selected means an option is chosen but not yet graded.
	Selected
	// Revealed means the outcome is shown; the question is frozen.
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Selected:
		return "selected"
	case Revealed:
		return "revealed"
	default:
		return "unanswered"
	}
}

// QuestionState is the interaction state of one question. Once revealed
// it never changes again.
type QuestionState struct {
	Phase   Phase
	Chosen  string
	Correct bool
}

// Progress tracks interaction state per question index. The zero value
// is empty; questions start Unanswered implicitly.
type Progress struct {
	states map[int]*QuestionState
}

// NewProgress creates empty progress.
func NewProgress() *Progress {
	return &Progress{states: make(map[int]*QuestionState)}
}

// State returns the state of the question at index. Questions never
// touched report Unanswered.
func (p *Progress) State(index int) QuestionState {
	if s, ok := p.states[index]; ok {
		return *s
	}
	return QuestionState{}
}

// Select records letter as the chosen option for the question at index.
// Re-selecting before reveal overwrites the previous choice. After
// reveal the call is a no-op.
func (p *Progress) Select(index int, letter string) {
	s := p.state(index)
	if s.Phase == Revealed {
		return
	}
	s.Phase = Selected
	s.Chosen = letter
}

// Reveal grades the question at index against answer. It only fires
// from Selected: revealing an unanswered question is a no-op, and a
// revealed question stays frozen.
func (p *Progress) Reveal(index int, answer string) {
	s := p.state(index)
	if s.Phase != Selected {
		return
	}
	s.Phase = Revealed
	s.Correct = s.Chosen == answer
}

// Revealed reports how many questions have been revealed and how many
// of those were correct.
func (p *Progress) Revealed() (revealed, correct int) {
	for _, s := range p.states {
		if s.Phase == Revealed {
			revealed++
			if s.Correct {
				correct++
			}
		}
	}
	return revealed, correct
}

func (p *Progress) state(index int) *QuestionState {
	if p.states == nil {
		p.states = make(map[int]*QuestionState)
	}
	s, ok := p.states[index]
	if !ok {
		s = &QuestionState{}
		p.states[index] = s
	}
	return s
}

// OptionLetter returns the positional letter for option index n:
// "A" for 0, "B" for 1, and so on.
func OptionLetter(n int) string {
	return string(rune('A' + n))
}
