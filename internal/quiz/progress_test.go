package quiz

import "testing"

func TestSelectAndReveal(t *testing.T) {
	p := NewProgress()

	if got := p.State(0); got.Phase != Unanswered {
		t.Fatalf("expected untouched question Unanswered, got %v", got.Phase)
	}

	p.Select(0, "B")
	if got := p.State(0); got.Phase != Selected || got.Chosen != "B" {
		t.Fatalf("expected Selected B, got %+v", got)
	}

	p.Reveal(0, "B")
	got := p.State(0)
	if got.Phase != Revealed || !got.Correct {
		t.Fatalf("expected Revealed correct, got %+v", got)
	}
}

func TestRevealWrongAnswer(t *testing.T) {
	p := NewProgress()
	p.Select(0, "A")
	p.Reveal(0, "C")

	got := p.State(0)
	if got.Phase != Revealed || got.Correct {
		t.Fatalf("expected Revealed incorrect, got %+v", got)
	}
}

func TestSelectOverwriteBeforeReveal(t *testing.T) {
	p := NewProgress()
	p.Select(2, "A")
	p.Select(2, "C")
	p.Reveal(2, "C")

	got := p.State(2)
	if got.Chosen != "C" || !got.Correct {
		t.Fatalf("expected last selection to win, got %+v", got)
	}
}

func TestRevealedQuestionIsFrozen(t *testing.T) {
	p := NewProgress()
	p.Select(1, "B")
	p.Reveal(1, "B")

	p.Select(1, "A")
	p.Reveal(1, "A")

	got := p.State(1)
	if got.Chosen != "B" || !got.Correct {
		t.Fatalf("expected frozen state after reveal, got %+v", got)
	}
}

func TestRevealRequiresSelection(t *testing.T) {
	p := NewProgress()
	p.Reveal(0, "A")

	if got := p.State(0); got.Phase != Unanswered {
		t.Fatalf("expected reveal without selection to be a no-op, got %+v", got)
	}
}

func TestGradingIsByteExact(t *testing.T) {
	p := NewProgress()
	p.Select(0, "a")
	p.Reveal(0, "A")

	if got := p.State(0); got.Correct {
		t.Fatal("expected case-differing letters to grade incorrect")
	}
}

func TestRevealedCounts(t *testing.T) {
	p := NewProgress()
	p.Select(0, "A")
	p.Reveal(0, "A")
	p.Select(1, "B")
	p.Reveal(1, "C")
	p.Select(2, "A")

	revealed, correct := p.Revealed()
	if revealed != 2 || correct != 1 {
		t.Fatalf("expected 2 revealed 1 correct, got %d/%d", revealed, correct)
	}
}

func TestOptionLetter(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
	}
	for _, tc := range cases {
		if got := OptionLetter(tc.n); got != tc.want {
			t.Errorf("OptionLetter(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
