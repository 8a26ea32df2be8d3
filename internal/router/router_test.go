package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nmehta/studysnap/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "study"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("expected active 'study', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "study"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "study"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("expected active 'study', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestNavigationMsgs(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "study"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "study" || !s2.initRan {
		t.Fatal("expected push via message")
	}

	s3 := &stubScreen{title: "study"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Depth() != 2 || !s3.initRan {
		t.Fatal("expected in-place replace via message")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatal("expected pop via message")
	}
}
