package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line note entry.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a new styled multi-line input.
func NewTextArea(placeholder string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()
	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// SetSize adjusts the visible editor area.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// Focus gives the editor keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}
