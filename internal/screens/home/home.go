// Package home implements the landing screen.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nmehta/studysnap/internal/router"
	"github.com/nmehta/studysnap/internal/screen"
	studyscreen "github.com/nmehta/studysnap/internal/screens/study"
	"github.com/nmehta/studysnap/internal/study"
	"github.com/nmehta/studysnap/internal/ui/components"
	"github.com/nmehta/studysnap/internal/ui/theme"
)

const banner = `
 ╔═╗┌┬┐┬ ┬┌┬┐┬ ┬╔═╗┌┐┌┌─┐┌─┐
 ╚═╗ │ │ │ ││└┬┘╚═╗│││├─┤├─┘
 ╚═╝ ┴ └─┘─┴┘ ┴ ╚═╝┘└┘┴ ┴┴
`

// HomeScreen is the main landing screen of the application.
type HomeScreen struct {
	menu    components.Menu
	offline bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A nil analyzer means no provider is
// configured; the session entry is disabled and a setup hint is shown.
func New(analyzer *study.Analyzer) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "NEW STUDY SESSION",
			Disabled: analyzer == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: studyscreen.New(analyzer)}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		offline: analyzer == nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).
		Render("Turn your notes into a summary, a glossary, and a quiz."))
	sections = append(sections, "")

	menu := h.menu.View()
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	if h.offline {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render("Set GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY to get started.")))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
