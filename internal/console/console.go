// Package console is an interactive terminal client for Learno. It
// drives the same tutor orchestrator as the HTTP server, in process,
// so a lesson can be played end to end without a frontend: pick a
// lesson, read each teaching step, type answers, get hints, and finish
// on the summary screen.
package console

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/router"
	"github.com/abhisek/learno/internal/screen"
	"github.com/abhisek/learno/internal/tutor"
	"github.com/abhisek/learno/internal/ui/layout"
)

// Options carries the dependencies a console run needs.
type Options struct {
	Tutor   *tutor.Tutor
	Catalog *content.Catalog

	// SilenceAfter is how long the console waits at an unanswered
	// question before asking the tutor for a nudge. Zero disables
	// silence nudges.
	SilenceAfter time.Duration
}

// Model is the Bubble Tea root: it owns the screen router and the
// window size and delegates everything else to the active screen.
type Model struct {
	router *router.Router
	width  int
	height int
}

// NewModel creates the root model starting on the welcome screen.
func NewModel(opts Options) Model {
	return Model{
		router: router.New(newWelcomeScreen(opts)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is screen-local (the lesson screen uses it for its quit
		// confirmation), so only ctrl+c is handled here.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
