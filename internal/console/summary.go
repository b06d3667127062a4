package console

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learno/internal/router"
	"github.com/abhisek/learno/internal/screen"
	"github.com/abhisek/learno/internal/tutor"
	"github.com/abhisek/learno/internal/ui/components"
	"github.com/abhisek/learno/internal/ui/layout"
	"github.com/abhisek/learno/internal/ui/theme"
)

// summaryScreen shows how the lesson went and offers another round.
type summaryScreen struct {
	opts    Options
	summary *tutor.Summary
	buttons []components.Button
}

var _ screen.Screen = (*summaryScreen)(nil)
var _ screen.KeyHintProvider = (*summaryScreen)(nil)

func newSummaryScreen(opts Options, summary *tutor.Summary) *summaryScreen {
	s := &summaryScreen{opts: opts, summary: summary}
	s.buttons = []components.Button{
		components.NewButton("NEW LESSON", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
		components.NewButton("ALL DONE", false, func() tea.Cmd {
			return tea.Quit
		}),
	}
	return s
}

func (s *summaryScreen) Init() tea.Cmd {
	return nil
}

func (s *summaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *summaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *summaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "right", "l", "tab":
		for i := range s.buttons {
			s.buttons[i].Active = !s.buttons[i].Active
		}
		return s, nil

	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		for i := range s.buttons {
			if s.buttons[i].Active {
				var cmd tea.Cmd
				s.buttons[i], cmd = s.buttons[i].Update(msg)
				return s, cmd
			}
		}
	}

	return s, nil
}

func (s *summaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(sum.Message))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Correct: %d        To practice: %d", sum.TotalCorrect, sum.TotalWrong)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	total := s.opts.Catalog.DefaultChapter().TotalConcepts()
	pct := 0.0
	if total > 0 {
		pct = float64(sum.ConceptsCompleted) / float64(total)
	}
	label := fmt.Sprintf("Concepts %d/%d", sum.ConceptsCompleted, total)
	bar := components.NewProgressBar(label, pct, false, min(width-20, 50)).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	b.WriteString("\n\n")

	if sum.IsComplete {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("⭐ Whole chapter finished! ⭐"))
		b.WriteString("\n\n")
	}

	row := s.buttons[0].View() + "    " + s.buttons[1].View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
