package console

import (
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

// welcomeScreen asks for the learner's name and which lesson to start.
type welcomeScreen struct {
	opts Options

	name      components.TextInput
	menu      components.Menu
	focusMenu bool
}

var _ screen.Screen = (*welcomeScreen)(nil)
var _ screen.KeyHintProvider = (*welcomeScreen)(nil)

func newWelcomeScreen(opts Options) *welcomeScreen {
	s := &welcomeScreen{
		opts: opts,
		name: components.NewTextInput("Your name...", 50),
	}

	items := make([]components.MenuItem, 0, len(opts.Catalog.Topics()))
	for _, topic := range opts.Catalog.Topics() {
		topic := topic
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(topic),
			Action: func() tea.Cmd { return s.startLesson(topic) },
		})
	}
	s.menu = components.NewMenu(items)

	return s
}

func (s *welcomeScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *welcomeScreen) Title() string {
	return "Welcome"
}

func (s *welcomeScreen) KeyHints() []layout.KeyHint {
	if s.focusMenu {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose lesson"},
			{Key: "Enter", Description: "Start"},
			{Key: "Tab", Description: "Edit name"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Pick a lesson"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *welcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if !s.focusMenu {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		if s.focusMenu {
			s.focusMenu = false
			return s, s.name.Focus()
		}
		s.focusMenu = true
		s.name.Blur()
		return s, nil

	case "enter", "down":
		if !s.focusMenu {
			s.focusMenu = true
			s.name.Blur()
			return s, nil
		}
	}

	if s.focusMenu {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return s, cmd
}

// startLesson moves to the lesson screen for the chosen topic.
func (s *welcomeScreen) startLesson(topic string) tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		name = "Student"
	}

	req := tutor.StartRequest{
		StudentID:   "console",
		StudentName: name,
		Grade:       2,
		Subject:     "math",
		Lesson:      topic,
	}

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: newLessonScreen(s.opts, req)}
	}
}

func (s *welcomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome to Learno!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your friendly counting teacher"))
	b.WriteString("\n\n")

	nameLabel := "What's your name?"
	if !s.focusMenu {
		nameLabel = "▸ " + nameLabel
	} else {
		nameLabel = "  " + nameLabel
	}
	nameLine := lipgloss.NewStyle().Foreground(theme.Text).Render(nameLabel) +
		"  " + s.name.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, nameLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a lesson"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
