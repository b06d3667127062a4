package console

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learno/internal/teaching"
	"github.com/abhisek/learno/internal/tutor"
	"github.com/abhisek/learno/internal/ui/components"
	"github.com/abhisek/learno/internal/ui/theme"
)

func (s *lessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if len(s.transcript) == 0 {
		return renderLoading(width)
	}

	var b strings.Builder

	// Conversation fills the frame from the bottom up; older turns
	// scroll out of view.
	promptHeight := 4
	convo := s.renderConversation(width)
	lines := strings.Split(strings.TrimRight(convo, "\n"), "\n")
	maxLines := height - promptHeight - 2
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	b.WriteString("  " + components.NewProgressBar("Progress", s.progressPercent(), true, width-8).View())
	b.WriteString("\n\n")
	b.WriteString(s.renderPrompt(width))

	return b.String()
}

// renderConversation renders every transcript entry, tutor and learner
// alike, wrapped to the terminal width.
func (s *lessonScreen) renderConversation(width int) string {
	var b strings.Builder
	for _, e := range s.transcript {
		if e.turn != nil {
			b.WriteString(renderTurn(e.turn, width))
		} else {
			b.WriteString(renderLearner(e.learner, width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderTurn(turn *tutor.Turn, width int) string {
	var b strings.Builder

	label := lipgloss.NewStyle().
		Foreground(speakerColor(turn.MessageType)).
		Bold(true).
		Render("  Learno")
	tag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + strings.ReplaceAll(turn.MessageType, "_", " "))
	b.WriteString(label + tag + "\n")

	body := lipgloss.NewStyle().
		Width(width - 6).
		Foreground(theme.Text).
		Render(turn.Text)
	b.WriteString(indent(body, 2))
	b.WriteString("\n")

	if turn.ImageURL != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  [picture] " + turn.ImageURL))
		b.WriteString("\n")
	}

	return b.String()
}

func renderLearner(text string, width int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  You")
	body := lipgloss.NewStyle().
		Width(width - 6).
		Foreground(theme.Text).
		Render(text)
	return label + "\n" + indent(body, 2) + "\n"
}

func (s *lessonScreen) renderPrompt(width int) string {
	switch {
	case s.waiting:
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  Learno is thinking...")
	case s.complete:
		return lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("  Press Enter to see your summary!")
	case s.pending:
		return "  " + lipgloss.NewStyle().Foreground(theme.Text).Render("Answer:") +
			" " + s.input.View()
	default:
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Press Enter to keep going")
	}
}

// progressPercent maps lesson progress onto a 0..1 bar: each finished
// concept counts, and the celebration fills it.
func (s *lessonScreen) progressPercent() float64 {
	if s.complete {
		return 1
	}
	turn := s.lastTurn()
	if turn == nil || turn.Progress.TotalConcepts == 0 {
		return 0
	}
	p := turn.Progress
	done := p.CurrentConcept - 1
	if p.LessonPhase == string(teaching.PhaseChapterReview) {
		done = p.TotalConcepts
	}
	pct := float64(done) / float64(p.TotalConcepts+1)
	if pct > 1 {
		pct = 1
	}
	return pct
}

func (s *lessonScreen) renderError(width int) string {
	followup := "Press any key to keep going."
	if s.fatal {
		followup = "Press any key to go back."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  %s", s.errMsg, followup))
}

// renderQuitConfirm renders the end-lesson confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the lesson early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You still get a summary of what you learned."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my summary"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep learning"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Starting your lesson...")
}

// speakerColor picks the tutor label color for a turn kind.
func speakerColor(messageType string) color.Color {
	switch teaching.StepKind(messageType) {
	case teaching.StepHint, teaching.StepSilenceHint:
		return theme.Accent
	case teaching.StepCelebration:
		return theme.Success
	default:
		return theme.Primary
	}
}

// indent prefixes every line of a rendered block.
func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
