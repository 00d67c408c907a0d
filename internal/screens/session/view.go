package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmEnd {
		return renderEndConfirm(width)
	}
	if s.state.Paused {
		return renderPaused(width)
	}

	switch s.state.Phase {
	case interview.PhaseFeedback:
		return s.renderFeedback(width)
	case interview.PhaseFollowUp:
		return s.renderFollowUp(width)
	default:
		return s.renderQuestion(width)
	}
}

// renderQuestion shows the active question and the answer input.
func (s *SessionScreen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.state.Index+1, len(s.state.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d", s.state.Answered()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true).
		Render(s.state.CurrentQuestion())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	if s.recording || s.camera != nil {
		var label string
		if s.recording {
			label = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("● REC")
		}
		if s.camera != nil {
			if label != "" {
				label += "  "
			}
			label += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("● CAM")
		}
		if s.recording && s.partial != "" {
			label += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + s.partial)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, label))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

// renderFeedback shows the evaluation of the current answer plus the
// follow-up question.
func (s *SessionScreen) renderFeedback(width int) string {
	turn := s.state.CurrentTurn()
	if turn == nil {
		return s.renderQuestion(width)
	}

	inner := min(width-8, 70)
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Feedback")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(turn.Feedback.Feedback)))
	b.WriteString("\n\n")

	for _, st := range turn.Feedback.Strengths {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(inner).Render(
				theme.Strength.Render("✓ ")+
					lipgloss.NewStyle().Foreground(theme.Text).Render(st))))
		b.WriteString("\n")
	}
	for _, im := range turn.Feedback.Improvements {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(inner).Render(
				theme.Improvement.Render("→ ")+
					lipgloss.NewStyle().Foreground(theme.Text).Render(im))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	empathetic := fmt.Sprintf("%s %s", turn.Feedback.ToneGlyph, turn.Feedback.EmpatheticMessage)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(inner).Foreground(theme.TextDim).Italic(true).Render(empathetic)))
	b.WriteString("\n\n")

	barWidth := min(inner, 50)
	bars := strings.Join([]string{
		components.NewScoreBar("Communication", turn.Scores.Communication, barWidth).View(),
		components.NewScoreBar("Reasoning    ", turn.Scores.Reasoning, barWidth).View(),
		components.NewScoreBar("Readiness    ", turn.Scores.Readiness, barWidth).View(),
	}, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bars))
	b.WriteString("\n\n")

	if turn.FollowUp != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Follow-up")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(turn.FollowUp)))
		b.WriteString("\n")
		if turn.FollowUpAnswer != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(inner).Foreground(theme.TextDim).Render(
					"You: "+turn.FollowUpAnswer)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderFollowUp shows the follow-up question with the input active.
func (s *SessionScreen) renderFollowUp(width int) string {
	turn := s.state.CurrentTurn()
	if turn == nil {
		return s.renderQuestion(width)
	}

	inner := min(width-8, 70)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Follow-up")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Bold(true).Render(turn.FollowUp)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func renderPaused(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Paused"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Take a breath. Press Ctrl+P to resume."))
	return b.String()
}

func renderEndConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the interview?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers so far will be scored and saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, wrap up"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
