package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/ui/theme"
)

// ScoreBar displays a labeled 0-100 score as a horizontal bar.
type ScoreBar struct {
	Label string
	Score int
	Width int
}

// NewScoreBar creates a score bar. Scores outside 0-100 are clamped.
func NewScoreBar(label string, score, width int) ScoreBar {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the bar as "Label  [####----]  87".
func (s ScoreBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label)

	barWidth := s.Width - lipgloss.Width(label) - 8
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * s.Score / 100
	empty := barWidth - filled

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", empty))

	value := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d", s.Score))

	return label + "  " + bar + value
}
