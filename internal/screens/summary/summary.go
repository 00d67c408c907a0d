package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

// SummaryScreen displays the end-of-session report.
type SummaryScreen struct {
	summ  interview.Summary
	state interview.State
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summ interview.Summary, state interview.State) *SummaryScreen {
	return &SummaryScreen{summ: summ, state: state}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summ
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Interview complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	meta := fmt.Sprintf("%s · %d of %d questions answered · %d:%02d",
		s.state.Mode.DisplayName(), sum.Answered, sum.TotalQuestions, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(meta))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Overall readiness: %d / 100", sum.Overall)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	bars := strings.Join([]string{
		components.NewScoreBar("Communication", sum.Communication, barWidth).View(),
		components.NewScoreBar("Reasoning    ", sum.Reasoning, barWidth).View(),
		components.NewScoreBar("Readiness    ", sum.Readiness, barWidth).View(),
	}, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bars))
	b.WriteString("\n\n")

	b.WriteString(renderList(width, "Strong moments", sum.StrongMoments, theme.Success))
	b.WriteString(renderList(width, "Hesitation points", sum.HesitationPoints, theme.Accent))
	b.WriteString(renderList(width, "Missed opportunities", sum.MissedOpportunities, theme.Secondary))

	return b.String()
}

func renderList(width int, heading string, items []string, c color.Color) string {
	if len(items) == 0 {
		return ""
	}
	inner := min(width-8, 66)
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(c).Bold(true).Render(heading)))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render("  "+item)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
