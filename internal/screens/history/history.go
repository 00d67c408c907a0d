package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []store.HistoryEntry
	Replays map[string]store.SessionReplay // replay ID → replay
	Order   []string                       // replay IDs newest first
	Err     error
}

// HistoryScreen displays past sessions with expandable replay details.
type HistoryScreen struct {
	historyRepo store.HistoryRepo
	replayRepo  store.ReplayRepo

	entries  []store.HistoryEntry
	replays  map[string]store.SessionReplay
	order    []string
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(historyRepo store.HistoryRepo, replayRepo store.ReplayRepo) *HistoryScreen {
	return &HistoryScreen{
		historyRepo: historyRepo,
		replayRepo:  replayRepo,
		expanded:    make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		entries, err := s.historyRepo.List(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		replays, err := s.replayRepo.List(ctx)
		if err != nil {
			return historyLoadedMsg{Entries: entries, Replays: map[string]store.SessionReplay{}}
		}

		byID := make(map[string]store.SessionReplay, len(replays))
		order := make([]string, 0, len(replays))
		for _, r := range replays {
			byID[r.ID] = r
			order = append(order, r.ID)
		}
		return historyLoadedMsg{Entries: entries, Replays: byID, Order: order}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
			s.replays = msg.Replays
			s.order = msg.Order
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		dateStr := e.Date.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s  overall %3d   C %3d  R %3d  P %3d",
			prefix, dateStr, e.Mode, e.Score, e.Communication, e.Reasoning, e.Readiness)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(i, width))
		}
	}

	return b.String()
}

// renderDetails shows the replay for an entry. History rows and replays
// are appended together, so the same position in both newest-first lists
// refers to the same session.
func (s *HistoryScreen) renderDetails(i, width int) string {
	if i >= len(s.order) {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No replay stored for this session")) + "\n"
	}
	replay := s.replays[s.order[i]]

	inner := width - 16
	if inner > 64 {
		inner = 64
	}

	var b strings.Builder
	role := replay.Role
	if role == "" {
		role = "(unspecified role)"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("    %s · %s", role, replay.Industry))))
	b.WriteString("\n")

	for qi, q := range replay.Questions {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(inner).Foreground(theme.Secondary).
				Render(fmt.Sprintf("Q%d: %s", qi+1, q))))
		b.WriteString("\n")
		if qi < len(replay.Answers) {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(inner).Foreground(theme.Text).
					Render("A: "+replay.Answers[qi])))
			b.WriteString("\n")
		}
		if qi < len(replay.Feedback) && replay.Feedback[qi] != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(inner).Foreground(theme.TextDim).Italic(true).
					Render(replay.Feedback[qi])))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}
