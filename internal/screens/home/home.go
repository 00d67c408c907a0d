package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/intervu/internal/config"
	"github.com/abhisek/intervu/internal/profile"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/screens/history"
	"github.com/abhisek/intervu/internal/screens/setup"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/theme"
)

// Deps bundles the shared services handed down to child screens.
type Deps struct {
	Store       *store.Store
	Config      config.Config
	Profile     profile.Profile
	Speaker     speech.Speaker
	Transcriber speech.Transcriber
	Camera      speech.CameraSource
	Logger      zerolog.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps         Deps
	menu         components.Menu
	sessionCount int
	lastScore    int
	hasHistory   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	// Pull recent history for the stats line. Failures leave the line out.
	if deps.Store != nil {
		if entries, err := deps.Store.HistoryRepo().List(context.Background()); err == nil && len(entries) > 0 {
			h.sessionCount = len(entries)
			h.lastScore = entries[0].Score
			h.hasHistory = true
		}
	}

	items := []components.MenuItem{
		{Label: "START INTERVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(setup.Deps{
					Store:       deps.Store,
					Config:      deps.Config,
					Profile:     deps.Profile,
					Speaker:     deps.Speaker,
					Transcriber: deps.Transcriber,
					Camera:      deps.Camera,
					Logger:      deps.Logger,
				})}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(deps.Store.HistoryRepo(), deps.Store.ReplayRepo()),
				}
			}
		}, Disabled: deps.Store == nil},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
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

	sections = append(sections, theme.Title.Width(width).Render("I N T E R V U"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Mock interview practice with instant feedback"))

	if h.hasHistory {
		plural := "s"
		if h.sessionCount == 1 {
			plural = ""
		}
		stats := fmt.Sprintf("%d session%s recorded   Last score: %d",
			h.sessionCount, plural, h.lastScore)
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(stats))
	}

	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
