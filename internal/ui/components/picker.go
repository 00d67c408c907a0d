package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/ui/theme"
)

// Picker cycles through a fixed set of options with the left/right keys.
type Picker struct {
	Label    string
	Options  []string
	Selected int
}

// NewPicker creates a picker with the first option selected.
func NewPicker(label string, options []string) Picker {
	return Picker{Label: label, Options: options}
}

// Update handles left/right cycling. The selection wraps at both ends.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Options) == 0 {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected = (p.Selected - 1 + len(p.Options)) % len(p.Options)
	case "right", "l":
		p.Selected = (p.Selected + 1) % len(p.Options)
	}
	return p, nil
}

// Value returns the selected option, or "" when there are none.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Select moves the picker to the given option if present.
func (p *Picker) Select(option string) {
	for i, o := range p.Options {
		if o == option {
			p.Selected = i
			return
		}
	}
}

// View renders the picker, highlighted when active.
func (p Picker) View(active bool) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label)
	value := p.Value()

	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if active {
		valStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	rendered := valStyle.Render(value)
	if active {
		rendered = lipgloss.NewStyle().Foreground(theme.TextDim).Render("◂ ") +
			rendered +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(" ▸")
	}

	return fmt.Sprintf("%s  %s", label, rendered)
}
