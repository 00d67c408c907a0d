package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextField wraps bubbles/textinput for short single-line entries.
type TextField struct {
	Model textinput.Model
}

// NewTextField creates a focused single-line input.
func NewTextField(placeholder string, charLimit int) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextField{Model: ti}
}

func (t TextField) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextField) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextField) Value() string {
	return t.Model.Value()
}
