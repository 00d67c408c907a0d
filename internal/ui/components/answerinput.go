package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textarea for typing multi-line answers.
type AnswerInput struct {
	Model textarea.Model
}

// NewAnswerInput creates a focused multi-line input.
func NewAnswerInput(placeholder string, width, height int) AnswerInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerInput{Model: ta}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the current input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// SetValue replaces the input text, placing the cursor at the end.
func (a *AnswerInput) SetValue(text string) {
	a.Model.SetValue(text)
}

// Reset clears the input.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
}

// Resize adjusts the input to the available area.
func (a *AnswerInput) Resize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}
