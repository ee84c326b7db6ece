package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SummaryModal lists the field values before submit.
// Enter or y confirms; Esc goes back to the form.
type SummaryModal struct {
	Names  []string
	Values map[string]string
}

// Ensure SummaryModal implements View.
var _ View = (*SummaryModal)(nil)

// NewSummaryModal creates a summary of values in the given field order.
func NewSummaryModal(names []string, values map[string]string) *SummaryModal {
	return &SummaryModal{Names: names, Values: values}
}

// Init implements View.
func (m *SummaryModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *SummaryModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			values := m.Values
			return m, func() tea.Msg { return SubmitMsg{Values: values} }
		}
	}
	return m, nil
}

// View implements View.
func (m *SummaryModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Submit?"))
	b.WriteString("\n\n")
	for _, name := range m.Names {
		b.WriteString(Styles.Key.Render(name))
		b.WriteString(": ")
		if v := m.Values[name]; v != "" {
			b.WriteString(Styles.Value.Render(v))
		} else {
			b.WriteString(Styles.Empty.Render("(empty)"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("y/Enter: submit  Esc: back"))
	return Styles.Box.Render(b.String())
}
