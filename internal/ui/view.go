package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"floatlabel/internal/floatlabel"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Field is a named floating-label input in the form.
type Field struct {
	Name  string
	Input *floatlabel.Input
	// Lowercase normalizes the value the form pushes back into a controlled input.
	Lowercase bool
}

// Ensure Field implements View.
var _ View = (*Field)(nil)

// Init implements View. It mounts the input's surface.
func (f *Field) Init() tea.Cmd {
	return f.Input.Init()
}

// Update implements View.
func (f *Field) Update(msg tea.Msg) (View, tea.Cmd) {
	return f, f.Input.Update(msg)
}

// View implements View.
func (f *Field) View() string {
	return f.Input.View()
}
