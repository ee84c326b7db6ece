package ui

import tea "github.com/charmbracelet/bubbletea"

// FocusManager tracks and rotates focus across fields.
// Current is "" when nothing is focused.
type FocusManager struct {
	Current  string   // ID of the currently focused field
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string) tea.Cmd
}

// Next moves focus to the next field in order, wrapping around.
// From no focus it goes to the first field.
func (f *FocusManager) Next() tea.Cmd {
	if len(f.Order) == 0 {
		return nil
	}
	idx := f.index()
	return f.move(f.Order[(idx+1)%len(f.Order)])
}

// Prev moves focus to the previous field in order, wrapping around.
// From no focus it goes to the last field.
func (f *FocusManager) Prev() tea.Cmd {
	if len(f.Order) == 0 {
		return nil
	}
	idx := f.index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	return f.move(f.Order[idx])
}

// SetFocus sets focus to the given ID.
// Returns false if the ID is not in order.
func (f *FocusManager) SetFocus(id string) (tea.Cmd, bool) {
	for _, o := range f.Order {
		if o == id {
			return f.move(id), true
		}
	}
	return nil, false
}

// Clear drops focus from every field.
func (f *FocusManager) Clear() tea.Cmd {
	return f.move("")
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) tea.Cmd {
	from := f.Current
	f.Current = to
	if f.OnChange == nil || from == to {
		return nil
	}
	return f.OnChange(from, to)
}
