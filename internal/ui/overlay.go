package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlays is the stack of modal views drawn over the form. The last one pushed
// receives input and is the only one drawn.
type Overlays []View

// Push opens v above the form and any open overlay.
func (o *Overlays) Push(v View) {
	*o = append(*o, v)
}

// Pop closes the top overlay. It does nothing when none is open.
func (o *Overlays) Pop() {
	if n := len(*o); n > 0 {
		*o = (*o)[:n-1]
	}
}

// Top returns the overlay that receives input.
func (o Overlays) Top() (View, bool) {
	if len(o) == 0 {
		return nil, false
	}
	return o[len(o)-1], true
}

// Route hands msg to the top overlay and keeps the view it returns. It reports
// false when no overlay is open, leaving msg to the form.
func (o Overlays) Route(msg tea.Msg) (tea.Cmd, bool) {
	n := len(o)
	if n == 0 {
		return nil, false
	}
	v, cmd := o[n-1].Update(msg)
	o[n-1] = v
	return cmd, true
}
