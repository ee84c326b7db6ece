package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// Field panel sizing, in terminal cells.
const (
	fieldHeight   = 4 // label row, input rows, bottom border
	fieldMaxWidth = 60
	fieldMinWidth = 12
	formMargin    = 2
	formTop       = 2 // top margin and title row
)

// FormLayout stacks fields top to bottom, one panel per field.
type FormLayout struct {
	Fields []*Field
}

// Ensure FormLayout implements Layout.
var _ Layout = FormLayout{}

// Panels implements Layout.
func (l FormLayout) Panels() []Panel {
	panels := make([]Panel, 0, len(l.Fields))
	for i, f := range l.Fields {
		row := i
		panels = append(panels, Panel{
			ID:   f.Name,
			View: f,
			Bounds: func(width, height int) (int, int, int, int) {
				w := min(width-2*formMargin, fieldMaxWidth)
				w = max(w, fieldMinWidth)
				return formMargin, formTop + row*fieldHeight, w, fieldHeight
			},
		})
	}
	return panels
}

// PanelAt returns the panel under the cell (x, y) for a terminal of the given size.
func (l FormLayout) PanelAt(x, y, width, height int) (Panel, bool) {
	for _, p := range l.Panels() {
		px, py, pw, ph := p.Bounds(width, height)
		if x >= px && x < px+pw && y >= py && y < py+ph {
			return p, true
		}
	}
	return Panel{}, false
}

// FocusOrder implements Layout.
func (l FormLayout) FocusOrder() []string {
	order := make([]string, 0, len(l.Fields))
	for _, f := range l.Fields {
		order = append(order, f.Name)
	}
	return order
}
