package floatlabel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Border thickness in layout units at progress 0 and 1.
const (
	inactiveBorderWidth = 6
	activeBorderWidth   = 1
)

// Layout units per terminal cell, horizontally and vertically.
const (
	unitsPerColumn = 8
	unitsPerRow    = 24
)

// Frame holds the style values derived from the animation progress for one render.
type Frame struct {
	Progress    float64
	LabelOffset float64 // label distance from the top edge, in layout units
	BorderWidth float64
	BorderColor string // hex
}

// Floating reports whether the label sits on the top border.
func (f Frame) Floating(opts Options) bool {
	return f.LabelOffset < float64(opts.labelHeight()+opts.inputPadding())/2
}

// Frame reads the live progress and interpolates the style values from it.
func (in *Input) Frame() Frame {
	p := in.animator.Progress()
	return Frame{
		Progress:    p,
		LabelOffset: lerp(float64(in.opts.labelHeight()+in.opts.inputPadding()), 1, p),
		BorderWidth: lerp(inactiveBorderWidth, activeBorderWidth, p),
		BorderColor: blendBorder(in.opts.BorderColor, p),
	}
}

// View renders the input box with its label.
func (in *Input) View() string {
	f := in.Frame()
	border := lipgloss.NormalBorder()
	if f.BorderWidth > (inactiveBorderWidth+activeBorderWidth)/2.0 {
		border = lipgloss.ThickBorder()
	}
	color := lipgloss.Color(f.BorderColor)

	body := ""
	if in.surface != nil {
		body = in.opts.InputStyle.Render(in.surface.View())
	}
	label := in.opts.LabelStyle.Render(in.opts.Label)

	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Padding(0, cells(in.opts.inputPadding(), unitsPerColumn)).
		Height(cells(in.opts.height(), unitsPerRow))
	if in.hasWidth {
		box = box.Width(max(in.width-2, 1))
	}

	if !f.Floating(in.opts) {
		return in.opts.Style.Render(box.Render(label + "\n" + body))
	}
	rendered := box.BorderTop(false).Render(body)
	top := topBorder(border, lipgloss.Width(rendered), label, color)
	return in.opts.Style.Render(top + "\n" + rendered)
}

// innerWidth is the text width left inside the border and padding.
func (in *Input) innerWidth() int {
	return in.width - 2 - 2*cells(in.opts.inputPadding(), unitsPerColumn)
}

// topBorder draws the top edge with the label set into it.
func topBorder(b lipgloss.Border, width int, label string, color lipgloss.Color) string {
	paint := lipgloss.NewStyle().Foreground(color)
	left := b.TopLeft + b.Top + " "
	right := b.TopRight
	fill := width - lipgloss.Width(left) - lipgloss.Width(label) - 1 - lipgloss.Width(right)
	if fill < 0 {
		fill = 0
	}
	return paint.Render(left) + label + paint.Render(" "+strings.Repeat(b.Top, fill)+right)
}

// blendBorder fades from a washed-out border color at p=0 to the full color at p=1.
func blendBorder(hex string, p float64) string {
	full, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	muted := full.BlendLab(white, 0.45)
	return muted.BlendLab(full, clamp01(p)).Clamped().Hex()
}

func cells(units, perCell int) int {
	return max(int(math.Round(float64(units)/float64(perCell))), 0)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
