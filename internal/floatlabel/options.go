package floatlabel

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"
)

// Defaults for Options fields left unset. A size or duration set to zero is kept.
const (
	DefaultBorderColor       = "#7A7593"
	DefaultLabelHeight       = 24
	DefaultInputPadding      = 16
	DefaultHeight            = 48
	DefaultAnimationDuration = 200 * time.Millisecond
)

// Options configures an Input. Sizes are in layout units; the terminal renderer maps
// them to cells.
type Options struct {
	Label        string
	BorderColor  string // hex, e.g. "#7A7593"
	LabelHeight  *int
	InputPadding *int
	Height       *int

	// AnimationDuration of zero makes every transition instant.
	AnimationDuration *time.Duration
	Easing            Curve // nil means linear
	UseNativeDriver   bool  // passed to the Animator as Timing.Accelerated

	// Value makes the input controlled: the owner supplies every value through SetValue.
	Value *string
	// DefaultValue seeds an uncontrolled input.
	DefaultValue string
	// Editable gates Focus. Only an explicit false disables it.
	Editable *bool

	InputStyle lipgloss.Style
	LabelStyle lipgloss.Style
	Style      lipgloss.Style

	// Callbacks run after internal handling and receive the surface's event.
	OnChange func(Event)
	OnFocus  func(Event)
	OnBlur   func(Event)

	// Animator overrides the default Driver.
	Animator Animator
	// Tracer overrides the global "floatlabel" tracer.
	Tracer trace.Tracer
}

// Bool returns a pointer to b, for Options.Editable.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for Options.Value.
func String(s string) *string { return &s }

// Int returns a pointer to n, for the size fields of Options.
func Int(n int) *int { return &n }

// Duration returns a pointer to d, for Options.AnimationDuration.
func Duration(d time.Duration) *time.Duration { return &d }

func (o Options) withDefaults() Options {
	if o.BorderColor == "" {
		o.BorderColor = DefaultBorderColor
	}
	if o.LabelHeight == nil {
		o.LabelHeight = Int(DefaultLabelHeight)
	}
	if o.InputPadding == nil {
		o.InputPadding = Int(DefaultInputPadding)
	}
	if o.Height == nil {
		o.Height = Int(DefaultHeight)
	}
	if o.AnimationDuration == nil {
		o.AnimationDuration = Duration(DefaultAnimationDuration)
	}
	return o
}

func (o Options) labelHeight() int  { return valueOr(o.LabelHeight, DefaultLabelHeight) }
func (o Options) inputPadding() int { return valueOr(o.InputPadding, DefaultInputPadding) }
func (o Options) height() int       { return valueOr(o.Height, DefaultHeight) }

func (o Options) duration() time.Duration {
	return valueOr(o.AnimationDuration, DefaultAnimationDuration)
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func (o Options) editable() bool {
	return o.Editable == nil || *o.Editable
}

func (o Options) timing() Timing {
	return Timing{
		Duration:    o.duration(),
		Easing:      o.Easing,
		Accelerated: o.UseNativeDriver,
	}
}
