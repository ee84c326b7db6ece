package floatlabel

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNotMounted is returned by the imperative methods before a surface is mounted.
var ErrNotMounted = errors.New("input surface not mounted")

const tracerName = "floatlabel"

// Input is a floating-label text input.
type Input struct {
	opts       Options
	surface    Surface
	animator   Animator
	tracer     trace.Tracer
	value      string
	controlled bool
	state      ActivationState
	width      int
	hasWidth   bool
}

// New creates an unmounted Input. The activation state starts Active when the initial
// value is non-empty; no animation is requested for it.
func New(opts Options) *Input {
	opts = opts.withDefaults()
	value := opts.DefaultValue
	if opts.Value != nil && *opts.Value != "" {
		value = *opts.Value
	}
	in := &Input{
		opts:       opts,
		value:      value,
		controlled: opts.Value != nil,
		state:      stateFor(value),
		animator:   opts.Animator,
		tracer:     opts.Tracer,
	}
	if in.animator == nil {
		in.animator = NewDriver(in.state.target())
	}
	if in.tracer == nil {
		in.tracer = otel.Tracer(tracerName)
	}
	return in
}

// Init mounts a TextSurface when nothing is mounted yet.
func (in *Input) Init() tea.Cmd {
	if in.surface != nil {
		return nil
	}
	return in.Mount(NewTextSurface(in.value))
}

// Mount attaches the surface and starts listening to its events. An animation
// abandoned by Unmount is resumed toward the current state's target.
func (in *Input) Mount(s Surface) tea.Cmd {
	in.surface = s
	s.Bind(in.handle)
	s.SetValue(in.value)
	if in.hasWidth {
		s.SetWidth(in.innerWidth())
	}
	if target := in.state.target(); in.animator.Progress() != target {
		return in.animator.AnimateTo(target, in.opts.timing())
	}
	return nil
}

// Unmount detaches the surface. Any running animation is abandoned.
func (in *Input) Unmount() {
	if in.surface != nil {
		in.surface.Bind(nil)
	}
	in.surface = nil
	in.animator.Stop()
}

// Mounted reports whether a surface is attached.
func (in *Input) Mounted() bool {
	return in.surface != nil
}

// Label returns the configured label text.
func (in *Input) Label() string {
	return in.opts.Label
}

// Value returns the stored value. For a controlled input it is advisory until the
// owner's next SetValue.
func (in *Input) Value() string {
	return in.value
}

// Controlled reports whether the owner supplies the value.
func (in *Input) Controlled() bool {
	return in.controlled
}

// State returns the activation state.
func (in *Input) State() ActivationState {
	return in.state
}

// Progress returns the live animation progress, 0 for Inactive and 1 for Active.
func (in *Input) Progress() float64 {
	return in.animator.Progress()
}

// Width returns the last measured layout width.
func (in *Input) Width() (int, bool) {
	return in.width, in.hasWidth
}

// SetValue applies a value supplied by the owner. While the surface is focused the
// value is stored but the activation state is left alone, so an owner update never
// fights the user's own focus transition.
func (in *Input) SetValue(v string) tea.Cmd {
	if v == in.value {
		return nil
	}
	in.value = v
	if in.surface != nil {
		in.surface.SetValue(v)
		if in.surface.Focused() {
			return nil
		}
	}
	return in.transition("value", stateFor(v))
}

// Layout records a width measurement from the host layout.
func (in *Input) Layout(width int) {
	if in.hasWidth && in.width == width {
		return
	}
	in.width = width
	in.hasWidth = true
	if in.surface != nil {
		in.surface.SetWidth(in.innerWidth())
	}
}

// Focus requests focus on the surface. It does nothing when Editable is false.
func (in *Input) Focus() (tea.Cmd, error) {
	if in.surface == nil {
		return nil, in.notMounted("focus")
	}
	if !in.opts.editable() {
		return nil, nil
	}
	return in.surface.Focus(), nil
}

// Blur requests blur on the surface.
func (in *Input) Blur() (tea.Cmd, error) {
	if in.surface == nil {
		return nil, in.notMounted("blur")
	}
	return in.surface.Blur(), nil
}

// Clear asks the surface to drop its text. The stored value follows from the change
// event the surface emits.
func (in *Input) Clear() (tea.Cmd, error) {
	if in.surface == nil {
		return nil, in.notMounted("clear")
	}
	return in.surface.Clear(), nil
}

// IsFocused returns the surface's focus state.
func (in *Input) IsFocused() (bool, error) {
	if in.surface == nil {
		return false, in.notMounted("isFocused")
	}
	return in.surface.Focused(), nil
}

// Update routes animation frames to the animator, size changes to Layout and
// everything else to the surface.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		return in.animator.Update(msg)
	case tea.WindowSizeMsg:
		in.Layout(msg.Width)
		return nil
	}
	if in.surface == nil {
		return nil
	}
	return in.surface.Update(msg)
}

// handle is the surface's event sink.
func (in *Input) handle(ev Event) tea.Cmd {
	var cmd tea.Cmd
	switch ev.Kind {
	case EventFocus:
		cmd = in.transition("focus", Active)
		if in.opts.OnFocus != nil {
			in.opts.OnFocus(ev)
		}
	case EventBlur:
		if in.value == "" {
			cmd = in.transition("blur", Inactive)
		}
		if in.opts.OnBlur != nil {
			in.opts.OnBlur(ev)
		}
	case EventChange:
		in.value = ev.Text
		if in.opts.OnChange != nil {
			in.opts.OnChange(ev)
		}
	}
	return cmd
}

// transition moves to next and requests the matching animation target. Requesting the
// current state again issues nothing.
func (in *Input) transition(trigger string, next ActivationState) tea.Cmd {
	if next == in.state {
		return nil
	}
	in.state = next
	target := next.target()
	_, span := in.tracer.Start(context.Background(), "floatlabel.animate",
		trace.WithAttributes(
			attribute.String("floatlabel.label", in.opts.Label),
			attribute.String("floatlabel.trigger", trigger),
			attribute.Float64("floatlabel.target", target),
		))
	defer span.End()
	return in.animator.AnimateTo(target, in.opts.timing())
}

func (in *Input) notMounted(op string) error {
	log.Printf("floatlabel: %s on %q before mount", op, in.opts.Label)
	return fmt.Errorf("%s %q: %w", op, in.opts.Label, ErrNotMounted)
}
