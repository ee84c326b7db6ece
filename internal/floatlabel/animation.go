package floatlabel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timing is the configuration handed to an Animator with each request.
type Timing struct {
	Duration    time.Duration
	Easing      Curve
	Accelerated bool
}

// Animator moves a progress value toward a target over time.
//
// AnimateTo starts (or retargets) an animation and returns the command that drives it.
// Requests are fire and forget: the caller never waits for completion. Update receives
// the animator's own frame messages.
type Animator interface {
	AnimateTo(target float64, t Timing) tea.Cmd
	Progress() float64
	Update(msg tea.Msg) tea.Cmd
	Stop()
}

var lastDriverID int64

func nextDriverID() int {
	return int(atomic.AddInt64(&lastDriverID, 1))
}

// FrameMsg advances a Driver by one frame.
type FrameMsg struct {
	ID  int
	At  time.Time
	gen int
}

const (
	frameInterval            = time.Second / 60
	acceleratedFrameInterval = time.Second / 120
)

// Driver is the default Animator. It schedules frames with tea.Tick and interpolates
// from the value at the time of the request to the target. A new request interrupts
// the running one; frames scheduled for the interrupted animation are dropped.
type Driver struct {
	id      int
	gen     int
	value   float64
	start   float64
	target  float64
	began   time.Time
	timing  Timing
	running bool

	now func() time.Time
}

var _ Animator = (*Driver)(nil)

// NewDriver creates a driver resting at initial.
func NewDriver(initial float64) *Driver {
	return &Driver{
		id:     nextDriverID(),
		value:  initial,
		target: initial,
		now:    time.Now,
	}
}

// ID identifies the frames that belong to this driver.
func (d *Driver) ID() int {
	return d.id
}

// Progress returns the current interpolated value.
func (d *Driver) Progress() float64 {
	return d.value
}

// Target returns the value the driver is moving toward (or resting at).
func (d *Driver) Target() float64 {
	return d.target
}

// Animating reports whether frames are still being scheduled.
func (d *Driver) Animating() bool {
	return d.running
}

// AnimateTo implements Animator.
func (d *Driver) AnimateTo(target float64, t Timing) tea.Cmd {
	d.gen++
	d.start = d.value
	d.target = target
	d.timing = t
	d.began = d.now()
	if t.Duration <= 0 {
		d.value = target
		d.running = false
		return nil
	}
	d.running = true
	return d.frame()
}

// Update implements Animator.
func (d *Driver) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.ID != d.id || f.gen != d.gen || !d.running {
		return nil
	}
	d.step(f.At)
	if !d.running {
		return nil
	}
	return d.frame()
}

// Stop freezes the driver at its current value. Pending frames lapse.
func (d *Driver) Stop() {
	d.gen++
	d.running = false
}

func (d *Driver) step(at time.Time) {
	p := float64(at.Sub(d.began)) / float64(d.timing.Duration)
	if p < 0 {
		p = 0
	}
	if p >= 1 {
		d.value = d.target
		d.running = false
		return
	}
	eased := p
	if d.timing.Easing != nil {
		eased = d.timing.Easing(p)
	}
	d.value = d.start + (d.target-d.start)*eased
}

func (d *Driver) frame() tea.Cmd {
	id, gen := d.id, d.gen
	interval := frameInterval
	if d.timing.Accelerated {
		interval = acceleratedFrameInterval
	}
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return FrameMsg{ID: id, At: at, gen: gen}
	})
}
