package floatlabel

import (
	tea "github.com/charmbracelet/bubbletea"
)

// fakeSurface records the calls it receives. Clear does not emit; tests deliver the
// follow-up change event themselves.
type fakeSurface struct {
	emit    EventFunc
	focused bool
	text    string
	width   int
	calls   []string
}

func (s *fakeSurface) Bind(emit EventFunc) { s.emit = emit }

func (s *fakeSurface) Focus() tea.Cmd {
	s.calls = append(s.calls, "focus")
	if s.focused {
		return nil
	}
	s.focused = true
	return s.send(EventFocus)
}

func (s *fakeSurface) Blur() tea.Cmd {
	s.calls = append(s.calls, "blur")
	if !s.focused {
		return nil
	}
	s.focused = false
	return s.send(EventBlur)
}

func (s *fakeSurface) Clear() tea.Cmd {
	s.calls = append(s.calls, "clear")
	s.text = ""
	return nil
}

func (s *fakeSurface) Focused() bool          { return s.focused }
func (s *fakeSurface) SetValue(v string)      { s.text = v }
func (s *fakeSurface) SetWidth(w int)         { s.width = w }
func (s *fakeSurface) Update(tea.Msg) tea.Cmd { return nil }
func (s *fakeSurface) View() string           { return s.text }

// typeText simulates the user replacing the text.
func (s *fakeSurface) typeText(text string) tea.Cmd {
	s.text = text
	return s.send(EventChange)
}

func (s *fakeSurface) send(kind EventKind) tea.Cmd {
	if s.emit == nil {
		return nil
	}
	return s.emit(Event{Kind: kind, Text: s.text})
}

// recordingAnimator jumps straight to each requested target.
type recordingAnimator struct {
	targets  []float64
	timings  []Timing
	progress float64
	stopped  bool
}

func (a *recordingAnimator) AnimateTo(target float64, t Timing) tea.Cmd {
	a.targets = append(a.targets, target)
	a.timings = append(a.timings, t)
	a.progress = target
	return nil
}

func (a *recordingAnimator) Progress() float64       { return a.progress }
func (a *recordingAnimator) Update(tea.Msg) tea.Cmd { return nil }
func (a *recordingAnimator) Stop()                   { a.stopped = true }

func newTestInput(opts Options) (*Input, *fakeSurface, *recordingAnimator) {
	anim := &recordingAnimator{}
	opts.Animator = anim
	in := New(opts)
	anim.progress = in.State().target()
	s := &fakeSurface{}
	in.Mount(s)
	return in, s, anim
}
