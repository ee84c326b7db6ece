package floatlabel

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EventKind identifies what a surface reported.
type EventKind int

const (
	EventChange EventKind = iota
	EventFocus
	EventBlur
)

func (k EventKind) String() string {
	switch k {
	case EventChange:
		return "change"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// Event is the payload a surface emits. Text is the surface's text at the time of the
// event.
type Event struct {
	Kind EventKind
	Text string
	At   time.Time
}

// EventFunc receives surface events and returns any follow-up command.
type EventFunc func(Event) tea.Cmd

// Surface is the text-entry control an Input drives.
//
// Focus, Blur, Clear and Update report what happened through the EventFunc installed
// by Bind, synchronously, and return the batched commands. SetValue is an owner push
// and emits nothing.
type Surface interface {
	Bind(emit EventFunc)
	Focus() tea.Cmd
	Blur() tea.Cmd
	Clear() tea.Cmd
	Focused() bool
	SetValue(v string)
	SetWidth(w int)
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// TextSurface adapts bubbles/textinput to Surface.
type TextSurface struct {
	Model textinput.Model
	emit  EventFunc
}

var _ Surface = (*TextSurface)(nil)

// NewTextSurface creates a surface holding value.
func NewTextSurface(value string) *TextSurface {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(value)
	return &TextSurface{Model: ti}
}

// Bind implements Surface.
func (s *TextSurface) Bind(emit EventFunc) {
	s.emit = emit
}

// Focus implements Surface. Focusing a focused surface emits nothing.
func (s *TextSurface) Focus() tea.Cmd {
	if s.Model.Focused() {
		return nil
	}
	cmd := s.Model.Focus()
	return tea.Batch(cmd, s.fire(EventFocus))
}

// Blur implements Surface.
func (s *TextSurface) Blur() tea.Cmd {
	if !s.Model.Focused() {
		return nil
	}
	s.Model.Blur()
	return s.fire(EventBlur)
}

// Clear implements Surface. The change event only fires when there was text.
func (s *TextSurface) Clear() tea.Cmd {
	if s.Model.Value() == "" {
		return nil
	}
	s.Model.Reset()
	return s.fire(EventChange)
}

// Focused implements Surface.
func (s *TextSurface) Focused() bool {
	return s.Model.Focused()
}

// SetValue implements Surface.
func (s *TextSurface) SetValue(v string) {
	s.Model.SetValue(v)
}

// SetWidth implements Surface.
func (s *TextSurface) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	s.Model.Width = w
}

// Update implements Surface.
func (s *TextSurface) Update(msg tea.Msg) tea.Cmd {
	before := s.Model.Value()
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	if s.Model.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, s.fire(EventChange))
}

// View implements Surface.
func (s *TextSurface) View() string {
	return s.Model.View()
}

func (s *TextSurface) fire(kind EventKind) tea.Cmd {
	if s.emit == nil {
		return nil
	}
	return s.emit(Event{Kind: kind, Text: s.Model.Value(), At: time.Now()})
}
