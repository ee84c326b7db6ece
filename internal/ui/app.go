package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"floatlabel/internal/config"
	"floatlabel/internal/floatlabel"
)

// FormModel is the root model: a column of floating-label fields with a summary
// overlay. Controlled fields report edits through OnChange; the form applies them
// with SetValue once the input has finished handling the event.
type FormModel struct {
	Title     string
	Fields    []*Field
	Layout    FormLayout
	Focus     *FocusManager
	Overlays  Overlays
	Keys      KeyMap
	Submitted map[string]string // set when the user confirms the summary

	help    help.Model
	width   int
	height  int
	pending map[string]string // controlled values reported since the last update
}

// NewFormModel builds the form described by cfg.
func NewFormModel(cfg config.Config) (*FormModel, error) {
	m := &FormModel{
		Title:   "Sign up",
		Keys:    DefaultKeyMap(),
		help:    newHelp(),
		pending: make(map[string]string),
	}
	for _, fc := range cfg.Fields {
		opts, err := cfg.Options(fc)
		if err != nil {
			return nil, err
		}
		opts.LabelStyle = Styles.Label
		opts.InputStyle = Styles.Input
		if fc.Controlled() {
			name := fc.Name
			opts.OnChange = func(ev floatlabel.Event) {
				m.pending[name] = ev.Text
			}
		}
		m.Fields = append(m.Fields, &Field{
			Name:      fc.Name,
			Input:     floatlabel.New(opts),
			Lowercase: fc.Lowercase,
		})
	}
	m.Layout = FormLayout{Fields: m.Fields}
	m.Focus = &FocusManager{
		Order:    m.Layout.FocusOrder(),
		OnChange: m.moveFocus,
	}
	return m, nil
}

// Field returns the field with the given name, or nil.
func (m *FormModel) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Values returns the current value of every field by name.
func (m *FormModel) Values() map[string]string {
	out := make(map[string]string, len(m.Fields))
	for _, f := range m.Fields {
		out[f.Name] = f.Input.Value()
	}
	return out
}

// moveFocus blurs the field losing focus and focuses the one gaining it.
func (m *FormModel) moveFocus(from, to string) tea.Cmd {
	var cmds []tea.Cmd
	if f := m.Field(from); f != nil {
		cmd, err := f.Input.Blur()
		if err != nil {
			log.Printf("ui: blur %s: %v", from, err)
		}
		cmds = append(cmds, cmd)
	}
	if f := m.Field(to); f != nil {
		cmd, err := f.Input.Focus()
		if err != nil {
			log.Printf("ui: focus %s: %v", to, err)
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// applyControlled pushes owner values into controlled fields.
func (m *FormModel) applyControlled() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for name, v := range m.pending {
		f := m.Field(name)
		if f == nil {
			continue
		}
		if f.Lowercase {
			v = strings.ToLower(v)
		}
		cmds = append(cmds, f.Input.SetValue(v))
	}
	clear(m.pending)
	return tea.Batch(cmds...)
}

// layoutFields hands each field the width of its panel.
func (m *FormModel) layoutFields() {
	for _, p := range m.Layout.Panels() {
		_, _, w, _ := p.Bounds(m.width, m.height)
		if f := m.Field(p.ID); f != nil {
			f.Input.Layout(w)
		}
	}
}

// Ensure the adapter can be used as tea.Model.
var _ tea.Model = (*formModelAdapter)(nil)

// formModelAdapter wraps FormModel to implement tea.Model.
type formModelAdapter struct {
	*FormModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *FormModel) AsTeaModel() tea.Model {
	return &formModelAdapter{FormModel: m}
}

// Init implements tea.Model. Mounts every field and focuses the first one.
func (a *formModelAdapter) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.Fields)+1)
	for _, f := range a.Fields {
		cmds = append(cmds, f.Init())
	}
	cmds = append(cmds, a.Focus.Next())
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *formModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layoutFields()
		return a, nil
	case floatlabel.FrameMsg:
		return a, a.broadcast(msg)
	case ShowSummaryMsg:
		a.Overlays.Push(NewSummaryModal(a.Focus.Order, a.Values()))
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case SubmitMsg:
		a.Overlays.Pop()
		a.Submitted = msg.Values
		log.Printf("ui: submitted %d field(s)", len(msg.Values))
		return a, tea.Quit
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, a.Keys.Quit) {
			return a, tea.Quit
		}
		if cmd, ok := a.Overlays.Route(msg); ok {
			return a, cmd
		}
		switch {
		case key.Matches(msg, a.Keys.Next):
			return a, a.Focus.Next()
		case key.Matches(msg, a.Keys.Prev):
			return a, a.Focus.Prev()
		case key.Matches(msg, a.Keys.Blur):
			return a, a.Focus.Clear()
		case key.Matches(msg, a.Keys.Summary):
			return a, func() tea.Msg { return ShowSummaryMsg{} }
		case key.Matches(msg, a.Keys.Clear):
			return a, a.clearFocused()
		}
	}

	f := a.Field(a.Focus.Current)
	if f == nil {
		return a, nil
	}
	_, cmd := f.Update(msg)
	return a, tea.Batch(cmd, a.applyControlled())
}

// broadcast sends msg to every field; each input ignores frames that are not its own.
func (a *formModelAdapter) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.Fields))
	for _, f := range a.Fields {
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// handleMouse focuses the field whose panel was clicked. The input decides whether
// it accepts focus, so a click on a read-only field leaves it unfocused.
func (a *formModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return nil
	}
	if _, open := a.Overlays.Top(); open {
		return nil
	}
	p, ok := a.Layout.PanelAt(msg.X, msg.Y, a.width, a.height)
	if !ok {
		return nil
	}
	cmd, _ := a.Focus.SetFocus(p.ID)
	return cmd
}

func (a *formModelAdapter) clearFocused() tea.Cmd {
	f := a.Field(a.Focus.Current)
	if f == nil {
		return nil
	}
	cmd, err := f.Input.Clear()
	if err != nil {
		log.Printf("ui: clear %s: %v", f.Name, err)
		return nil
	}
	return tea.Batch(cmd, a.applyControlled())
}

// View implements tea.Model.
func (a *formModelAdapter) View() string {
	if top, ok := a.Overlays.Top(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View())
		}
		return top.View()
	}
	rows := make([]string, 0, len(a.Fields)+2)
	rows = append(rows, Styles.Title.Render(a.Title))
	for _, f := range a.Fields {
		rows = append(rows, f.View())
	}
	rows = append(rows, a.help.View(a.Keys))
	return Styles.Form.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
