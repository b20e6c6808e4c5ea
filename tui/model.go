package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/selectkit/tui/keymap"
	"github.com/grovetools/selectkit/tui/theme"
	"github.com/grovetools/selectkit/widget"
)

// filterable is the slice of the widget surface the host needs for
// live filter input. Combobox and Multiselect both satisfy it.
type filterable interface {
	InputFilterText(text string)
	FilterText() string
}

// Model hosts one selection widget as a bubbletea model. Construct it
// with NewDropdownModel, NewComboboxModel, or NewMultiselectModel and
// hand it to tea.NewProgram; read the selection off the widget once
// the program returns.
type Model struct {
	w       widget.Widget
	root    *widget.Node
	popover *widget.Node

	filter filterable // nil for the plain dropdown
	multi  *widget.Multiselect
	input  textinput.Model

	keys  keymap.Base
	th    *theme.Theme
	title string

	quitting bool
	err      error
}

// itemsLoadedMsg signals that the widget's data source settled.
type itemsLoadedMsg struct{ err error }

// NewDropdownModel builds a dropdown host. Root and Popover in o are
// replaced with host-owned surfaces.
func NewDropdownModel(title string, o widget.Options) (*Model, error) {
	m := newModel(title, &o, false)
	d, err := widget.NewDropdown(o)
	if err != nil {
		return nil, err
	}
	m.w = d
	return m, nil
}

// NewComboboxModel builds a combobox host with a live filter input.
func NewComboboxModel(title string, o widget.Options) (*Model, error) {
	m := newModel(title, &o, false)
	c, err := widget.NewCombobox(o)
	if err != nil {
		return nil, err
	}
	m.w = c
	m.filter = c
	return m, nil
}

// NewMultiselectModel builds a multiselect host: checkbox marks, a
// live filter input, enter to confirm, ctrl+a to toggle select-all.
func NewMultiselectModel(title string, o widget.Options) (*Model, error) {
	m := newModel(title, &o, true)
	ms, err := widget.NewMultiselect(o)
	if err != nil {
		return nil, err
	}
	m.w = ms
	m.filter = ms
	m.multi = ms
	return m, nil
}

func newModel(title string, o *widget.Options, marks bool) *Model {
	th := theme.NewTheme()

	root := widget.NewNode()
	popover := widget.NewNode()
	o.Root = root
	o.Popover = popover
	if o.Renderer == nil {
		o.Renderer = NewListRenderer(th, marks)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = o.Placeholder
	input.Focus()

	return &Model{
		root:    root,
		popover: popover,
		input:   input,
		keys:    keymap.NewBase(),
		th:      th,
		title:   title,
	}
}

// Widget exposes the hosted widget so callers can read the selection
// after the program exits.
func (m *Model) Widget() widget.Widget { return m.w }

// Err reports a data source failure observed during Init.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.loadCmd()}
	return tea.Batch(cmds...)
}

// loadCmd resolves the widget's data source off the interaction path.
type loader interface {
	Load(ctx context.Context) error
}

func (m *Model) loadCmd() tea.Cmd {
	l, ok := m.w.(loader)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return itemsLoadedMsg{err: l.Load(context.Background())}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.w.Teardown()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Multiselect confirms on enter and toggles select-all on ctrl+a;
	// both are host gestures, not widget ones.
	if m.multi != nil {
		switch {
		case msg.Type == tea.KeyEnter && m.w.Opened():
			m.quitting = true
			m.w.Close()
			return m, tea.Quit
		case msg.Type == tea.KeyCtrlA:
			m.multi.ToggleSelectAll()
			return m, nil
		}
	}

	k := m.keys.Resolve(msg)
	if k != widget.KeyNone {
		wasOpen := m.w.Opened()
		m.w.HandleKey(k)
		m.syncFilterInput()

		// Enter on a single-select closes the popover with a fresh
		// selection; that is the accept gesture for the demo hosts.
		if m.multi == nil && k == widget.KeyEnter && wasOpen && !m.w.Opened() {
			m.quitting = true
			m.w.Teardown()
			return m, tea.Quit
		}
		// Escape on a closed widget backs out entirely.
		if k == widget.KeyEscape && !wasOpen {
			m.quitting = true
			m.w.Teardown()
			return m, tea.Quit
		}
		return m, nil
	}

	if m.filter == nil {
		return m, nil
	}

	// Everything unbound is text input for the filter.
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		if !m.w.Opened() {
			m.w.Open()
		}
		m.filter.InputFilterText(m.input.Value())
	}
	return m, cmd
}

// syncFilterInput mirrors engine-side filter resets (a combobox
// selection clears the filter) back into the text input.
func (m *Model) syncFilterInput() {
	if m.filter == nil {
		return
	}
	if m.filter.FilterText() != m.input.Value() {
		m.input.SetValue(m.filter.FilterText())
		m.input.CursorEnd()
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.th.Title.Render(m.title))
		b.WriteByte('\n')
	}

	chevron := theme.IconChevronDown
	if m.w.Opened() {
		chevron = theme.IconChevronUp
	}

	if m.filter != nil {
		b.WriteString(m.th.Accent.Render(theme.IconFilter))
		b.WriteString(" ")
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.th.Input.Render(m.summaryLine()))
	}
	b.WriteString(" ")
	b.WriteString(m.th.Muted.Render(chevron))
	if m.root.HasClass(widget.ClassLoading) {
		b.WriteString(" ")
		b.WriteString(m.th.Loading.Render(theme.IconRunning))
	}
	b.WriteByte('\n')

	if m.w.Opened() {
		b.WriteString(m.th.Popover.Render(m.popover.Content()))
		b.WriteByte('\n')
	}

	b.WriteString(m.th.Muted.Render(m.helpLine()))
	b.WriteByte('\n')

	return b.String()
}

func (m *Model) summaryLine() string {
	if s := m.w.SummaryText(); s != "" {
		return s
	}
	return m.th.Placeholder.Render("select an item")
}

func (m *Model) helpLine() string {
	if m.multi != nil {
		return "↑/↓ move · space toggle · C-a all · enter confirm · esc close"
	}
	return "↑/↓ move · enter select · esc close"
}
