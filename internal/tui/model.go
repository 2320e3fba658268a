// Package tui is the terminal front end of the toolbox.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/ui"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Toolbox   *toolbox.Toolbox
	Clipboard ui.ClipboardWriter
	Fallback  ui.ClipboardWriter
	Lifetime  time.Duration
	Logger    *slog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	return newModel(cfg)
}

type dismissMsg struct{ id string }

type model struct {
	page   *ui.Page
	fields map[string]*field
	focus  int
	width  int
	height int
}

func newModel(cfg Config) *model {
	notifier := ui.NewNotifier(ui.WithManualDismiss(), ui.WithLifetime(cfg.Lifetime))
	page := ui.NewPage(ui.PageConfig{
		Toolbox:   cfg.Toolbox,
		Notifier:  notifier,
		Clipboard: cfg.Clipboard,
		Fallback:  cfg.Fallback,
		Logger:    cfg.Logger,
	})

	m := &model{page: page, fields: newFields()}
	m.pullForm()
	m.focusCurrent()
	return m
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case dismissMsg:
		m.page.Notifier.Dismiss(msg.id)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		width := msg.Width - 4
		if width < 30 {
			width = 30
		}
		for _, f := range m.fields {
			switch f.kind {
			case kindArea:
				f.area.SetWidth(width)
			case kindLine:
				f.line.Width = width - 2
			}
		}
		return m, nil
	}
	return m, m.focused().updateOrNil(msg)
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+n":
		m.page.Tabs.Next()
		return m, m.resetFocus()
	case "ctrl+p":
		m.page.Tabs.Prev()
		return m, m.resetFocus()
	case "f1", "f2", "f3", "f4", "f5":
		idx := int(key.String()[1] - '1')
		m.page.ShowTab(ui.MainTabs[idx].ID)
		return m, m.resetFocus()
	case "ctrl+t":
		if m.page.Tabs.IsActive(ui.TabJWT) {
			m.page.JWTTabs.Next()
			return m, m.resetFocus()
		}
		return m, nil
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	case "ctrl+r":
		return m, m.run(m.section().primary)
	case "ctrl+o":
		return m, m.run(m.section().secondary)
	case "ctrl+y":
		return m, m.run(ui.CopyAction(m.section().output))
	case "left", "right":
		if f := m.focused(); f != nil && f.kind == kindSelect {
			if key.String() == "left" {
				f.cycle(-1)
			} else {
				f.cycle(1)
			}
			return m, nil
		}
	}
	if f := m.focused(); f != nil {
		return m, f.update(key)
	}
	return m, nil
}

// run pushes editor values into the form, performs the action and pulls
// the results back. The returned command removes the notification after
// its lifetime.
func (m *model) run(action ui.Action) tea.Cmd {
	if action == "" {
		return nil
	}
	m.pushForm()
	// Failures are already reported through the notifier.
	_ = m.page.Run(context.Background(), action)
	m.pullForm()

	note, ok := m.page.Notifier.Current()
	if !ok {
		return nil
	}
	return tea.Tick(note.Lifetime, func(time.Time) tea.Msg {
		return dismissMsg{id: note.ID}
	})
}

func (m *model) section() section {
	tab := m.page.Tabs.ActiveTab()
	if tab == ui.TabJWT {
		return jwtSections[m.page.JWTTabs.ActiveTab()]
	}
	return sections[tab]
}

func (m *model) focused() *field {
	inputs := m.section().inputs
	if len(inputs) == 0 {
		return nil
	}
	return m.fields[inputs[m.focus%len(inputs)]]
}

func (m *model) resetFocus() tea.Cmd {
	m.blurAll()
	m.focus = 0
	return m.focusCurrent()
}

func (m *model) moveFocus(delta int) tea.Cmd {
	inputs := m.section().inputs
	if len(inputs) == 0 {
		return nil
	}
	m.blurAll()
	m.focus = (m.focus + delta + len(inputs)) % len(inputs)
	return m.focusCurrent()
}

func (m *model) focusCurrent() tea.Cmd {
	if f := m.focused(); f != nil {
		return f.focus()
	}
	return nil
}

func (m *model) blurAll() {
	for _, f := range m.fields {
		f.blur()
	}
}

func (m *model) pushForm() {
	for id, f := range m.fields {
		m.page.Form.Set(id, f.value())
	}
}

func (m *model) pullForm() {
	for id, f := range m.fields {
		if v, ok := m.page.Form.Value(id); ok {
			f.setValue(v)
		}
	}
}

func (f *field) updateOrNil(msg tea.Msg) tea.Cmd {
	if f == nil {
		return nil
	}
	return f.update(msg)
}
