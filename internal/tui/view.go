package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/viktools/viktools/internal/ui"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tabStyle          = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	tabActiveStyle    = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	labelStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	choiceStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	choiceActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	outputBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	helperStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	keyStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)

	toastStyles = map[ui.Severity]lipgloss.Style{
		ui.SeverityInfo:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")),
		ui.SeveritySuccess: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#a3be8c")),
		ui.SeverityError:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("9")),
	}
)

func (m *model) View() string {
	parts := []string{
		titleStyle.Render("VikTools"),
		renderTabs(m.page.Tabs),
	}
	if m.page.Tabs.IsActive(ui.TabJWT) {
		parts = append(parts, renderTabs(m.page.JWTTabs))
	}

	sec := m.section()
	focused := m.focused()
	for _, id := range sec.inputs {
		f := m.fields[id]
		label := labelStyle.Render(f.label)
		if f == focused {
			label = labelFocusStyle.Render("› " + f.label)
		}
		parts = append(parts, label, f.view(f == focused))
	}

	if sec.output != "" {
		out := m.page.Form.Get(sec.output)
		if out == "" {
			out = helperStyle.Render("(empty)")
		}
		parts = append(parts, labelStyle.Render("Output"), outputBoxStyle.Render(out))
	}

	if note, ok := m.page.Notifier.Current(); ok {
		style, found := toastStyles[note.Severity]
		if !found {
			style = toastStyles[ui.SeverityInfo]
		}
		parts = append(parts, style.Render(note.Message))
	}

	parts = append(parts, m.keyLegend(sec))
	return strings.Join(parts, "\n")
}

func renderTabs(g *ui.PanelGroup) string {
	var out []string
	for i, p := range g.Panels() {
		label := p.Label
		if g.Name() == "main" {
			label = fmt.Sprintf("F%d %s", i+1, p.Label)
		}
		if p.Active {
			out = append(out, tabActiveStyle.Render(label))
		} else {
			out = append(out, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m *model) keyLegend(sec section) string {
	type binding struct{ key, desc string }
	keys := []binding{{"ctrl+r", sec.actionLabel(sec.primary)}}
	if sec.secondary != "" {
		keys = append(keys, binding{"ctrl+o", sec.actionLabel(sec.secondary)})
	}
	keys = append(keys,
		binding{"ctrl+y", "copy"},
		binding{"tab", "next field"},
		binding{"ctrl+n/p", "switch tab"},
	)
	if m.page.Tabs.IsActive(ui.TabJWT) {
		keys = append(keys, binding{"ctrl+t", "jwt mode"})
	}
	keys = append(keys, binding{"esc", "quit"})

	var parts []string
	for _, k := range keys {
		parts = append(parts, keyStyle.Render(k.key)+" "+helperStyle.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}
