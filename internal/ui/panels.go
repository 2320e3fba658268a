package ui

// Panel is one section of a panel group. ID is the element id of the
// section (group prefix + tab), Tab the key its trigger is bound to.
type Panel struct {
	ID     string
	Tab    string
	Label  string
	Active bool
}

// Button is the trigger bound to a tab.
type Button struct {
	Tab    string
	Active bool
}

// Tab describes a panel and its trigger for NewPanelGroup.
type Tab struct {
	ID    string
	Label string
}

// PanelGroup is a set of mutually exclusive panels: at most one is active.
type PanelGroup struct {
	name    string
	prefix  string
	panels  []*Panel
	buttons map[string]*Button
}

// NewPanelGroup creates a group whose panel ids are prefix+tab, with one
// panel and one bound button per tab. The first tab starts active.
func NewPanelGroup(name, prefix string, tabs ...Tab) *PanelGroup {
	g := &PanelGroup{name: name, prefix: prefix, buttons: make(map[string]*Button)}
	for _, t := range tabs {
		g.AddPanel(t.ID, t.Label)
		g.BindButton(t.ID)
	}
	if len(tabs) > 0 {
		g.Activate(tabs[0].ID)
	}
	return g
}

// Name returns the group name.
func (g *PanelGroup) Name() string { return g.name }

// AddPanel registers a panel for tab without a trigger.
func (g *PanelGroup) AddPanel(tab, label string) {
	g.panels = append(g.panels, &Panel{ID: g.prefix + tab, Tab: tab, Label: label})
}

// BindButton registers a trigger for tab. A trigger may exist before its
// panel does.
func (g *PanelGroup) BindButton(tab string) {
	if _, ok := g.buttons[tab]; !ok {
		g.buttons[tab] = &Button{Tab: tab}
	}
}

// Activate deactivates every panel and button of the group, then activates
// the panel and button bound to tab if they exist. Unknown tabs leave the
// whole group inactive and report false.
func (g *PanelGroup) Activate(tab string) bool {
	for _, p := range g.panels {
		p.Active = false
	}
	for _, b := range g.buttons {
		b.Active = false
	}

	found := false
	for _, p := range g.panels {
		if p.ID == g.prefix+tab {
			p.Active = true
			found = true
			break
		}
	}
	if b, ok := g.buttons[tab]; ok {
		b.Active = true
	}
	return found
}

// Active returns the active panel.
func (g *PanelGroup) Active() (Panel, bool) {
	for _, p := range g.panels {
		if p.Active {
			return *p, true
		}
	}
	return Panel{}, false
}

// ActiveTab returns the tab of the active panel, or "".
func (g *PanelGroup) ActiveTab() string {
	p, _ := g.Active()
	return p.Tab
}

// IsActive reports whether the panel for tab is shown.
func (g *PanelGroup) IsActive(tab string) bool {
	return g.ActiveTab() == tab && tab != ""
}

// ButtonActive reports whether the trigger for tab is highlighted.
func (g *PanelGroup) ButtonActive(tab string) bool {
	b, ok := g.buttons[tab]
	return ok && b.Active
}

// Panels returns a snapshot of the group's panels in order.
func (g *PanelGroup) Panels() []Panel {
	out := make([]Panel, len(g.panels))
	for i, p := range g.panels {
		out[i] = *p
	}
	return out
}

// Next activates the panel after the active one, wrapping around.
func (g *PanelGroup) Next() string { return g.step(1) }

// Prev activates the panel before the active one, wrapping around.
func (g *PanelGroup) Prev() string { return g.step(-1) }

func (g *PanelGroup) step(delta int) string {
	if len(g.panels) == 0 {
		return ""
	}
	idx := -1
	for i, p := range g.panels {
		if p.Active {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(g.panels)) % len(g.panels)
	}
	tab := g.panels[idx].Tab
	g.Activate(tab)
	return tab
}
