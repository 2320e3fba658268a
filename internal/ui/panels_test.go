package ui

import "testing"

func newMainGroup() *PanelGroup {
	return NewPanelGroup("main", "", MainTabs...)
}

func TestPanelGroupStartsOnFirstTab(t *testing.T) {
	g := newMainGroup()
	if got := g.ActiveTab(); got != TabCrypto {
		t.Errorf("active = %q, want %q", got, TabCrypto)
	}
	if !g.ButtonActive(TabCrypto) {
		t.Error("crypto button should be active")
	}
}

func TestPanelGroupActivate(t *testing.T) {
	g := newMainGroup()

	if !g.Activate(TabHash) {
		t.Fatal("activate hash failed")
	}
	active := 0
	for _, p := range g.Panels() {
		if p.Active {
			active++
			if p.Tab != TabHash {
				t.Errorf("active panel = %q, want hash", p.Tab)
			}
		}
	}
	if active != 1 {
		t.Errorf("%d active panels, want 1", active)
	}
	if g.ButtonActive(TabCrypto) || !g.ButtonActive(TabHash) {
		t.Error("button state did not follow the active panel")
	}
}

func TestPanelGroupUnknownTab(t *testing.T) {
	g := newMainGroup()
	if g.Activate("nope") {
		t.Error("unknown tab reported as found")
	}
	if _, ok := g.Active(); ok {
		t.Error("unknown tab should leave no panel active")
	}
	for _, tab := range MainTabs {
		if g.ButtonActive(tab.ID) {
			t.Errorf("button %q still active", tab.ID)
		}
	}
	if g.IsActive("") {
		t.Error("empty tab reported active")
	}
}

func TestPanelGroupPrefix(t *testing.T) {
	g := NewPanelGroup("jwt", "jwt-", JWTTabs...)
	g.Activate(JWTTabVerify)
	p, ok := g.Active()
	if !ok {
		t.Fatal("no active panel")
	}
	if p.ID != "jwt-verify" {
		t.Errorf("panel id = %q, want jwt-verify", p.ID)
	}
}

func TestPanelGroupButtonWithoutPanel(t *testing.T) {
	g := NewPanelGroup("main", "")
	g.BindButton("orphan")
	if g.Activate("orphan") {
		t.Error("tab without a panel reported as found")
	}
	if !g.ButtonActive("orphan") {
		t.Error("bound button should still be highlighted")
	}
}

func TestPanelGroupCycle(t *testing.T) {
	g := newMainGroup()
	if got := g.Prev(); got != TabPlantUML {
		t.Errorf("prev from first = %q, want %q", got, TabPlantUML)
	}
	if got := g.Next(); got != TabCrypto {
		t.Errorf("next from last = %q, want %q", got, TabCrypto)
	}
	g.Activate("nope")
	if got := g.Next(); got != TabCrypto {
		t.Errorf("next with nothing active = %q, want %q", got, TabCrypto)
	}
}
