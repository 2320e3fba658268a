package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/ui"
)

type fakeClipboard struct{ got string }

func (c *fakeClipboard) WriteText(text string) error {
	c.got = text
	return nil
}

func newTestModel(t *testing.T) (*model, *fakeClipboard) {
	t.Helper()
	clip := &fakeClipboard{}
	return newModel(Config{Toolbox: toolbox.New(toolbox.DefaultOptions()), Clipboard: clip}), clip
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "ctrl+n":
			msg = tea.KeyMsg{Type: tea.KeyCtrlN}
		case "ctrl+p":
			msg = tea.KeyMsg{Type: tea.KeyCtrlP}
		case "ctrl+t":
			msg = tea.KeyMsg{Type: tea.KeyCtrlT}
		case "ctrl+r":
			msg = tea.KeyMsg{Type: tea.KeyCtrlR}
		case "ctrl+o":
			msg = tea.KeyMsg{Type: tea.KeyCtrlO}
		case "ctrl+y":
			msg = tea.KeyMsg{Type: tea.KeyCtrlY}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "f3":
			msg = tea.KeyMsg{Type: tea.KeyF3}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModelStartsOnCrypto(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.page.Tabs.ActiveTab(); got != ui.TabCrypto {
		t.Fatalf("active tab = %q", got)
	}
	if f := m.focused(); f == nil || f.id != ui.FieldCryptoInput {
		t.Fatalf("focused = %+v", f)
	}
	if !strings.Contains(m.View(), "VikTools") {
		t.Error("view missing title")
	}
}

func TestModelTabSwitching(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "ctrl+n")
	if got := m.page.Tabs.ActiveTab(); got != ui.TabEncoding {
		t.Errorf("after ctrl+n = %q", got)
	}
	press(m, "ctrl+p", "ctrl+p")
	if got := m.page.Tabs.ActiveTab(); got != ui.TabPlantUML {
		t.Errorf("after ctrl+p twice = %q", got)
	}
	press(m, "f3")
	if got := m.page.Tabs.ActiveTab(); got != ui.TabHash {
		t.Errorf("after f3 = %q", got)
	}
}

func TestModelHash(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "f3", "abc")

	cmd := press(m, "ctrl+r")
	if cmd == nil {
		t.Error("expected a dismiss command")
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := m.page.Form.Get(ui.FieldHashOutput); got != want {
		t.Errorf("hash output = %q", got)
	}
	if !strings.Contains(m.View(), "Hash computed successfully!") {
		t.Error("view missing notification")
	}
}

func TestModelSelectorCycle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "ctrl+n", "tab")
	f := m.focused()
	if f.id != ui.FieldEncodingType {
		t.Fatalf("focused = %q", f.id)
	}
	press(m, "right")
	if got := f.value(); got != string(toolbox.EncodingURL) {
		t.Errorf("encoding after right = %q", got)
	}

	press(m, "tab", "a b")
	press(m, "ctrl+r")
	if got := m.page.Form.Get(ui.FieldEncodingOutput); got != "a%20b" {
		t.Errorf("url encoded = %q", got)
	}
}

func TestModelFailureShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "ctrl+r")
	note, ok := m.page.Notifier.Current()
	if !ok || note.Severity != ui.SeverityError {
		t.Fatalf("note = %+v, %v", note, ok)
	}
	if got := m.page.Form.Get(ui.FieldCryptoOutput); got != "" {
		t.Errorf("output written on failure: %q", got)
	}
}

func TestModelDismiss(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "ctrl+r")
	note, _ := m.page.Notifier.Current()

	press(m, "ctrl+r")
	m.Update(dismissMsg{id: note.ID})
	if _, ok := m.page.Notifier.Current(); !ok {
		t.Error("stale dismiss removed the newer notification")
	}

	current, _ := m.page.Notifier.Current()
	m.Update(dismissMsg{id: current.ID})
	if _, ok := m.page.Notifier.Current(); ok {
		t.Error("notification not dismissed")
	}
}

func TestModelJWTSubTabs(t *testing.T) {
	m, _ := newTestModel(t)
	m.page.ShowTab(ui.TabJWT)
	m.resetFocus()

	if got := m.focused().id; got != ui.FieldJWTHeader {
		t.Fatalf("focused = %q", got)
	}
	press(m, "ctrl+t", "ctrl+t")
	if got := m.page.JWTTabs.ActiveTab(); got != ui.JWTTabVerify {
		t.Fatalf("jwt tab = %q", got)
	}
	press(m, "token", "tab", "secret", "ctrl+r")
	if !strings.Contains(m.page.Form.Get(ui.FieldJWTOutput), "/api/jwt/verify") {
		t.Errorf("verify output = %q", m.page.Form.Get(ui.FieldJWTOutput))
	}
}

func TestModelCopy(t *testing.T) {
	m, clip := newTestModel(t)
	press(m, "f3", "abc", "ctrl+r", "ctrl+y")
	if clip.got == "" || clip.got != m.page.Form.Get(ui.FieldHashOutput) {
		t.Errorf("clipboard = %q", clip.got)
	}
}
