package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/viktools/viktools/internal/toolbox"
)

func TestForm(t *testing.T) {
	f := NewForm("a", "b", "a")
	if got := f.Fields(); len(got) != 2 {
		t.Fatalf("fields = %v, want 2 unique", got)
	}
	if !f.Set("a", "x") {
		t.Error("set on existing field failed")
	}
	if f.Set("missing", "x") {
		t.Error("set on missing field succeeded")
	}
	if v, ok := f.Value("a"); !ok || v != "x" {
		t.Errorf("Value(a) = %q, %v", v, ok)
	}
	if _, ok := f.Value("missing"); ok {
		t.Error("missing field reported present")
	}
}

func TestBootstrap(t *testing.T) {
	seeds := toolbox.Seeds{JWTHeader: "H", JWTPayload: "P", Diagram: "D"}

	t.Run("fills empty fields", func(t *testing.T) {
		f := NewForm(AllFields...)
		filled := Bootstrap(f, seeds)
		if len(filled) != 3 {
			t.Errorf("filled = %v, want 3 fields", filled)
		}
		if f.Get(FieldJWTHeader) != "H" || f.Get(FieldJWTPayload) != "P" || f.Get(FieldPlantUMLInput) != "D" {
			t.Error("seeds not applied")
		}
	})

	t.Run("keeps existing text", func(t *testing.T) {
		f := NewForm(AllFields...)
		f.Set(FieldJWTPayload, "mine")
		Bootstrap(f, seeds)
		if got := f.Get(FieldJWTPayload); got != "mine" {
			t.Errorf("payload = %q, want kept", got)
		}
	})

	t.Run("skips missing fields", func(t *testing.T) {
		f := NewForm(FieldCryptoInput)
		if filled := Bootstrap(f, seeds); len(filled) != 0 {
			t.Errorf("filled = %v, want none", filled)
		}
	})
}

type fakeClipboard struct {
	got string
	err error
}

func (c *fakeClipboard) WriteText(text string) error {
	c.got = text
	return c.err
}

func TestClipboardCopy(t *testing.T) {
	tests := []struct {
		name         string
		primaryErr   error
		fallbackErr  error
		wantFallback bool
	}{
		{name: "primary", wantFallback: false},
		{name: "fallback", primaryErr: errors.New("denied"), wantFallback: true},
		{name: "both fail", primaryErr: errors.New("denied"), fallbackErr: errors.New("no tty"), wantFallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm(FieldHashOutput)
			form.Set(FieldHashOutput, "abc123")
			notifier := NewNotifier(WithManualDismiss())
			primary := &fakeClipboard{err: tt.primaryErr}
			fallback := &fakeClipboard{err: tt.fallbackErr}

			c := NewClipboard(form, notifier, primary, fallback, nil)
			if !c.Copy(FieldHashOutput) {
				t.Fatal("copy reported missing field")
			}
			if primary.got != "abc123" {
				t.Errorf("primary got %q", primary.got)
			}
			if (fallback.got == "abc123") != tt.wantFallback {
				t.Errorf("fallback used = %v, want %v", fallback.got != "", tt.wantFallback)
			}
			note, ok := notifier.Current()
			if !ok || note.Message != "Copied to clipboard!" || note.Severity != SeveritySuccess {
				t.Errorf("notification = %+v, %v", note, ok)
			}
		})
	}
}

func TestClipboardMissingField(t *testing.T) {
	notifier := NewNotifier(WithManualDismiss())
	primary := &fakeClipboard{}
	c := NewClipboard(NewForm(), notifier, primary, nil, nil)
	if c.Copy("nope") {
		t.Error("copy of missing field reported success")
	}
	if _, ok := notifier.Current(); ok {
		t.Error("missing field should not notify")
	}
	if primary.got != "" {
		t.Error("clipboard written for missing field")
	}
}

func TestClipboardNoWriters(t *testing.T) {
	form := NewForm(FieldCryptoOutput)
	notifier := NewNotifier(WithManualDismiss())
	if !NewClipboard(form, notifier, nil, nil, nil).Copy(FieldCryptoOutput) {
		t.Fatal("copy failed")
	}
	if note, _ := notifier.Current(); !strings.Contains(note.Message, "Copied") {
		t.Errorf("message = %q", note.Message)
	}
}
