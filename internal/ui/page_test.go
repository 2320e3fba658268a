package ui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/viktools/viktools/internal/toolbox"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	return NewPage(PageConfig{
		Notifier: NewNotifier(WithManualDismiss()),
		Now:      func() time.Time { return time.Unix(1700000000, 0) },
	})
}

func lastNote(t *testing.T, p *Page) Notification {
	t.Helper()
	n, ok := p.Notifier.Current()
	if !ok {
		t.Fatal("expected a notification")
	}
	return n
}

func TestNewPageDefaults(t *testing.T) {
	p := newTestPage(t)

	if p.Tabs.ActiveTab() != TabCrypto || p.JWTTabs.ActiveTab() != JWTTabEncode {
		t.Errorf("tabs = %q/%q", p.Tabs.ActiveTab(), p.JWTTabs.ActiveTab())
	}
	if got := p.Form.Get(FieldEncodingType); got != "base64" {
		t.Errorf("encoding type = %q", got)
	}
	if got := p.Form.Get(FieldHashAlgorithm); got != "sha256" {
		t.Errorf("hash algorithm = %q", got)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(p.Form.Get(FieldJWTPayload)), &payload); err != nil {
		t.Fatalf("seeded payload: %v", err)
	}
	if payload["sub"] != "user123" || payload["iat"] != float64(1700000000) {
		t.Errorf("payload = %v", payload)
	}
	if !strings.HasPrefix(p.Form.Get(FieldPlantUMLInput), "@startuml") {
		t.Error("diagram not seeded")
	}
}

func TestPageEncodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestPage(t)

	p.Form.Set(FieldEncodingInput, "héllo")
	if err := p.Run(ctx, ActionEncode); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := p.Form.Get(FieldEncodingOutput); got != "aMOpbGxv" {
		t.Errorf("output = %q", got)
	}
	if n := lastNote(t, p); n.Severity != SeveritySuccess || n.Message != "Encoded successfully!" {
		t.Errorf("note = %+v", n)
	}

	p.Form.Set(FieldEncodingInput, p.Form.Get(FieldEncodingOutput))
	if err := p.Run(ctx, ActionDecode); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := p.Form.Get(FieldEncodingOutput); got != "héllo" {
		t.Errorf("decoded = %q", got)
	}
}

func TestPageFailureKeepsOutput(t *testing.T) {
	p := newTestPage(t)
	p.Form.Set(FieldCryptoOutput, "previous")

	err := p.Run(context.Background(), ActionEncrypt)
	if toolbox.KindOf(err) != toolbox.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}
	if got := p.Form.Get(FieldCryptoOutput); got != "previous" {
		t.Errorf("output changed to %q", got)
	}
	if n := lastNote(t, p); n.Severity != SeverityError || n.Message != "Please enter the text to encrypt" {
		t.Errorf("note = %+v", n)
	}
}

func TestPageCipherRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestPage(t)
	p.Form.Set(FieldCryptoInput, "a_b")
	p.Form.Set(FieldCryptoKey, "k")

	if err := p.Run(ctx, ActionEncrypt); err != nil {
		t.Fatal(err)
	}
	p.Form.Set(FieldCryptoInput, p.Form.Get(FieldCryptoOutput))
	if err := p.Run(ctx, ActionDecrypt); err != nil {
		t.Fatal(err)
	}
	if got := p.Form.Get(FieldCryptoOutput); got != "a_b" {
		t.Errorf("round trip = %q", got)
	}
}

func TestPageJWT(t *testing.T) {
	ctx := context.Background()
	p := newTestPage(t)
	p.Form.Set(FieldJWTSecret, "s")

	if err := p.Run(ctx, ActionJWTEncode); err != nil {
		t.Fatal(err)
	}
	token := p.Form.Get(FieldJWTOutput)
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token = %q", token)
	}

	p.Form.Set(FieldJWTToken, token)
	if err := p.Run(ctx, ActionJWTDecode); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(p.Form.Get(FieldJWTOutput), `"user123"`) {
		t.Errorf("decoded = %s", p.Form.Get(FieldJWTOutput))
	}

	p.Form.Set(FieldJWTTokenVerify, token)
	p.Form.Set(FieldJWTSecretVerify, "s")
	err := p.Run(ctx, ActionJWTVerify)
	if toolbox.KindOf(err) != toolbox.KindUnsupported {
		t.Fatalf("verify err = %v", err)
	}
	if !strings.Contains(p.Form.Get(FieldJWTOutput), "/api/jwt/verify") {
		t.Errorf("verify placeholder = %q", p.Form.Get(FieldJWTOutput))
	}
	if n := lastNote(t, p); n.Severity != SeverityError || !strings.Contains(n.Message, "backend") {
		t.Errorf("note = %+v", n)
	}
}

func TestPageDiagram(t *testing.T) {
	ctx := context.Background()
	p := newTestPage(t)

	err := p.Run(ctx, ActionDiagramGenerate)
	if toolbox.KindOf(err) != toolbox.KindUnsupported {
		t.Fatalf("err = %v", err)
	}
	preview := p.Form.Get(FieldPlantUMLPreview)
	if !strings.Contains(preview, "Alice -> Bob: Hello") || !strings.Contains(preview, "PNG") {
		t.Errorf("preview = %q", preview)
	}

	if err := p.Run(ctx, ActionDiagramDownload); toolbox.KindOf(err) != toolbox.KindUnsupported {
		t.Errorf("download err = %v", err)
	}
}

func TestPageCopy(t *testing.T) {
	clip := &fakeClipboard{}
	p := NewPage(PageConfig{Notifier: NewNotifier(WithManualDismiss()), Clipboard: clip})
	p.Form.Set(FieldHashOutput, "digest")

	if err := p.Run(context.Background(), CopyAction(FieldHashOutput)); err != nil {
		t.Fatal(err)
	}
	if clip.got != "digest" {
		t.Errorf("clipboard = %q", clip.got)
	}
	if err := p.Run(context.Background(), CopyAction("nope")); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestPageUnknownAction(t *testing.T) {
	p := newTestPage(t)
	if err := p.Run(context.Background(), Action("explode")); err == nil {
		t.Error("expected error")
	}
}

func TestPageCancelledContext(t *testing.T) {
	p := newTestPage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Run(ctx, ActionHash); err == nil {
		t.Error("expected context error")
	}
}
