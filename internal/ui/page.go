package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/viktools/viktools/internal/toolbox"
)

// Action is something a user can trigger on the page. Operation actions
// share their names with toolbox operations; copy actions are
// "copy-<field id>".
type Action string

const (
	ActionEncrypt         Action = toolbox.OpEncrypt
	ActionDecrypt         Action = toolbox.OpDecrypt
	ActionEncode          Action = toolbox.OpEncode
	ActionDecode          Action = toolbox.OpDecode
	ActionHash            Action = toolbox.OpHash
	ActionJWTEncode       Action = toolbox.OpJWTEncode
	ActionJWTDecode       Action = toolbox.OpJWTDecode
	ActionJWTVerify       Action = toolbox.OpJWTVerify
	ActionDiagramGenerate Action = toolbox.OpDiagramGenerate
	ActionDiagramDownload Action = toolbox.OpDiagramDownload
)

const copyPrefix = "copy-"

// CopyAction returns the action copying field to the clipboard.
func CopyAction(field string) Action { return Action(copyPrefix + field) }

// Tab ids of the main and JWT panel groups.
const (
	TabCrypto   = "crypto"
	TabEncoding = "encoding"
	TabHash     = "hash"
	TabJWT      = "jwt"
	TabPlantUML = "plantuml"

	JWTTabEncode = "encode"
	JWTTabDecode = "decode"
	JWTTabVerify = "verify"
)

// MainTabs are the top-level sections in display order.
var MainTabs = []Tab{
	{ID: TabCrypto, Label: "Crypto"},
	{ID: TabEncoding, Label: "Encoding"},
	{ID: TabHash, Label: "Hash"},
	{ID: TabJWT, Label: "JWT"},
	{ID: TabPlantUML, Label: "PlantUML"},
}

// JWTTabs are the sub-sections of the JWT tab.
var JWTTabs = []Tab{
	{ID: JWTTabEncode, Label: "Encode"},
	{ID: JWTTabDecode, Label: "Decode"},
	{ID: JWTTabVerify, Label: "Verify"},
}

type binding struct {
	output string
	run    func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error)
}

var bindings = map[Action]binding{
	ActionEncrypt: {FieldCryptoOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.Encrypt(cipherRequest(f))
	}},
	ActionDecrypt: {FieldCryptoOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.Decrypt(cipherRequest(f))
	}},
	ActionEncode: {FieldEncodingOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.Encode(codecRequest(f))
	}},
	ActionDecode: {FieldEncodingOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.Decode(codecRequest(f))
	}},
	ActionHash: {FieldHashOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.Hash(toolbox.HashRequest{
			Input:     f.Get(FieldHashInput),
			Algorithm: toolbox.HashAlgorithm(f.Get(FieldHashAlgorithm)),
		})
	}},
	ActionJWTEncode: {FieldJWTOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.JWTEncode(toolbox.JWTEncodeRequest{
			Header:  f.Get(FieldJWTHeader),
			Payload: f.Get(FieldJWTPayload),
			Secret:  f.Get(FieldJWTSecret),
		})
	}},
	ActionJWTDecode: {FieldJWTOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.JWTDecode(toolbox.JWTDecodeRequest{Token: f.Get(FieldJWTToken)})
	}},
	ActionJWTVerify: {FieldJWTOutput, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.JWTVerify(toolbox.JWTVerifyRequest{
			Token:  f.Get(FieldJWTTokenVerify),
			Secret: f.Get(FieldJWTSecretVerify),
		})
	}},
	ActionDiagramGenerate: {FieldPlantUMLPreview, func(tb *toolbox.Toolbox, f *Form) (toolbox.Result, error) {
		return tb.DiagramGenerate(toolbox.DiagramRequest{
			Source: f.Get(FieldPlantUMLInput),
			Format: f.Get(FieldPlantUMLFormat),
		})
	}},
	ActionDiagramDownload: {"", func(tb *toolbox.Toolbox, _ *Form) (toolbox.Result, error) {
		return tb.DiagramDownload()
	}},
}

func cipherRequest(f *Form) toolbox.CipherRequest {
	return toolbox.CipherRequest{
		Input:     f.Get(FieldCryptoInput),
		Key:       f.Get(FieldCryptoKey),
		Algorithm: f.Get(FieldCryptoAlgorithm),
	}
}

func codecRequest(f *Form) toolbox.CodecRequest {
	return toolbox.CodecRequest{
		Input: f.Get(FieldEncodingInput),
		Type:  toolbox.Encoding(f.Get(FieldEncodingType)),
	}
}

// Page is one toolbox view: its panel groups, form, notifier and clipboard.
// A Page is not safe for concurrent use; hosts drive it from one goroutine.
type Page struct {
	Tabs      *PanelGroup
	JWTTabs   *PanelGroup
	Form      *Form
	Notifier  *Notifier
	Clipboard *Clipboard

	toolbox *toolbox.Toolbox
	logger  *slog.Logger
}

// PageConfig carries the collaborators of a Page. Zero fields get defaults.
type PageConfig struct {
	Toolbox   *toolbox.Toolbox
	Notifier  *Notifier
	Clipboard ClipboardWriter
	Fallback  ClipboardWriter
	Logger    *slog.Logger
	Now       func() time.Time
}

// NewPage builds a page with every field, the selector defaults of the
// toolbox and the example seeds.
func NewPage(cfg PageConfig) *Page {
	if cfg.Toolbox == nil {
		cfg.Toolbox = toolbox.New(toolbox.DefaultOptions())
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NewNotifier()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	form := NewForm(AllFields...)
	opts := cfg.Toolbox.Options()
	form.Set(FieldCryptoAlgorithm, opts.CipherAlgorithm)
	form.Set(FieldEncodingType, string(opts.Encoding))
	form.Set(FieldHashAlgorithm, string(opts.HashAlgorithm))
	form.Set(FieldPlantUMLFormat, string(opts.DiagramFormat))
	Bootstrap(form, toolbox.Defaults(cfg.Now()))

	return &Page{
		Tabs:      NewPanelGroup("main", "", MainTabs...),
		JWTTabs:   NewPanelGroup("jwt", "jwt-", JWTTabs...),
		Form:      form,
		Notifier:  cfg.Notifier,
		Clipboard: NewClipboard(form, cfg.Notifier, cfg.Clipboard, cfg.Fallback, cfg.Logger),
		toolbox:   cfg.Toolbox,
		logger:    cfg.Logger,
	}
}

// ShowTab activates a main tab.
func (p *Page) ShowTab(tab string) bool { return p.Tabs.Activate(tab) }

// ShowJWTTab activates a JWT sub-tab.
func (p *Page) ShowJWTTab(tab string) bool { return p.JWTTabs.Activate(tab) }

// Run performs action against the form. The output field is written only
// on success, or with the placeholder of an unsupported operation. Every
// outcome is reported through the notifier; the error is returned as well.
func (p *Page) Run(ctx context.Context, action Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if field, ok := strings.CutPrefix(string(action), copyPrefix); ok {
		if !p.Clipboard.Copy(field) {
			return fmt.Errorf("unknown field %q", field)
		}
		return nil
	}

	b, ok := bindings[action]
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}

	res, err := b.run(p.toolbox, p.Form)
	if err != nil {
		if ph := toolbox.PlaceholderOf(err); ph != "" && b.output != "" {
			p.Form.Set(b.output, ph)
		}
		p.logger.Debug("action failed", "action", string(action), "kind", string(toolbox.KindOf(err)), "error", err)
		p.Notifier.Notify(err.Error(), SeverityError)
		return err
	}

	if b.output != "" {
		p.Form.Set(b.output, res.Output)
	}
	p.Notifier.Notify(res.Message, SeveritySuccess)
	return nil
}
