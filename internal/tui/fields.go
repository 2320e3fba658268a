package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/ui"
)

type fieldKind int

const (
	kindLine fieldKind = iota
	kindArea
	kindSelect
)

// field is one editable input bound to a form field id.
type field struct {
	id      string
	label   string
	kind    fieldKind
	choices []string
	choice  int
	line    textinput.Model
	area    textarea.Model
}

func newLineField(id, label, placeholder string, secret bool) *field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 4096
	in.Width = 60
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return &field{id: id, label: label, kind: kindLine, line: in}
}

func newAreaField(id, label, placeholder string, height int) *field {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(height)
	return &field{id: id, label: label, kind: kindArea, area: ta}
}

func newSelectField[T ~string](id, label string, choices []T) *field {
	f := &field{id: id, label: label, kind: kindSelect}
	for _, c := range choices {
		f.choices = append(f.choices, string(c))
	}
	return f
}

func (f *field) value() string {
	switch f.kind {
	case kindLine:
		return f.line.Value()
	case kindArea:
		return f.area.Value()
	default:
		if len(f.choices) == 0 {
			return ""
		}
		return f.choices[f.choice]
	}
}

func (f *field) setValue(v string) {
	switch f.kind {
	case kindLine:
		f.line.SetValue(v)
	case kindArea:
		f.area.SetValue(v)
	default:
		for i, c := range f.choices {
			if strings.EqualFold(c, v) {
				f.choice = i
				return
			}
		}
	}
}

func (f *field) focus() tea.Cmd {
	switch f.kind {
	case kindLine:
		return f.line.Focus()
	case kindArea:
		return f.area.Focus()
	}
	return nil
}

func (f *field) blur() {
	switch f.kind {
	case kindLine:
		f.line.Blur()
	case kindArea:
		f.area.Blur()
	}
}

// cycle moves a select field by delta, wrapping around.
func (f *field) cycle(delta int) {
	if f.kind != kindSelect || len(f.choices) == 0 {
		return
	}
	f.choice = (f.choice + delta + len(f.choices)) % len(f.choices)
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.kind {
	case kindLine:
		f.line, cmd = f.line.Update(msg)
	case kindArea:
		f.area, cmd = f.area.Update(msg)
	}
	return cmd
}

func (f *field) view(focused bool) string {
	switch f.kind {
	case kindSelect:
		var parts []string
		for i, c := range f.choices {
			if i == f.choice {
				parts = append(parts, choiceActiveStyle.Render(c))
			} else {
				parts = append(parts, choiceStyle.Render(c))
			}
		}
		line := strings.Join(parts, " ")
		if focused {
			line = "‹ " + line + " ›"
		}
		return line
	case kindArea:
		return f.area.View()
	default:
		return f.line.View()
	}
}

// section describes the inputs, output and actions of one panel.
type section struct {
	inputs    []string
	output    string
	primary   ui.Action
	secondary ui.Action
}

func (s section) actionLabel(a ui.Action) string {
	if a == "" {
		return ""
	}
	return strings.ReplaceAll(string(a), "-", " ")
}

var sections = map[string]section{
	ui.TabCrypto: {
		inputs:    []string{ui.FieldCryptoInput, ui.FieldCryptoAlgorithm, ui.FieldCryptoKey},
		output:    ui.FieldCryptoOutput,
		primary:   ui.ActionEncrypt,
		secondary: ui.ActionDecrypt,
	},
	ui.TabEncoding: {
		inputs:    []string{ui.FieldEncodingInput, ui.FieldEncodingType},
		output:    ui.FieldEncodingOutput,
		primary:   ui.ActionEncode,
		secondary: ui.ActionDecode,
	},
	ui.TabHash: {
		inputs:  []string{ui.FieldHashInput, ui.FieldHashAlgorithm},
		output:  ui.FieldHashOutput,
		primary: ui.ActionHash,
	},
	ui.TabPlantUML: {
		inputs:    []string{ui.FieldPlantUMLInput, ui.FieldPlantUMLFormat},
		output:    ui.FieldPlantUMLPreview,
		primary:   ui.ActionDiagramGenerate,
		secondary: ui.ActionDiagramDownload,
	},
}

var jwtSections = map[string]section{
	ui.JWTTabEncode: {
		inputs:  []string{ui.FieldJWTHeader, ui.FieldJWTPayload, ui.FieldJWTSecret},
		output:  ui.FieldJWTOutput,
		primary: ui.ActionJWTEncode,
	},
	ui.JWTTabDecode: {
		inputs:  []string{ui.FieldJWTToken},
		output:  ui.FieldJWTOutput,
		primary: ui.ActionJWTDecode,
	},
	ui.JWTTabVerify: {
		inputs:  []string{ui.FieldJWTTokenVerify, ui.FieldJWTSecretVerify},
		output:  ui.FieldJWTOutput,
		primary: ui.ActionJWTVerify,
	},
}

func newFields() map[string]*field {
	list := []*field{
		newAreaField(ui.FieldCryptoInput, "Text", "Text to encrypt or decrypt", 4),
		newSelectField(ui.FieldCryptoAlgorithm, "Algorithm", toolbox.CipherAlgorithms),
		newLineField(ui.FieldCryptoKey, "Key", "Secret key", true),

		newAreaField(ui.FieldEncodingInput, "Text", "Text to encode or decode", 4),
		newSelectField(ui.FieldEncodingType, "Encoding", toolbox.Encodings),

		newAreaField(ui.FieldHashInput, "Text", "Text to hash", 4),
		newSelectField(ui.FieldHashAlgorithm, "Algorithm", toolbox.HashAlgorithms),

		newAreaField(ui.FieldJWTHeader, "Header", "JSON header", 4),
		newAreaField(ui.FieldJWTPayload, "Payload", "JSON payload", 6),
		newLineField(ui.FieldJWTSecret, "Secret", "Signing secret", true),
		newLineField(ui.FieldJWTToken, "Token", "eyJ...", false),
		newLineField(ui.FieldJWTTokenVerify, "Token", "eyJ...", false),
		newLineField(ui.FieldJWTSecretVerify, "Secret", "Signing secret", true),

		newAreaField(ui.FieldPlantUMLInput, "Source", "@startuml ... @enduml", 8),
		newSelectField(ui.FieldPlantUMLFormat, "Format", diagrams.ValidFormats),
	}
	out := make(map[string]*field, len(list))
	for _, f := range list {
		out[f.id] = f
	}
	return out
}
