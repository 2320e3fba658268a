package diagrams

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Format is an output format a remote PlantUML renderer understands.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// DefaultServerURL is the public PlantUML rendering service.
const DefaultServerURL = "https://www.plantuml.com/plantuml"

// ErrEmptySource is returned when the diagram source is blank.
var ErrEmptySource = errors.New("diagram source is empty")

// ValidFormats lists the formats accepted by Generate.
var ValidFormats = []Format{FormatPNG, FormatSVG}

// ParseFormat normalises a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range ValidFormats {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported diagram format %q: must be one of png, svg", s)
}

// plantumlEncoding is the base64 variant used by PlantUML servers.
var plantumlEncoding = base64.NewEncoding("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_").WithPadding(base64.NoPadding)

// Preprocess makes sure the source is wrapped in a start/end tag pair.
// Sources without a start tag become @startuml diagrams; the end tag always
// matches the kind named by the start tag.
func Preprocess(source string) string {
	code := strings.TrimSpace(source)

	if !strings.HasPrefix(code, "@start") {
		code = "@startuml\n" + code
	}

	end := "@end" + diagramKind(code)
	last := strings.Fields(code[strings.LastIndex(code, "\n")+1:])
	if len(last) == 0 || last[0] != end {
		code = code + "\n" + end
	}
	return code
}

// Validate checks the structure of a diagram source: it must not be blank,
// and explicit start/end tags must agree on the diagram kind.
func Validate(source string) error {
	code := strings.TrimSpace(source)
	if code == "" {
		return ErrEmptySource
	}

	lines := strings.Split(code, "\n")
	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])

	startKind := "uml"
	body := lines
	if strings.HasPrefix(first, "@start") {
		startKind = diagramKind(first)
		body = body[1:]
	}

	if strings.HasPrefix(last, "@end") && len(body) > 0 {
		endKind := strings.TrimPrefix(strings.Fields(last)[0], "@end")
		if endKind != startKind {
			return fmt.Errorf("start tag @start%s does not match end tag @end%s", startKind, endKind)
		}
		body = body[:len(body)-1]
	}

	for _, line := range body {
		if strings.TrimSpace(line) != "" {
			return nil
		}
	}
	return fmt.Errorf("diagram @start%s has no content", startKind)
}

// Encode produces the compressed text encoding PlantUML servers accept in
// their URL path.
func Encode(source string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("creating deflate writer: %w", err)
	}
	if _, err := w.Write([]byte(source)); err != nil {
		return "", fmt.Errorf("compressing diagram: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compressing diagram: %w", err)
	}
	// The tail group is zero-padded to three bytes so the text always ends
	// in a full four-character group.
	if rem := buf.Len() % 3; rem != 0 {
		buf.Write(make([]byte, 3-rem))
	}
	return plantumlEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. Padding bytes after the final deflate block are
// ignored, so unpadded text decodes too.
func Decode(encoded string) (string, error) {
	raw, err := plantumlEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding diagram text: %w", err)
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return "", fmt.Errorf("inflating diagram text: %w", err)
	}
	return out.String(), nil
}

// RemoteURL returns the address at which server would render source in the
// given format. Nothing is fetched.
func RemoteURL(server string, format Format, source string) (string, error) {
	if server == "" {
		server = DefaultServerURL
	}
	encoded, err := Encode(Preprocess(source))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(server, "/") + "/" + string(format) + "/" + encoded, nil
}

// diagramKind returns the kind named by a leading @start tag ("uml",
// "mindmap", ...), defaulting to "uml".
func diagramKind(code string) string {
	if !strings.HasPrefix(code, "@start") {
		return "uml"
	}
	tag := strings.Fields(code)[0]
	if kind := strings.TrimPrefix(tag, "@start"); kind != "" {
		return kind
	}
	return "uml"
}
