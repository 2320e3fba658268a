package toolbox

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var errMalformedUTF8 = errors.New("decoded bytes are not valid UTF-8")

// Encode converts req.Input with the selected encoding.
func (t *Toolbox) Encode(req CodecRequest) (Result, error) {
	if strings.TrimSpace(req.Input) == "" {
		return Result{}, validationError(OpEncode, "Please enter the text to encode")
	}

	var (
		out string
		err error
	)
	switch t.encoding(req.Type) {
	case EncodingBase64:
		out = base64.StdEncoding.EncodeToString([]byte(req.Input))
	case EncodingURL:
		out = encodeURIComponent(req.Input)
	case EncodingHTML:
		out = htmlEscaper.Replace(req.Input)
	case EncodingHex:
		out = encodeHexCodeUnits(req.Input)
	case EncodingHexUTF8:
		out = hex.EncodeToString([]byte(req.Input))
	default:
		err = errUnsupportedEncode
	}
	if err != nil {
		return Result{}, formatError(OpEncode, "Encoding failed", err)
	}
	return Result{Output: out, Message: "Encoded successfully!"}, nil
}

// Decode reverses Encode for the selected encoding.
func (t *Toolbox) Decode(req CodecRequest) (Result, error) {
	if strings.TrimSpace(req.Input) == "" {
		return Result{}, validationError(OpDecode, "Please enter the text to decode")
	}

	var (
		out string
		err error
	)
	switch t.encoding(req.Type) {
	case EncodingBase64:
		var raw []byte
		if raw, err = decodeBase64(req.Input); err == nil {
			if !utf8.Valid(raw) {
				err = errMalformedUTF8
			}
			out = string(raw)
		}
	case EncodingURL:
		out, err = decodeURIComponent(req.Input)
	case EncodingHTML:
		out = htmlUnescaper.Replace(req.Input)
	case EncodingHex:
		out, err = decodeHexCodeUnits(req.Input)
	case EncodingHexUTF8:
		var raw []byte
		if raw, err = hex.DecodeString(strings.TrimSpace(req.Input)); err == nil {
			if !utf8.Valid(raw) {
				err = errMalformedUTF8
			}
			out = string(raw)
		}
	default:
		err = errUnsupportedDecode
	}
	if err != nil {
		return Result{}, formatError(OpDecode, "Decoding failed", err)
	}
	return Result{Output: out, Message: "Decoded successfully!"}, nil
}

func (t *Toolbox) encoding(e Encoding) Encoding {
	if e == "" {
		return t.opts.Encoding
	}
	return Encoding(strings.ToLower(string(e)))
}

// The replacers scan the input once, so "&amp;lt;" decodes to "&lt;" and
// never to "<".
var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// decodeBase64 accepts standard or URL-safe base64 with optional padding
// and embedded whitespace.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		case '-':
			return '+'
		case '_':
			return '/'
		}
		return r
	}, s)
	s = strings.TrimRight(s, "=")
	return base64.RawStdEncoding.DecodeString(s)
}

// uriUnreserved reports whether c passes through encodeURIComponent.
func uriUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// encodeURIComponent percent-encodes every UTF-8 byte outside the URI
// component unreserved set, using upper-case hex digits.
func encodeURIComponent(s string) string {
	const hexUpper = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexUpper[c>>4])
		b.WriteByte(hexUpper[c&0x0f])
	}
	return b.String()
}

// decodeURIComponent decodes every %XX escape and requires the result to be
// valid UTF-8. A '+' stays a '+'.
func decodeURIComponent(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(out) {
		return "", errors.New("URI malformed")
	}
	return out, nil
}

// encodeHexCodeUnits writes, for each character, the first UTF-16 code unit
// as lowercase hex padded to at least two digits. Characters above U+00FF
// therefore produce three or four digits and do not survive a decode; this
// matches values produced by earlier versions of the toolbox. Use
// EncodingHexUTF8 for a lossless form.
func encodeHexCodeUnits(s string) string {
	var b strings.Builder
	for _, r := range s {
		unit := r
		if r1, _ := utf16.EncodeRune(r); r1 != utf8.RuneError {
			unit = r1
		}
		fmt.Fprintf(&b, "%02x", unit)
	}
	return b.String()
}

// decodeHexCodeUnits reads the input two characters at a time and maps each
// pair to the character with that code.
func decodeHexCodeUnits(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i += 2 {
		end := min(i+2, len(s))
		chunk := s[i:end]
		code, err := strconv.ParseUint(chunk, 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid hex sequence %q at offset %d", chunk, i)
		}
		b.WriteRune(rune(code))
	}
	return b.String(), nil
}
