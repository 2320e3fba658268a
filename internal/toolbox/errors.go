package toolbox

import "errors"

// Kind classifies a toolbox failure.
type Kind string

const (
	// KindValidation means a required input was missing or out of range.
	KindValidation Kind = "validation"
	// KindFormat means the input could not be parsed.
	KindFormat Kind = "format"
	// KindUnsupported means the operation needs a backend service that this
	// toolbox does not talk to.
	KindUnsupported Kind = "unsupported"
)

// Error is returned by every toolbox operation. Message is the text shown
// to the user; Err, when set, is the underlying cause and is appended to it.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error

	// Placeholder is output a host may still display for unsupported
	// operations (the verify notice, the diagram stand-in).
	Placeholder string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or "" when err is not a toolbox error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// PlaceholderOf returns the placeholder output carried by err, if any.
func PlaceholderOf(err error) string {
	var te *Error
	if errors.As(err, &te) {
		return te.Placeholder
	}
	return ""
}

func validationError(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

func formatError(op, msg string, err error) *Error {
	return &Error{Kind: KindFormat, Op: op, Message: msg, Err: err}
}

func unsupportedError(op, msg, placeholder string) *Error {
	return &Error{Kind: KindUnsupported, Op: op, Message: msg, Placeholder: placeholder}
}

var (
	errInvalidCipherData = errors.New("invalid encrypted data")
	errInvalidJWT        = errors.New("invalid JWT format")
	errUnsupportedEncode = errors.New("unsupported encoding type")
	errUnsupportedDecode = errors.New("unsupported decoding type")
	errUnsupportedHash   = errors.New("unsupported hash algorithm")
)
