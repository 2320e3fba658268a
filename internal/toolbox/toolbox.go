package toolbox

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/viktools/viktools/internal/diagrams"
)

// Options holds the defaults applied when a request leaves a selector empty.
type Options struct {
	CipherAlgorithm string
	Encoding        Encoding
	HashAlgorithm   HashAlgorithm
	DiagramFormat   diagrams.Format
	DiagramServer   string
}

// DefaultOptions returns the selector defaults of the toolbox page.
func DefaultOptions() Options {
	return Options{
		CipherAlgorithm: "AES",
		Encoding:        EncodingBase64,
		HashAlgorithm:   HashSHA256,
		DiagramFormat:   diagrams.FormatPNG,
		DiagramServer:   diagrams.DefaultServerURL,
	}
}

// Toolbox runs the text transforms. It holds no mutable state and is safe
// for concurrent use.
type Toolbox struct {
	opts Options
}

// New creates a Toolbox; zero fields of opts fall back to DefaultOptions.
func New(opts Options) *Toolbox {
	def := DefaultOptions()
	if opts.CipherAlgorithm == "" {
		opts.CipherAlgorithm = def.CipherAlgorithm
	}
	if opts.Encoding == "" {
		opts.Encoding = def.Encoding
	}
	if opts.HashAlgorithm == "" {
		opts.HashAlgorithm = def.HashAlgorithm
	}
	if opts.DiagramFormat == "" {
		opts.DiagramFormat = def.DiagramFormat
	}
	if opts.DiagramServer == "" {
		opts.DiagramServer = def.DiagramServer
	}
	return &Toolbox{opts: opts}
}

// Options returns the effective defaults.
func (t *Toolbox) Options() Options { return t.opts }

type handler func(t *Toolbox, payload []byte) (Result, error)

// handle adapts a typed operation to a JSON payload handler.
func handle[R any](fn func(*Toolbox, R) (Result, error)) handler {
	return func(t *Toolbox, payload []byte) (Result, error) {
		var req R
		if len(bytes.TrimSpace(payload)) > 0 {
			if err := json.Unmarshal(payload, &req); err != nil {
				return Result{}, formatError("", "Invalid request", err)
			}
		}
		return fn(t, req)
	}
}

var operations = []string{
	OpEncrypt, OpDecrypt,
	OpEncode, OpDecode,
	OpHash,
	OpJWTEncode, OpJWTDecode, OpJWTVerify,
	OpDiagramGenerate, OpDiagramDownload,
}

var handlers = map[string]handler{
	OpEncrypt:         handle((*Toolbox).Encrypt),
	OpDecrypt:         handle((*Toolbox).Decrypt),
	OpEncode:          handle((*Toolbox).Encode),
	OpDecode:          handle((*Toolbox).Decode),
	OpHash:            handle((*Toolbox).Hash),
	OpJWTEncode:       handle((*Toolbox).JWTEncode),
	OpJWTDecode:       handle((*Toolbox).JWTDecode),
	OpJWTVerify:       handle((*Toolbox).JWTVerify),
	OpDiagramGenerate: handle((*Toolbox).DiagramGenerate),
	OpDiagramDownload: handle(func(t *Toolbox, _ struct{}) (Result, error) { return t.DiagramDownload() }),
}

// Operations lists the names accepted by Dispatch.
func Operations() []string {
	out := make([]string, len(operations))
	copy(out, operations)
	return out
}

// Dispatch decodes a JSON request for the named operation and runs it.
func (t *Toolbox) Dispatch(ctx context.Context, op string, payload []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	h, ok := handlers[op]
	if !ok {
		return Result{}, validationError(op, "Unknown operation "+op)
	}

	res, err := h(t, payload)
	if te, ok := err.(*Error); ok && te.Op == "" {
		te.Op = op
	}
	return res, err
}
