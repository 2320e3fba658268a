package ui

import "log/slog"

// ClipboardWriter puts text on a clipboard.
type ClipboardWriter interface {
	WriteText(text string) error
}

const copiedMessage = "Copied to clipboard!"

// Clipboard copies form fields to the clipboard, falling back to a second
// writer when the first one fails.
type Clipboard struct {
	form     *Form
	notifier *Notifier
	primary  ClipboardWriter
	fallback ClipboardWriter
	logger   *slog.Logger
}

// NewClipboard creates a Clipboard. fallback may be nil.
func NewClipboard(form *Form, notifier *Notifier, primary, fallback ClipboardWriter, logger *slog.Logger) *Clipboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Clipboard{form: form, notifier: notifier, primary: primary, fallback: fallback, logger: logger}
}

// Copy writes the value of field to the clipboard and reports success. It
// does nothing for unknown fields. A failing fallback is logged only.
func (c *Clipboard) Copy(field string) bool {
	text, ok := c.form.Value(field)
	if !ok {
		return false
	}

	var err error = errNoClipboard
	if c.primary != nil {
		err = c.primary.WriteText(text)
	}
	if err != nil {
		c.logger.Debug("primary clipboard failed, using fallback", "field", field, "error", err)
		if c.fallback != nil {
			if ferr := c.fallback.WriteText(text); ferr != nil {
				c.logger.Debug("fallback clipboard failed", "field", field, "error", ferr)
			}
		}
	}

	c.notifier.Notify(copiedMessage, SeveritySuccess)
	return true
}

type clipboardError string

func (e clipboardError) Error() string { return string(e) }

const errNoClipboard = clipboardError("no clipboard configured")
