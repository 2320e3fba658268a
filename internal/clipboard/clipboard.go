// Package clipboard provides the clipboard writers used by the page
// controller: the operating system clipboard and the OSC 52 terminal
// escape sequence.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no system clipboard utility exists.
var ErrUnavailable = errors.New("system clipboard unavailable")

// System writes to the operating system clipboard.
type System struct{}

// WriteText implements ui.ClipboardWriter.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// Terminal sets the clipboard of the controlling terminal with an OSC 52
// sequence. It works over SSH and inside tmux or screen.
type Terminal struct {
	// Out receives the sequence. Nil opens /dev/tty.
	Out io.Writer
	// Getenv looks up TMUX and TERM. Nil uses os.Getenv.
	Getenv func(string) string
}

// WriteText implements ui.ClipboardWriter.
func (t Terminal) WriteText(text string) error {
	out := t.Out
	if out == nil {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer tty.Close()
		out = tty
	}

	if _, err := Sequence(text, t.getenv).WriteTo(out); err != nil {
		return fmt.Errorf("writing OSC 52 sequence: %w", err)
	}
	return nil
}

func (t Terminal) getenv(key string) string {
	if t.Getenv != nil {
		return t.Getenv(key)
	}
	return os.Getenv(key)
}

// Sequence builds the OSC 52 sequence for text, wrapped for tmux or screen
// when the environment says so.
func Sequence(text string, getenv func(string) string) osc52.Sequence {
	seq := osc52.New(text)
	term := getenv("TERM")
	switch {
	case getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq
}
