package progress

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(io.Discard).(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter(io.Discard).(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestReaderCountsBytes(t *testing.T) {
	var out bytes.Buffer
	rep := &CIReporter{Out: &out}
	rep.Start(11, "greeting.txt")

	data, err := io.ReadAll(Reader(strings.NewReader("hello world"), rep))
	if err != nil {
		t.Fatal(err)
	}
	rep.Finish()

	if string(data) != "hello world" {
		t.Errorf("data = %q", data)
	}
	if rep.done != 11 {
		t.Errorf("done = %d, want 11", rep.done)
	}
	if !strings.Contains(out.String(), "[11/11 bytes]") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTerminalReporter(t *testing.T) {
	var out bytes.Buffer
	rep := &TerminalReporter{Out: &out}
	rep.Start(4, "data")
	if _, err := io.ReadAll(Reader(strings.NewReader("abcd"), rep)); err != nil {
		t.Fatal(err)
	}
	rep.Finish()
	if rep.bar.State().CurrentNum != 4 {
		t.Errorf("bar position = %d", rep.bar.State().CurrentNum)
	}
}
