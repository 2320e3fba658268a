package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides byte-level progress feedback while a file is hashed.
type Reporter interface {
	Start(total int64, description string)
	Add(n int)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: w}
	}
	return &TerminalReporter{Out: w}
}

// TerminalReporter displays a byte progress bar in the terminal.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int64, description string) {
	r.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Add(n int) {
	if r.bar != nil {
		_ = r.bar.Add(n)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints a start and finish line suitable for CI logs.
type CIReporter struct {
	Out   io.Writer
	total int64
	done  int64
	label string
}

func (r *CIReporter) Start(total int64, description string) {
	r.total, r.done, r.label = total, 0, description
	fmt.Fprintf(r.Out, "Hashing %s (%d bytes)\n", description, total)
}

func (r *CIReporter) Add(n int) {
	r.done += int64(n)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Hashed %s [%d/%d bytes]\n", r.label, r.done, r.total)
}

// Reader wraps r so that every read advances rep.
func Reader(r io.Reader, rep Reporter) io.Reader {
	return &reader{r: r, rep: rep}
}

type reader struct {
	r   io.Reader
	rep Reporter
}

func (c *reader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.rep.Add(n)
	}
	return n, err
}
