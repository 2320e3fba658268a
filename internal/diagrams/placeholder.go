package diagrams

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// Placeholder stands in for a rendered diagram.
type Placeholder struct {
	Source    string
	Format    Format
	RemoteURL string
}

// Markdown renders the placeholder text shown instead of a diagram.
func (p Placeholder) Markdown() string {
	fence := codeFence(p.Source)

	var b strings.Builder
	b.WriteString("**PlantUML diagram generation requires a remote rendering service.**\n\n")
	b.WriteString("Submitted source:\n\n")
	b.WriteString(fence + "plantuml\n")
	b.WriteString(strings.TrimRight(p.Source, "\n"))
	b.WriteString("\n" + fence + "\n\n")
	b.WriteString(fmt.Sprintf("Format: %s\n", strings.ToUpper(string(p.Format))))
	if p.RemoteURL != "" {
		b.WriteString(fmt.Sprintf("\nRemote preview: <%s>\n", p.RemoteURL))
	}
	return b.String()
}

// markdown is shared by every RenderHTML call. Raw HTML in the source is
// never passed through.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// RenderHTML converts the placeholder into an HTML fragment for the web page.
func (p Placeholder) RenderHTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(p.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("rendering placeholder: %w", err)
	}
	return `<div class="placeholder">` + buf.String() + `</div>`, nil
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
