package toolbox

import (
	"strings"

	"github.com/viktools/viktools/internal/diagrams"
)

const (
	diagramUnsupported  = "Diagram generation requires backend API support"
	downloadUnsupported = "Download requires backend API support"
)

// DiagramGenerate never renders. It reports that a rendering service is
// required and returns the placeholder markdown as the error placeholder.
func (t *Toolbox) DiagramGenerate(req DiagramRequest) (Result, error) {
	placeholder, err := t.DiagramPlaceholder(req)
	if err != nil {
		return Result{}, err
	}
	return Result{}, unsupportedError(OpDiagramGenerate, diagramUnsupported, placeholder.Markdown())
}

// DiagramPlaceholder validates req and builds the stand-in shown instead of
// a diagram.
func (t *Toolbox) DiagramPlaceholder(req DiagramRequest) (diagrams.Placeholder, error) {
	if strings.TrimSpace(req.Source) == "" {
		return diagrams.Placeholder{}, validationError(OpDiagramGenerate, "Please enter PlantUML source")
	}

	format := t.opts.DiagramFormat
	if req.Format != "" {
		f, err := diagrams.ParseFormat(req.Format)
		if err != nil {
			return diagrams.Placeholder{}, &Error{Kind: KindValidation, Op: OpDiagramGenerate, Message: "Invalid diagram format", Err: err}
		}
		format = f
	}

	remote, err := diagrams.RemoteURL(t.opts.DiagramServer, format, req.Source)
	if err != nil {
		return diagrams.Placeholder{}, formatError(OpDiagramGenerate, "Diagram encoding failed", err)
	}

	return diagrams.Placeholder{Source: req.Source, Format: format, RemoteURL: remote}, nil
}

// DiagramDownload is always unavailable.
func (t *Toolbox) DiagramDownload() (Result, error) {
	return Result{}, unsupportedError(OpDiagramDownload, downloadUnsupported, "")
}
