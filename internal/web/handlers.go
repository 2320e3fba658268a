package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/ui"
)

// maxBodyBytes caps request bodies of the JSON API.
const maxBodyBytes = 1 << 20

type notificationJSON struct {
	ID         string      `json:"id,omitempty"`
	Message    string      `json:"message"`
	Severity   ui.Severity `json:"severity"`
	LifetimeMS int64       `json:"lifetime_ms"`
}

// opResponse is the JSON response of a successful operation.
type opResponse struct {
	Output       string           `json:"output"`
	Notification notificationJSON `json:"notification"`
}

// opErrorResponse is the JSON response of a failed operation.
type opErrorResponse struct {
	Error        string           `json:"error"`
	Kind         toolbox.Kind     `json:"kind,omitempty"`
	Placeholder  string           `json:"placeholder,omitempty"`
	PreviewHTML  string           `json:"preview_html,omitempty"`
	Notification notificationJSON `json:"notification"`
}

type defaultsResponse struct {
	Seeds     toolbox.Seeds       `json:"seeds"`
	Selectors map[string]string   `json:"selectors"`
	Choices   map[string][]string `json:"choices"`
	Lifetime  int64               `json:"lifetime_ms"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (w *Web) notification(message string, severity ui.Severity) notificationJSON {
	return notificationJSON{Message: message, Severity: severity, LifetimeMS: w.lifetime.Milliseconds()}
}

func (w *Web) handleOperations(rw http.ResponseWriter, r *http.Request) {
	writeJSON(rw, http.StatusOK, map[string][]string{"operations": toolbox.Operations()})
}

func (w *Web) handleDefaults(rw http.ResponseWriter, r *http.Request) {
	opts := w.toolbox.Options()
	writeJSON(rw, http.StatusOK, defaultsResponse{
		Seeds: toolbox.Defaults(w.now()),
		Selectors: map[string]string{
			ui.FieldCryptoAlgorithm: opts.CipherAlgorithm,
			ui.FieldEncodingType:    string(opts.Encoding),
			ui.FieldHashAlgorithm:   string(opts.HashAlgorithm),
			ui.FieldPlantUMLFormat:  string(opts.DiagramFormat),
		},
		Choices: map[string][]string{
			ui.FieldCryptoAlgorithm: toolbox.CipherAlgorithms,
			ui.FieldEncodingType:    toStrings(toolbox.Encodings),
			ui.FieldHashAlgorithm:   toStrings(toolbox.HashAlgorithms),
			ui.FieldPlantUMLFormat:  toStrings(diagrams.ValidFormats),
		},
		Lifetime: w.lifetime.Milliseconds(),
	})
}

func (w *Web) handleOperation(rw http.ResponseWriter, r *http.Request) {
	op := chi.URLParam(r, "op")
	if !slices.Contains(toolbox.Operations(), op) {
		writeJSON(rw, http.StatusNotFound, map[string]string{"error": "unknown operation: " + op})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(rw, http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
		return
	}

	res, err := w.toolbox.Dispatch(r.Context(), op, body)
	if err != nil {
		w.logger.Debug("operation failed", "op", op, "kind", string(toolbox.KindOf(err)), "error", err)
		resp := opErrorResponse{
			Error:        err.Error(),
			Kind:         toolbox.KindOf(err),
			Placeholder:  toolbox.PlaceholderOf(err),
			Notification: w.notification(err.Error(), ui.SeverityError),
		}
		if op == toolbox.OpDiagramGenerate && resp.Kind == toolbox.KindUnsupported {
			resp.PreviewHTML = w.previewHTML(body)
		}
		writeJSON(rw, statusFor(err), resp)
		return
	}

	writeJSON(rw, http.StatusOK, opResponse{
		Output:       res.Output,
		Notification: w.notification(res.Message, ui.SeveritySuccess),
	})
}

// previewHTML renders the diagram placeholder for the page. Failures only
// drop the preview.
func (w *Web) previewHTML(body []byte) string {
	var req toolbox.DiagramRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ""
	}
	ph, err := w.toolbox.DiagramPlaceholder(req)
	if err != nil {
		return ""
	}
	html, err := ph.RenderHTML()
	if err != nil {
		w.logger.Warn("rendering diagram placeholder", "error", err)
		return ""
	}
	return html
}

func (w *Web) handleValidate(rw http.ResponseWriter, r *http.Request) {
	var req toolbox.DiagramRequest
	if err := json.NewDecoder(http.MaxBytesReader(rw, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(rw, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := diagrams.Validate(req.Source); err != nil {
		writeJSON(rw, http.StatusOK, validateResponse{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(rw, http.StatusOK, validateResponse{Valid: true})
}

// statusFor maps a toolbox error to an HTTP status.
func statusFor(err error) int {
	switch toolbox.KindOf(err) {
	case toolbox.KindValidation:
		return http.StatusBadRequest
	case toolbox.KindFormat:
		return http.StatusUnprocessableEntity
	case toolbox.KindUnsupported:
		return http.StatusNotImplemented
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
