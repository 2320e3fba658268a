package web

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketRequest is the incoming websocket message format.
type socketRequest struct {
	ID      string          `json:"id"`
	Op      string          `json:"op"`
	Request json.RawMessage `json:"request"`
}

// socketMessage is the outgoing websocket message format.
type socketMessage struct {
	Type         string            `json:"type"` // "result", "error", "notification" or "dismiss"
	ID           string            `json:"id,omitempty"`
	Output       string            `json:"output,omitempty"`
	Message      string            `json:"message,omitempty"`
	Error        string            `json:"error,omitempty"`
	Kind         toolbox.Kind      `json:"kind,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty"`
	PreviewHTML  string            `json:"preview_html,omitempty"`
	Notification *notificationJSON `json:"notification,omitempty"`
}

// socket is one websocket client. Writes come from the read loop and from
// the notifier timer, so they are serialised.
type socket struct {
	conn *websocket.Conn
	web  *Web
	mu   sync.Mutex
}

func (s *socket) send(msg socketMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		s.web.logger.Debug("websocket write", "type", msg.Type, "error", err)
	}
}

func (s *socket) notify(n ui.Notification, shown bool) {
	if !shown {
		s.send(socketMessage{Type: "dismiss", ID: n.ID})
		return
	}
	s.send(socketMessage{
		Type: "notification",
		ID:   n.ID,
		Notification: &notificationJSON{
			ID:         n.ID,
			Message:    n.Message,
			Severity:   n.Severity,
			LifetimeMS: n.Lifetime.Milliseconds(),
		},
	})
}

func (w *Web) handleWebSocket(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		w.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	s := &socket{conn: conn, web: w}
	notifier := ui.NewNotifier(ui.WithLifetime(w.lifetime), ui.OnChange(s.notify))
	defer notifier.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				w.logger.Warn("websocket read", "error", err)
			}
			return
		}

		var req socketRequest
		if err := json.Unmarshal(data, &req); err != nil {
			s.send(socketMessage{Type: "error", Error: "invalid message format"})
			continue
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		if req.Op == "" {
			s.send(socketMessage{Type: "error", ID: req.ID, Error: "op is required"})
			continue
		}

		res, err := w.toolbox.Dispatch(r.Context(), req.Op, req.Request)
		if err != nil {
			msg := socketMessage{
				Type:        "error",
				ID:          req.ID,
				Error:       err.Error(),
				Kind:        toolbox.KindOf(err),
				Placeholder: toolbox.PlaceholderOf(err),
			}
			if req.Op == toolbox.OpDiagramGenerate && msg.Kind == toolbox.KindUnsupported {
				msg.PreviewHTML = w.previewHTML(req.Request)
			}
			s.send(msg)
			notifier.Notify(err.Error(), ui.SeverityError)
			continue
		}

		s.send(socketMessage{Type: "result", ID: req.ID, Output: res.Output, Message: res.Message})
		notifier.Notify(res.Message, ui.SeveritySuccess)
	}
}
