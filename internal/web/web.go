// Package web serves the toolbox page, its JSON API and the websocket
// channel the page runs operations over. Each socket has its own notifier
// that pushes notifications and their dismissals.
package web

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/ui"
)

// Options configures the web front end.
type Options struct {
	// Lifetime is how long notifications stay up. Zero means
	// ui.DefaultLifetime.
	Lifetime time.Duration
	Logger   *slog.Logger
	Now      func() time.Time
}

// Web provides the toolbox page and API.
type Web struct {
	toolbox  *toolbox.Toolbox
	lifetime time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a new Web.
func New(tb *toolbox.Toolbox, opts Options) *Web {
	if opts.Lifetime <= 0 {
		opts.Lifetime = ui.DefaultLifetime
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Web{toolbox: tb, lifetime: opts.Lifetime, logger: opts.Logger, now: opts.Now}
}

// RegisterRoutes mounts the page, API and websocket routes onto r. The
// websocket route stays outside the request timeout.
func (w *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", w.ServeIndex)
	r.Get("/ws/toolbox", w.handleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/api/operations", w.handleOperations)
		r.Get("/api/defaults", w.handleDefaults)
		r.Post("/api/ops/{op}", w.handleOperation)
		r.Post("/api/diagram/validate", w.handleValidate)
	})
}
