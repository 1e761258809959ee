package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slotwise/slot-booking/internal/slot"
)

type RouterConfig struct {
	Store     slot.Store
	StaticDir string // "" disables static serving
	Env       string
	Version   string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	health := NewHealthHandler(cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)

	r.Get("/slots", listSlotsHandler(cfg.Store))
	r.Post("/book", bookSlotHandler(cfg.Store))
	r.Post("/cancel", cancelBookingHandler(cfg.Store))

	// Frontend assets; API routes above take precedence.
	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}
