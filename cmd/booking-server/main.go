package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/slotwise/slot-booking/internal/api"
	"github.com/slotwise/slot-booking/internal/config"
	"github.com/slotwise/slot-booking/internal/slot"
)

const (
	version = "0.1.0"

	// Daily booking window: one slot per hour, 10:00 through 17:00.
	openingHour = 10
	closingHour = 17
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("booking-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s static_dir=%s", cfg.Env, cfg.HTTPPort, cfg.StaticDir)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := slot.NewMemoryStore(openingHour, closingHour)
	log.Printf("initialized %d slots (%d:00 - %d:00)", closingHour-openingHour, openingHour, closingHour)

	handler := api.NewRouter(api.RouterConfig{
		Store:     store,
		StaticDir: cfg.StaticDir,
		Env:       cfg.Env,
		Version:   version,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s", cfg.HTTPPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-rootCtx.Done():
		log.Println("shutting down booking-server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}
}
