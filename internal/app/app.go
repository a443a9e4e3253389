package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/felixbrock/ragassistant/internal/metrics"
)

const visitorIdleTTL = 10 * time.Minute

// ComponentBuilder supplies the views the app mounts.
type ComponentBuilder struct {
	Index func() templ.Component
	Error func(code int, title string, msg string) templ.Component
}

type App struct {
	Config           Config
	ComponentBuilder ComponentBuilder
	Metrics          *metrics.Metrics
}

// Start serves until ctx is cancelled, then shuts down gracefully within
// Config.ShutdownTimeout.
func (a App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", a.Config.Port),
		Handler:           a.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port), "env", a.Config.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", a.Config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
