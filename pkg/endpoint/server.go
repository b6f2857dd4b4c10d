package endpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/rs/cors"
)

const shutdownTimeout = 10 * time.Second

// RunServer serves until the listener fails or an interrupt arrives, then
// shuts the server down gracefully. onShutdown runs after the server stopped
// accepting requests.
func RunServer(addr string, server *http.Server, onShutdown func()) error {
	if server == nil {
		return errors.New("nil http server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	slog.Info("starting server", slog.String("address", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}

		return nil
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.Any("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			slog.Warn("graceful shutdown timed out, forcing close", slog.String("address", addr))

			if closeErr := server.Close(); closeErr != nil {
				slog.Error("force close server failed", slog.String("address", addr), "error", closeErr)
			}
		case errors.Is(err, http.ErrServerClosed):
		default:
			return fmt.Errorf("shutdown server: %w", err)
		}
	}

	if onShutdown != nil {
		onShutdown()
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	slog.Info("server stopped", slog.String("address", addr))

	return nil
}

type ServerHandlerConfig struct {
	Mux            http.Handler
	AllowedOrigins []string
	Debug          bool
	Wrap           func(http.Handler) http.Handler
}

// NewServerHandler puts CORS in front of the mux and applies the optional
// outer wrapper (Sentry, compression, metrics).
func NewServerHandler(cfg ServerHandlerConfig) http.Handler {
	if cfg.Mux == nil {
		return http.NotFoundHandler()
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"If-None-Match",
			"User-Agent",
			portal.RequestIDHeader,
		},
		ExposedHeaders: []string{"ETag", portal.RequestIDHeader},
		Debug:          cfg.Debug,
	})

	handler := c.Handler(cfg.Mux)

	if cfg.Wrap != nil {
		handler = cfg.Wrap(handler)
	}

	return handler
}
