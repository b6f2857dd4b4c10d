package kernel

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/metal/router"
	"github.com/getsentry/sentry-go"
)

func (a *App) SetRouter(router router.Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

// Shutdown stops the background work and flushes telemetry. It runs once the
// server stopped accepting requests.
func (a *App) Shutdown() {
	if a.engine != nil && a.engine.Running() {
		a.engine.Stop()
	}

	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("tracer shutdown failed", "error", err)
	}

	if a.sentry != nil {
		sentry.Flush(2 * time.Second)
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetStore() *content.Store {
	return a.store
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
