package kernel

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/metal/router"
	"github.com/StevenGabule/portfolio/pkg/agenda"
	"github.com/StevenGabule/portfolio/pkg/carousel"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/llogs"
	"github.com/StevenGabule/portfolio/pkg/middleware"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type App struct {
	router    *router.Router
	sentry    *portal.Sentry
	tracer    *portal.TracerProvider
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	store     *content.Store
	spotlight *carousel.Carousel
	engine    *agenda.Engine
	proxies   portal.TrustedProxies
}

func MakeApp(env *env.Environment, validator *portal.Validator) *App {
	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		tracer:    MakeTracer(env),
		store:     MakeStore(env),
		spotlight: MakeSpotlight(env),
		proxies:   MakeTrustedProxies(env),
	}

	app.engine = MakeSpotlightEngine(env, app.spotlight)

	app.SetRouter(router.Router{
		Env:       env,
		Mux:       baseHttp.NewServeMux(),
		Store:     app.store,
		Spotlight: app.spotlight,
		Validator: validator,
		Pipeline: middleware.Pipeline{
			Env:              env,
			PublicMiddleware: middleware.MakePublicMiddleware(),
		},
	})

	return &app
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	a.router.All()
}

// Start runs the background work: the testimonial spotlight rotation.
func (a *App) Start(ctx context.Context) error {
	if a.engine == nil {
		return nil
	}

	if err := a.engine.Start(ctx); err != nil {
		return err
	}

	slog.Info("spotlight rotation scheduled", "next", a.engine.Next().Format(portal.DatesLayout))

	return nil
}

// Handler assembles the outer HTTP stack. Metrics sit directly on the mux so
// they see the matched route pattern; the client address is resolved before
// anything logs or rate limits.
func (a *App) Handler() baseHttp.Handler {
	mux := a.GetMux()
	if mux == nil {
		return baseHttp.NotFoundHandler()
	}

	return endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:            middleware.RequestID(middleware.ClientIP(a.proxies, middleware.Metrics(mux))),
		AllowedOrigins: a.env.Cors.AllowedOrigins,
		Debug:          a.env.App.IsLocal(),
		Wrap: func(h baseHttp.Handler) baseHttp.Handler {
			if a.sentry != nil && a.sentry.Handler != nil {
				h = a.sentry.Handler.Handle(h)
			}

			return middleware.Brotli(h)
		},
	})
}
