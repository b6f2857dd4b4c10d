package kernel

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/pkg/agenda"
	"github.com/StevenGabule/portfolio/pkg/carousel"
	"github.com/StevenGabule/portfolio/pkg/llogs"
	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Debug:       env.App.IsLocal(),
		Environment: env.App.Type,
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeStore(env *env.Environment) *content.Store {
	store, err := content.Load(env.Content.PostsDir)

	if err != nil {
		panic("content: error loading posts from " + env.Content.PostsDir + ": " + err.Error())
	}

	return store
}

// MakeSpotlight sizes the testimonial carousel after the reviews fixture.
func MakeSpotlight(env *env.Environment) *carousel.Carousel {
	type reviews struct {
		Data []struct{} `json:"data"`
	}

	data, err := portal.ParseJsonFile[reviews](env.Content.FixturePath("reviews"))

	if err != nil {
		panic("content: error reading the reviews fixture: " + err.Error())
	}

	return carousel.New(len(data.Data))
}

func MakeSpotlightEngine(env *env.Environment, spotlight *carousel.Carousel) *agenda.Engine {
	engine, err := agenda.New(
		env.Content.CarouselSchedule,
		spotlight.Job,
		agenda.WithEngineName("spotlight"),
		agenda.WithEngineLogger(slog.Default().With("component", "carousel")),
		agenda.WithEngineJobTimeout(time.Second),
	)

	if err != nil {
		panic("agenda: error creating the spotlight engine: " + err.Error())
	}

	return engine
}

func MakeTrustedProxies(env *env.Environment) portal.TrustedProxies {
	proxies, err := portal.NewTrustedProxies(env.Network.TrustedProxies)

	if err != nil {
		panic("network: " + err.Error())
	}

	return proxies
}

func MakeTracer(env *env.Environment) *portal.TracerProvider {
	tracer, err := portal.NewTracerProvider(env)

	if err != nil {
		panic("tracing: error creating the tracer provider: " + err.Error())
	}

	return tracer
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost:       env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort:       env.GetEnvVar("ENV_HTTP_PORT"),
		TrustedProxies: portal.FilterNonEmpty(strings.Split(env.GetEnvVar("ENV_HTTP_TRUSTED_PROXIES"), ",")),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetSecretOrEnv("sentry_dsn", "ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	pingEnv := env.PingEnvironment{
		Username: env.GetSecretOrEnv("ping_username", "ENV_PING_USERNAME"),
		Password: env.GetSecretOrEnv("ping_password", "ENV_PING_PASSWORD"),
	}

	contentEnv := env.ContentEnvironment{
		PostsDir:         env.GetEnvVarOr("ENV_POSTS_DIR", env.DefaultPostsDir),
		FixturesDir:      env.GetEnvVarOr("ENV_FIXTURES_DIR", env.DefaultFixturesDir),
		CarouselSchedule: env.GetEnvVarOr("ENV_CAROUSEL_SCHEDULE", env.DefaultCarouselSchedule),
	}

	corsEnv := env.CorsEnvironment{
		AllowedOrigins: env.ParseOrigins(env.GetEnvVar("ENV_CORS_ALLOWED_ORIGINS")),
	}

	tracingEnv := env.NewTracingEnvironment()

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(pingEnv); err != nil {
		panic(errorSuffix + "invalid [ping] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(contentEnv); err != nil {
		panic(errorSuffix + "invalid [content] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(corsEnv); err != nil {
		panic(errorSuffix + "invalid [CORS] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(tracingEnv); err != nil {
		panic(errorSuffix + "invalid [tracing] model: " + validate.GetErrorsAsJson())
	}

	portfolio := &env.Environment{
		App:     app,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Ping:    pingEnv,
		Content: contentEnv,
		Cors:    corsEnv,
		Tracing: tracingEnv,
	}

	if _, err := validate.Rejects(portfolio); err != nil {
		panic(errorSuffix + "invalid [portfolio] model: " + validate.GetErrorsAsJson())
	}

	return portfolio
}
