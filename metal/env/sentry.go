package env

type SentryEnvironment struct {
	DSN string `validate:"required"`
	CSP string `validate:"required"`
}
