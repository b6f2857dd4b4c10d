package env

// TracingEnvironment holds configuration for OpenTelemetry tracing
type TracingEnvironment struct {
	Enabled  bool
	Endpoint string `validate:"required_if=Enabled true,omitempty,url"`
}

func NewTracingEnvironment() TracingEnvironment {
	enabled := GetEnvVar("ENV_TRACING_ENABLED") == "true"
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = "http://localhost:4318"
	}

	return TracingEnvironment{
		Enabled:  enabled,
		Endpoint: endpoint,
	}
}
