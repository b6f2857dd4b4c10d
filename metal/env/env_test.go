package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnvVar(t *testing.T) {
	t.Setenv("FOO", " bar ")

	if val := GetEnvVar("FOO"); val != "bar" {
		t.Fatalf("expected bar got %q", val)
	}
}

func TestGetEnvVarOr(t *testing.T) {
	t.Setenv("FOO", "")

	if val := GetEnvVarOr("FOO", "fallback"); val != "fallback" {
		t.Fatalf("expected fallback got %q", val)
	}
}

func TestGetSecretOrEnv_File(t *testing.T) {
	dir := t.TempDir()
	previous := SecretsDir
	SecretsDir = dir
	t.Cleanup(func() { SecretsDir = previous })

	os.WriteFile(filepath.Join(dir, "testsecret"), []byte("secret\n"), 0644)
	t.Setenv("ENV", "env")

	if got := GetSecretOrEnv("testsecret", "ENV"); got != "secret" {
		t.Fatalf("expected secret got %q", got)
	}
}

func TestGetSecretOrEnv_Env(t *testing.T) {
	t.Setenv("ENV", "envvalue")

	if got := GetSecretOrEnv("missing", "ENV"); got != "envvalue" {
		t.Fatalf("expected envvalue got %q", got)
	}
}

func TestAppEnvironmentChecks(t *testing.T) {
	env := AppEnvironment{Type: "production"}

	if !env.IsProduction() {
		t.Fatalf("expected production")
	}

	if env.IsStaging() || env.IsLocal() {
		t.Fatalf("unexpected type flags")
	}

	env.Type = "staging"
	if !env.IsStaging() {
		t.Fatalf("expected staging")
	}

	env.Type = "local"
	if !env.IsLocal() {
		t.Fatalf("expected local")
	}
}

func TestNetEnvironment(t *testing.T) {
	net := NetEnvironment{HttpHost: "localhost", HttpPort: "8080"}

	if net.GetHostURL() != "localhost:8080" {
		t.Fatalf("wrong host url")
	}
}

func TestLogsEnvironmentLevel(t *testing.T) {
	if (LogsEnvironment{Level: "debug"}).SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug")
	}

	if (LogsEnvironment{Level: "unknown"}).SlogLevel() != slog.LevelInfo {
		t.Fatalf("expected info fallback")
	}
}

func TestContentFixturePath(t *testing.T) {
	e := ContentEnvironment{FixturesDir: "storage/fixture"}

	if got := e.FixturePath("projects"); got != filepath.Join("storage", "fixture", "projects.json") {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestParseOrigins(t *testing.T) {
	got := ParseOrigins(" https://a.dev, ,https://b.dev ")

	if len(got) != 2 || got[0] != "https://a.dev" || got[1] != "https://b.dev" {
		t.Fatalf("unexpected origins %v", got)
	}
}

func TestNewTracingEnvironment(t *testing.T) {
	t.Setenv("ENV_TRACING_ENABLED", "true")
	t.Setenv("ENV_TRACING_OTLP_ENDPOINT", "")

	tracing := NewTracingEnvironment()

	if !tracing.Enabled || tracing.Endpoint != "http://localhost:4318" {
		t.Fatalf("unexpected tracing env %+v", tracing)
	}
}

func TestPingEnvironmentCredentials(t *testing.T) {
	ping := PingEnvironment{Username: " user-0123456789ab ", Password: "pass-0123456789ab"}

	if ping.HasInvalidCreds("user-0123456789ab", "pass-0123456789ab") {
		t.Fatalf("expected matching credentials to pass")
	}

	cases := [][2]string{
		{"user-0123456789ab", "pass-0123456789aX"},
		{"user-0123456789ab", "pass"},
		{"", ""},
		{"other-0123456789a", "pass-0123456789ab"},
	}

	for _, c := range cases {
		if !ping.HasInvalidCreds(c[0], c[1]) {
			t.Fatalf("expected %q / %q to be rejected", c[0], c[1])
		}
	}
}
