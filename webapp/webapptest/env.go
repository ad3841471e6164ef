package webapptest

import (
	"net"
	"strconv"
	"testing"
)

// FreePort reserves an ephemeral port by briefly listening on it, so tests
// never collide on hardcoded ports when running alongside other processes.
func FreePort(t testing.TB) int {
	t.Helper()

	lst, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve test port: %v", err)
	}

	port := lst.Addr().(*net.TCPAddr).Port
	if err := lst.Close(); err != nil {
		t.Fatalf("release test port: %v", err)
	}

	return port
}

// Env provides a chainable builder for overriding [webapp.BaseEnvironment]
// env vars via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [webapp.BaseEnvironment] env vars to sensible test
// defaults. Each test needs its own port; use [FreePort] so parallel test
// binaries and other processes never clash. Tracing exports nowhere.
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("ROUTA_PORT", strconv.Itoa(port))
	t.Setenv("ROUTA_SERVICE_NAME", "test")
	t.Setenv("ROUTA_HEALTH_CHECK_PATH", "/healthz")
	t.Setenv("ROUTA_LOG_LEVEL", "error")
	t.Setenv("ROUTA_OTEL_EXPORTER", "none")

	return &Env{t: t}
}

// ServiceName overrides ROUTA_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("ROUTA_SERVICE_NAME", name)

	return e
}

// HealthCheckPath overrides ROUTA_HEALTH_CHECK_PATH.
func (e *Env) HealthCheckPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("ROUTA_HEALTH_CHECK_PATH", path)

	return e
}

// LogLevel overrides ROUTA_LOG_LEVEL.
func (e *Env) LogLevel(level string) *Env {
	e.t.Helper()
	e.t.Setenv("ROUTA_LOG_LEVEL", level)

	return e
}

// BufferLimit overrides ROUTA_RESPONSE_BUFFER_LIMIT.
func (e *Env) BufferLimit(n int) *Env {
	e.t.Helper()
	e.t.Setenv("ROUTA_RESPONSE_BUFFER_LIMIT", strconv.Itoa(n))

	return e
}
