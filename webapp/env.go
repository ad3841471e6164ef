package webapp

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must
// implement. Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	healthCheckPath() string
	logLevel() zapcore.Level
	otelExporter() string
	responseBufferLimit() int
}

// BaseEnvironment contains the required webapp environment variables. Embed
// this in your custom environment struct.
type BaseEnvironment struct {
	Port            int           `env:"ROUTA_PORT" envDefault:"8080"`
	ServiceName     string        `env:"ROUTA_SERVICE_NAME,required"`
	HealthCheckPath string        `env:"ROUTA_HEALTH_CHECK_PATH" envDefault:"/healthz"`
	LogLevel        zapcore.Level `env:"ROUTA_LOG_LEVEL" envDefault:"info"`
	OtelExporter    string        `env:"ROUTA_OTEL_EXPORTER" envDefault:"stdout"`

	// ResponseBufferLimit caps the buffered response size in bytes, -1
	// means unbounded.
	ResponseBufferLimit int `env:"ROUTA_RESPONSE_BUFFER_LIMIT" envDefault:"-1"`
}

func (e BaseEnvironment) port() int {
	return e.Port
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) healthCheckPath() string {
	return e.HealthCheckPath
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) responseBufferLimit() int {
	return e.ResponseBufferLimit
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}

		return e, nil
	}
}
