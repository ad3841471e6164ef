package webapp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/routa-dev/routa"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerConfig holds optional configuration for the HTTP server.
type ServerConfig struct {
	HealthHandler routa.HandlerFunc
}

// ServerParams holds the dependencies for creating an HTTP server.
type ServerParams struct {
	fx.In

	Env        Environment
	Router     *routa.Router
	Logger     *zap.Logger
	TracerProv trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// NewServer creates an HTTP server with the dispatcher, tracing and the
// health endpoint configured around the routed application.
func NewServer(params ServerParams, cfg ServerConfig) *http.Server {
	// Tracing skips the health endpoint to avoid noisy probe spans.
	healthPath := params.Env.healthCheckPath()
	healthHandler := cfg.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}

	params.Router.Get(healthPath, healthHandler)

	dispatcher := routa.NewDispatcher(params.Router,
		routa.WithLogger(newZapDispatchLogger(params.Logger)),
		routa.WithBufferLimit(params.Env.responseBufferLimit()),
	)

	handler := withTracing(
		params.TracerProv, params.Propagator, params.Env.serviceName(), healthPath,
	)(dispatcher)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", params.Env.port()),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// startServerHook registers lifecycle hooks for the HTTP server.
func startServerHook(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func defaultHealthHandler(*routa.Context, routa.ResponseWriter, *http.Request) (any, error) {
	return nil, nil
}
