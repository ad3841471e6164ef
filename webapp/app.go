package webapp

import (
	"context"

	"github.com/routa-dev/routa"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	ServerConfig
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithFx adds fx options for dependency injection, typically fx.Provide of
// handler constructors the routing function requests.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// WithHealthHandler sets a custom health check handler. If not set, a
// default handler returning an empty 200 is used.
func WithHealthHandler(h routa.HandlerFunc) Option {
	return func(c *AppConfig) {
		c.HealthHandler = h
	}
}

// FxOptions assembles the full dependency graph for an app. Exposed so test
// helpers can build the identical graph on fxtest.
func FxOptions[E Environment](routing any, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	baseOpts := []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(routa.NewRouter),
		fx.Provide(routa.NewReverser),
		fx.Provide(func(e E) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(NewHTTPTransport),
		fx.Provide(NewHTTPClient),
		fx.Provide(NewRequestBuilder),
		fx.Supply(cfg.ServerConfig),
		fx.Provide(NewServer),
		fx.Invoke(routing),
		fx.Invoke(startServerHook),
	}

	return append(baseOpts, cfg.FxOptions...)
}

// NewApp creates a batteries-included app with dependency injection.
//
// The routing function can request any types that are provided via fx
// options. At minimum it should accept *routa.Router:
//
//	webapp.NewApp[Env](func(r *routa.Router, h *Handlers) {
//	    r.Get("/items/:id", h.GetItem)
//	}, webapp.WithFx(fx.Provide(NewHandlers))).Run()
func NewApp[E Environment](routing any, opts ...Option) *App {
	return &App{app: fx.New(FxOptions[E](routing, opts...)...)}
}

// Run starts the app and blocks until shutdown.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the app without blocking.
func (a *App) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

// Stop gracefully stops the app.
func (a *App) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}
