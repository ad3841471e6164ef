// Package webapptest provides test helpers for webapp applications.
//
// It constructs the identical DI graph as [webapp.NewApp] but uses
// [fxtest.App], which fails the test immediately on DI errors.
//
// Example:
//
//	webapptest.SetBaseEnv(t, webapptest.FreePort(t))
//	app := webapptest.New[Env](t, routing)
//	app.RequireStart()
//	t.Cleanup(app.RequireStop)
package webapptest

import (
	"testing"

	"github.com/routa-dev/routa/webapp"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing webapp applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [webapp.NewApp].
func New[E webapp.Environment](t testing.TB, routing any, opts ...webapp.Option) *App {
	return &App{App: fxtest.New(t, webapp.FxOptions[E](routing, opts...)...)}
}
