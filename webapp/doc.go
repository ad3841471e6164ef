// Package webapp assembles routa routing into a runnable HTTP service.
//
// It wires the pieces an application otherwise assembles by hand: an
// environment-parsed configuration ([BaseEnvironment]), a zap logger feeding
// the dispatcher's diagnostic sink, an OpenTelemetry tracer around the
// server and the outbound HTTP client, a health endpoint, and an fx-managed
// *http.Server with graceful shutdown.
//
// A minimal application:
//
//	type Env struct{ webapp.BaseEnvironment }
//
//	func main() {
//	    webapp.NewApp[Env](func(r *routa.Router) {
//	        r.Get("/hello/:name", func(c *routa.Context, _ routa.ResponseWriter, _ *http.Request) (any, error) {
//	            return "hello " + routa.RouteParams(c).Get("name"), nil
//	        })
//	    }).Run()
//	}
//
// The routing function is an fx invocation: it can request any provided
// type, such as the [*routa.Reverser], the instrumented *http.Client, or
// handler structs provided through [WithFx].
//
// Configuration comes from ROUTA_* environment variables; only
// ROUTA_SERVICE_NAME is required. See [BaseEnvironment] for the full set and
// defaults. Custom variables go on a struct embedding BaseEnvironment.
//
// webapptest builds the identical graph on fxtest for integration tests.
package webapp
