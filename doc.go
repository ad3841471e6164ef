// Package routa provides ordered-scan HTTP routing with normalized handler
// return values and request-scoped memoization.
//
// # Overview
//
// routa differs from pattern-trie multiplexers in three deliberate ways:
// routes are scanned linearly in registration order and the first match
// wins, handlers return a value (or an error) that a central dispatcher
// serializes to the wire, and derived request values such as the parsed body
// are computed at most once per request through getters.
//
// A minimal example:
//
//	r := routa.NewRouter()
//	r.Get("/users/:id", func(c *routa.Context, w routa.ResponseWriter, req *http.Request) (any, error) {
//	    user, err := db.GetUser(routa.RouteParams(c).Get("id"))
//	    if err != nil {
//	        return nil, routa.NewError(routa.CodeNotFound, err)
//	    }
//	    return user, nil // serialized as JSON
//	})
//
//	http.ListenAndServe(":8080", routa.NewDispatcher(r))
//
// # Routing
//
// [Router] keeps its routes in registration order; dispatch scans that order
// and stops at the first route whose method and path both match, even when a
// later route would match more specifically. A request matching no route
// produces 404 "Not Found".
//
// Path patterns are slash-separated literals, ":name" captures, and a final
// ":name*" capture collecting the remaining segments into a sequence.
// Literals compare case-insensitively and a trailing slash is tolerated.
// Captured segments are percent-decoded; a malformed escape fails the
// request with a 400 rather than falling through to the next route.
//
// Routers nest: mounting a router re-bases every pattern it owns under the
// mount prefix, recursively, so a "/:x" route inside a router mounted at
// "/sub/deep" is reachable at "/sub/deep/:x". Re-mounting during the build
// phase fully re-derives all matchers. Registration and mounting are not
// safe against concurrent dispatch; finish building before serving.
//
// # Response normalization
//
// Handlers return any value. The [Dispatcher] reduces it to a [*Response]
// (construct one with [Reply] to control status and headers) and serializes
// the body by dynamic type: nil ends the response empty, []byte goes out as
// application/octet-stream with an exact Content-Length, an io.Reader is
// piped without a length, strings go out as-is, and everything else is JSON.
// A Content-Type already set by the handler is never overwritten. Returning
// [Skip] tells the dispatcher the handler wrote the response itself.
//
// Responses are buffered until the handler completes, so an error can still
// replace everything written so far: an error carrying a [Code] becomes that
// status with its message verbatim as body, while any other error is logged
// through the injectable [Logger] and masked as a plain 500.
//
// # Getters
//
// [NewGetter] builds a request-scoped memoized function. The first Get per
// request runs the compute function; later Gets return the identical value.
// Overlapping Gets share the single in-flight computation. [Body],
// [JSONBody] and [Query] are getters for the usual derived values, and the
// router seeds URL parameters and the effective base path through the same
// mechanism, exposed as [RouteParams] and [BasePath].
package routa
