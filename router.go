package routa

import (
	"net/http"
	"strings"
)

// route is one entry in a router's table. An empty method matches any
// method. The compiled matcher always reflects the cumulative base path of
// every ancestor router; it is re-derived whenever an ancestor is mounted.
type route struct {
	method       string
	declaredPath string
	handler      Handler
	mount        Mountable // non-nil when the handler is itself a router
	match        Matcher
}

// Router holds an ordered route table and the mount prefix accumulated from
// its ancestors. It is itself a [Handler]: dispatching scans the table in
// registration order and the first route whose method and path both match
// wins, however specific a later route would be.
//
// Registration and mounting belong to a build phase before the server
// accepts traffic; they are not synchronized against concurrent dispatch.
type Router struct {
	basePath string
	routes   []route
}

// NewRouter creates an empty router mounted at the root.
func NewRouter() *Router {
	return &Router{}
}

// Handle registers handler for the method and path pattern, compiled against
// the router's current base path. Methods compare exactly and
// case-sensitively; use the standard library's uppercase constants.
func (rt *Router) Handle(method, path string, handler Handler) {
	rt.routes = append(rt.routes, route{
		method:       method,
		declaredPath: path,
		handler:      handler,
		match:        routeMatcher(rt.basePath + path),
	})
}

// HandleFunc registers a plain function for the method and path pattern.
func (rt *Router) HandleFunc(method, path string, handler HandlerFunc) {
	rt.Handle(method, path, handler)
}

func (rt *Router) Get(path string, h HandlerFunc)     { rt.Handle(http.MethodGet, path, h) }
func (rt *Router) Head(path string, h HandlerFunc)    { rt.Handle(http.MethodHead, path, h) }
func (rt *Router) Post(path string, h HandlerFunc)    { rt.Handle(http.MethodPost, path, h) }
func (rt *Router) Put(path string, h HandlerFunc)     { rt.Handle(http.MethodPut, path, h) }
func (rt *Router) Delete(path string, h HandlerFunc)  { rt.Handle(http.MethodDelete, path, h) }
func (rt *Router) Options(path string, h HandlerFunc) { rt.Handle(http.MethodOptions, path, h) }
func (rt *Router) Patch(path string, h HandlerFunc)   { rt.Handle(http.MethodPatch, path, h) }

// Use mounts a handler at the router's current base path with no additional
// prefix. The handler matches any method.
func (rt *Router) Use(handler Handler) {
	rt.Mount("", handler)
}

// Mount registers a handler under a path prefix. When the handler is itself
// a [*Router] its base path is immediately re-based to the concatenated
// prefix, recursively re-deriving every matcher it owns, and the mount
// matches on prefix only. A terminal handler gets an ordinary anchored
// matcher without a method filter.
func (rt *Router) Mount(path string, handler Handler) {
	full := rt.basePath + path

	entry := route{declaredPath: path, handler: handler}
	if sub, ok := handler.(Mountable); ok {
		sub.setBasePath(full)
		entry.mount = sub
		entry.match = mountMatcher(full)
	} else {
		entry.match = routeMatcher(full)
	}

	rt.routes = append(rt.routes, entry)
}

// setBasePath implements [Mountable]. It re-bases the router under base and
// fully re-derives the matcher of every owned route, recursing into nested
// routers. Idempotent: routers can be re-mounted any number of times during
// the build phase and matchers never go stale.
func (rt *Router) setBasePath(base string) {
	rt.basePath = base

	for i := range rt.routes {
		entry := &rt.routes[i]
		full := base + entry.declaredPath

		if entry.mount != nil {
			entry.match = mountMatcher(full)
			entry.mount.setBasePath(full)
		} else {
			entry.match = routeMatcher(full)
		}
	}
}

// Serve implements [Handler] by scanning the route table in registration
// order. On the first structural match it seeds the request context with the
// captured URL parameters and this router's base path, then tail-calls the
// route's handler. Matching considers only method and path, never the query
// string.
func (rt *Router) Serve(c *Context, w ResponseWriter, r *http.Request) (any, error) {
	// match on the raw escaped form so captures decode exactly once
	path := r.URL.RawPath
	if path == "" {
		path = r.URL.EscapedPath()
	}

	for i := range rt.routes {
		entry := &rt.routes[i]
		if entry.method != "" && entry.method != r.Method {
			continue
		}

		params, ok, err := entry.match(path)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		routeParamsGetter.Set(c, params)
		basePathGetter.Set(c, rt.basePath)

		return entry.handler.Serve(c, w, r)
	}

	return Reply("Not Found").Status(http.StatusNotFound), nil
}

// routeMatcher compiles the anchored, case-insensitive, slash-tolerant
// matcher used for terminal routes.
func routeMatcher(pattern string) Matcher {
	return CompilePattern(strings.TrimSuffix(pattern, "/"), MatchOptions{})
}

// mountMatcher compiles the prefix-only matcher guarding entry into a nested
// router.
func mountMatcher(pattern string) Matcher {
	return CompilePattern(pattern, MatchOptions{Prefix: true})
}

var _ Mountable = &Router{}
