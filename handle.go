package routa

import (
	"net/http"
)

// ResponseWriter implements http.ResponseWriter but the underlying bytes are
// buffered. This lets the dispatcher discard whatever a failing handler
// already wrote and formulate a completely new response.
type ResponseWriter interface {
	http.ResponseWriter
	Reset()
	Free()
	FlushBuffer() error
}

// Handler serves one request and returns a value describing the response.
// The returned value is normalized by the dispatcher: a [*Response] is sent
// as-is, [Skip] means the handler already wrote to w itself, and anything
// else is wrapped into a 200 response and serialized by body type.
type Handler interface {
	Serve(c *Context, w ResponseWriter, r *http.Request) (any, error)
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(*Context, ResponseWriter, *http.Request) (any, error)

// Serve implements the [Handler] interface.
func (f HandlerFunc) Serve(c *Context, w ResponseWriter, r *http.Request) (any, error) {
	return f(c, w, r)
}

// Skip is the sentinel return value for handlers that write the response
// themselves through the ResponseWriter. The dispatcher takes no further
// action for it. This is an escape hatch, not the common path.
var Skip any = skip{}

type skip struct{}

// Mountable is the capability that distinguishes a nested router from a
// terminal handler: mounting re-bases everything it owns under the mount
// prefix. Only [*Router] implements it; the unexported method keeps the
// interface closed.
type Mountable interface {
	Handler
	setBasePath(base string)
}
