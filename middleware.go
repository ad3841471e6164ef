package routa

// Middleware for cross-cutting concerns around handlers. Errors returned by
// the inner handler pass through the chain to the dispatcher untouched
// unless a middleware chooses to translate them.
type Middleware func(Handler) Handler

// Wrap takes the inner handler h and wraps it with middleware. The order is
// that of the Gorilla and Chi routers: the middleware provided first is the
// outermost wrapping, the one provided last sits closest to the handler.
func Wrap(h Handler, m ...Middleware) Handler {
	if len(m) < 1 {
		return h
	}

	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}
