package routa

import (
	"net/http"
	"sync"
)

// Getter memoizes a derived value per request. The first Get for a given
// [Context] runs the compute function; every later Get on the same Context
// returns the exact same value without recomputing, so any number of call
// sites can ask for a parsed body or query without duplicating work.
//
// The cache entry is a once-cell stored before the computation settles:
// overlapping Gets issued while the first is still computing block on the
// same cell rather than triggering a second computation.
type Getter[T any] struct {
	compute func(*Context, *http.Request) (T, error)
}

// NewGetter creates a getter around a compute function. The getter's own
// identity keys the cache, so two getters built from the same function still
// cache independently.
func NewGetter[T any](compute func(*Context, *http.Request) (T, error)) *Getter[T] {
	return &Getter[T]{compute: compute}
}

// Get returns the memoized value for this request, computing it on first
// use.
func (g *Getter[T]) Get(c *Context, r *http.Request) (T, error) {
	if cell, ok := c.load(g); ok {
		return cell.(func() (T, error))()
	}

	once := sync.OnceValues(func() (T, error) {
		return g.compute(c, r)
	})

	cell := c.loadOrStore(g, once)

	return cell.(func() (T, error))()
}

// Set pre-seeds or overrides the cached value for this request. The router
// uses it to inject matched URL parameters and the effective base path
// without routing them through a compute function.
func (g *Getter[T]) Set(c *Context, v T) {
	c.store(g, func() (T, error) { return v, nil })
}

var (
	routeParamsGetter = NewGetter(func(*Context, *http.Request) (Params, error) {
		return Params{}, nil
	})
	basePathGetter = NewGetter(func(*Context, *http.Request) (string, error) {
		return "", nil
	})
)

// RouteParams returns the URL parameters captured by the route that matched
// this request, or an empty Params before any router has dispatched it.
func RouteParams(c *Context) Params {
	p, _ := routeParamsGetter.Get(c, nil)

	return p
}

// BasePath returns the cumulative mount prefix of the router that dispatched
// this request.
func BasePath(c *Context) string {
	p, _ := basePathGetter.Get(c, nil)

	return p
}
