package routa

import (
	"context"
	"sync"
)

// Context is the request-scoped context created by the dispatcher at the
// start of each request. Besides behaving as a regular context.Context it
// carries the identity-keyed cache behind [Getter]: one entry per
// (getter, request) pair, discarded with the request.
//
// A Context must never be shared between requests; getter results cached on
// it are derived from exactly one request.
type Context struct {
	context.Context

	mu     sync.Mutex
	values map[any]any
}

// NewContext wraps a parent context into a fresh request-scoped Context with
// an empty getter cache. The dispatcher calls this once per request; tests
// construct one directly around context.Background().
func NewContext(parent context.Context) *Context {
	return &Context{Context: parent, values: make(map[any]any)}
}

func (c *Context) load(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]

	return v, ok
}

// loadOrStore returns the existing entry for key, or stores candidate and
// returns it. The entry is in the cache before anyone evaluates it, which is
// what lets overlapping getter calls share one computation.
func (c *Context) loadOrStore(key, candidate any) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.values[key]; ok {
		return v
	}

	c.values[key] = candidate

	return candidate
}

func (c *Context) store(key, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = v
}
