package routa_test

import (
	"net/http"
	"testing"

	"github.com/routa-dev/routa"
	"github.com/stretchr/testify/require"
)

func appendMiddleware(trace *[]string, name string) routa.Middleware {
	return func(next routa.Handler) routa.Handler {
		return routa.HandlerFunc(func(c *routa.Context, w routa.ResponseWriter, r *http.Request) (any, error) {
			*trace = append(*trace, name)
			return next.Serve(c, w, r)
		})
	}
}

func TestWrapOrder(t *testing.T) {
	var trace []string

	h := routa.Wrap(
		routa.HandlerFunc(func(*routa.Context, routa.ResponseWriter, *http.Request) (any, error) {
			trace = append(trace, "handler")
			return nil, nil
		}),
		appendMiddleware(&trace, "outer"),
		appendMiddleware(&trace, "inner"),
	)

	rec := serve(t, h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"outer", "inner", "handler"}, trace)
}

func TestWrapErrorPassesThrough(t *testing.T) {
	h := routa.Wrap(
		routa.HandlerFunc(func(*routa.Context, routa.ResponseWriter, *http.Request) (any, error) {
			return nil, routa.Errorf(routa.CodeForbidden, "nope")
		}),
		func(next routa.Handler) routa.Handler { return next },
	)

	rec := serve(t, h, http.MethodGet, "/")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "nope", rec.Body.String())
}

func TestWrapNoMiddleware(t *testing.T) {
	inner := routa.HandlerFunc(func(*routa.Context, routa.ResponseWriter, *http.Request) (any, error) {
		return "bare", nil
	})

	require.NotNil(t, routa.Wrap(inner))
}
