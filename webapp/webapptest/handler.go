package webapptest

import (
	"net/http"
	"net/http/httptest"

	"github.com/routa-dev/routa"
)

// CallHandler invokes a [routa.HandlerFunc] through a full dispatcher and
// returns the recorded response. It handles the boilerplate of the
// request-scoped context and the buffered response writer, so unit tests
// can exercise one handler without assembling a router.
func CallHandler(handler routa.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	routa.NewDispatcher(handler).ServeHTTP(rec, req)

	return rec
}
