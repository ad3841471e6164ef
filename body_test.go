package routa_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/routa-dev/routa"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	r := routa.NewRouter()
	r.Post("/:name", func(c *routa.Context, _ routa.ResponseWriter, req *http.Request) (any, error) {
		body, err := routa.JSONBody.Get(c, req)
		if err != nil {
			return nil, err
		}

		fields, _ := body.(map[string]any)

		return map[string]any{
			"param": routa.RouteParams(c).Get("name"),
			"field": fields["name"],
		}, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/Ryan", strings.NewReader(`{"name":"Ryan"}`))
	routa.NewDispatcher(r).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"param":"Ryan","field":"Ryan"}`, rec.Body.String())
}

func TestBodyReadOnceAcrossGetters(t *testing.T) {
	// the body stream can only be consumed once; both the raw and the
	// decoded getter must observe it
	r := routa.NewRouter()
	r.Post("/", func(c *routa.Context, _ routa.ResponseWriter, req *http.Request) (any, error) {
		if _, err := routa.JSONBody.Get(c, req); err != nil {
			return nil, err
		}

		raw, err := routa.Body.Get(c, req)
		if err != nil {
			return nil, err
		}

		return raw, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	routa.NewDispatcher(r).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"a":1}`, rec.Body.String())
}

func TestBodyOverLimitIs413(t *testing.T) {
	limited := routa.NewBodyGetter(8)

	r := routa.NewRouter()
	r.Post("/", func(c *routa.Context, _ routa.ResponseWriter, req *http.Request) (any, error) {
		text, err := limited.Get(c, req)
		if err != nil {
			return nil, err
		}

		return text, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("well over eight bytes"))
	routa.NewDispatcher(r).ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "request entity too large", rec.Body.String())
}

func TestBodyOverLimitWithoutDeclaredLength(t *testing.T) {
	limited := routa.NewBodyGetter(8)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("well over eight bytes"))
	req.ContentLength = -1 // chunked upload, actual length enforced while reading

	_, err := limited.Get(routa.NewContext(req.Context()), req)
	require.Error(t, err)
	require.Equal(t, routa.CodeRequestEntityTooLarge, routa.CodeOf(err))
}

func TestMalformedJSONIs400(t *testing.T) {
	r := routa.NewRouter()
	r.Post("/", func(c *routa.Context, _ routa.ResponseWriter, req *http.Request) (any, error) {
		return routa.JSONBody.Get(c, req)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	routa.NewDispatcher(r).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid JSON", rec.Body.String())
}

func TestQueryGetter(t *testing.T) {
	r := routa.NewRouter()
	r.Get("/search", func(c *routa.Context, _ routa.ResponseWriter, req *http.Request) (any, error) {
		query, err := routa.Query.Get(c, req)
		if err != nil {
			return nil, err
		}

		return map[string]any{
			"q":    query.Get("q"),
			"tags": query.Values("tag"),
		}, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=routing&tag=a&tag=b", nil)
	routa.NewDispatcher(r).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"q":"routing","tags":["a","b"]}`, rec.Body.String())
}
