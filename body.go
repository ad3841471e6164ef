package routa

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
)

// DefaultBodyLimit bounds how many request body bytes the default [Body]
// getter reads before failing with 413.
const DefaultBodyLimit = 1 << 20 // 1 MiB

// Getters for the common derived request values. Each is computed at most
// once per request no matter how many call sites ask for it; JSONBody layers
// on Body, so asking for both still reads the underlying stream once.
var (
	Body     = NewBodyGetter(DefaultBodyLimit)
	JSONBody = NewJSONGetter(Body)

	Query = NewGetter(func(_ *Context, r *http.Request) (Params, error) {
		vals, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return nil, Errorf(CodeBadRequest, "malformed query string")
		}

		return Params(vals), nil
	})
)

// NewBodyGetter creates a getter reading the request body as text, failing
// with 413 "request entity too large" when the declared or actual length
// exceeds limit bytes.
func NewBodyGetter(limit int64) *Getter[string] {
	return NewGetter(func(_ *Context, r *http.Request) (string, error) {
		if r.ContentLength > limit {
			return "", errEntityTooLarge()
		}

		data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
		if err != nil {
			return "", err
		}

		if int64(len(data)) > limit {
			return "", errEntityTooLarge()
		}

		return string(data), nil
	})
}

// NewJSONGetter creates a getter decoding the body text produced by source,
// failing with 400 "Invalid JSON" on malformed input.
func NewJSONGetter(source *Getter[string]) *Getter[any] {
	return NewGetter(func(c *Context, r *http.Request) (any, error) {
		text, err := source.Get(c, r)
		if err != nil {
			return nil, err
		}

		var val any
		if err := json.Unmarshal([]byte(text), &val); err != nil {
			return nil, NewError(CodeBadRequest, errors.New("Invalid JSON"))
		}

		return val, nil
	})
}

func errEntityTooLarge() error {
	return NewError(CodeRequestEntityTooLarge, errors.New("request entity too large"))
}
