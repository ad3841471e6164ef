package routa

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// genericErrorBody is what clients see for any error that carries no status
// code: the original detail goes to the Logger, never to the wire.
const genericErrorBody = "Internal Server Error"

// Dispatcher wraps exactly one top-level handler (typically a [*Router]) and
// adapts it to the standard library. Per request it creates the
// request-scoped [Context], invokes the handler through a buffered writer,
// then normalizes the outcome into a wire response:
//
//   - an error with a [Code] becomes that status with the error message as body
//   - any other error becomes a logged 500 with a generic body
//   - [Skip] leaves whatever the handler wrote untouched
//   - everything else is wrapped into a [*Response] and serialized by body type
type Dispatcher struct {
	handler  Handler
	logs     Logger
	bufLimit int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger injects the diagnostic sink for masked errors and flush
// failures.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) { d.logs = l }
}

// WithBufferLimit caps the buffered response size in bytes. Negative means
// unbounded, the default.
func WithBufferLimit(n int) Option {
	return func(d *Dispatcher) { d.bufLimit = n }
}

// NewDispatcher creates the dispatcher around the top-level handler.
func NewDispatcher(h Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{handler: h, logs: NopLogger{}, bufLimit: -1}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := NewContext(r.Context())
	bw := NewResponseWriter(w, d.bufLimit)
	defer bw.Free()

	res, err := d.handler.Serve(c, bw, r)

	switch {
	case err != nil:
		d.writeError(bw, err)
	case res == Skip:
		// the handler wrote the response itself
	default:
		if werr := writeResponse(bw, normalize(res)); werr != nil {
			d.writeError(bw, werr)
		}
	}

	if ferr := bw.FlushBuffer(); ferr != nil {
		d.logs.LogImplicitFlushError(ferr)
	}
}

// writeError replaces anything already buffered with the error response.
// Status-coded errors are considered intentionally client-facing and keep
// their message verbatim, whatever the code; everything else is logged and
// masked.
func (d *Dispatcher) writeError(w ResponseWriter, err error) {
	w.Reset()

	status, body := http.StatusInternalServerError, genericErrorBody
	if code := CodeOf(err); code != CodeUnknown {
		status, body = int(code), err.Error()
	} else {
		d.logs.LogUnhandledServeError(err)
	}

	// buffer the body before declaring its length: when the buffer limit is
	// smaller than the error body the flush would otherwise deliver fewer
	// bytes than the Content-Length promises
	if _, werr := io.WriteString(w, body); werr != nil {
		w.Reset()
		w.WriteHeader(status)

		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
}

// normalize reduces an arbitrary handler return value to a [*Response]: a
// *Response passes through, anything else becomes its 200 body.
func normalize(res any) *Response {
	if resp, ok := res.(*Response); ok {
		if resp.StatusCode == 0 {
			resp.StatusCode = http.StatusOK
		}

		return resp
	}

	return Reply(res)
}

// writeResponse serializes resp into the buffered writer. The body's dynamic
// type selects the wire encoding; Content-Type is only derived when neither
// the handler nor the response set one.
func writeResponse(w ResponseWriter, resp *Response) error {
	hdr := w.Header()
	for key, vals := range resp.Header {
		hdr[key] = vals
	}

	switch body := resp.Body.(type) {
	case nil:
		w.WriteHeader(resp.StatusCode)

	case []byte:
		setIfUnset(hdr, "Content-Type", "application/octet-stream")
		hdr.Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(resp.StatusCode)

		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("write binary body: %w", err)
		}

	case io.Reader:
		// length unknown, pipe without a Content-Length
		setIfUnset(hdr, "Content-Type", "application/octet-stream")
		w.WriteHeader(resp.StatusCode)

		if _, err := io.Copy(w, body); err != nil {
			return fmt.Errorf("pipe stream body: %w", err)
		}

	case string:
		hdr.Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(resp.StatusCode)

		if _, err := io.WriteString(w, body); err != nil {
			return fmt.Errorf("write text body: %w", err)
		}

	default:
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serialize %T body to json: %w", body, err)
		}

		setIfUnset(hdr, "Content-Type", "application/json; charset=utf-8")
		hdr.Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(resp.StatusCode)

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write json body: %w", err)
		}
	}

	return nil
}

func setIfUnset(hdr http.Header, key, value string) {
	if hdr.Get(key) == "" {
		hdr.Set(key, value)
	}
}
