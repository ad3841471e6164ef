package routa

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrBufferFull is returned from Write when a configured buffer limit would
// be exceeded.
var ErrBufferFull = errors.New("routa: response buffer limit exceeded")

var bufPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// ResponseBuffer is an http.ResponseWriter that holds the status code and
// body bytes in memory until FlushBuffer. Until then the response can be
// Reset and rewritten from scratch, which is how the dispatcher replaces a
// half-written response with an error response.
type ResponseBuffer struct {
	under   http.ResponseWriter
	buf     *bytes.Buffer
	status  int
	limit   int
	flushed bool
}

// NewResponseWriter wraps the underlying writer in a pooled buffer. A
// negative limit means unbounded buffering.
func NewResponseWriter(under http.ResponseWriter, limit int) *ResponseBuffer {
	buf, _ := bufPool.Get().(*bytes.Buffer)

	return &ResponseBuffer{under: under, buf: buf, limit: limit}
}

// Header returns the header map of the underlying writer. Headers become
// final only when the buffer is flushed.
func (w *ResponseBuffer) Header() http.Header { return w.under.Header() }

// Write appends p to the buffer, enforcing the configured limit.
func (w *ResponseBuffer) Write(p []byte) (int, error) {
	if w.limit >= 0 && w.buf.Len()+len(p) > w.limit {
		return 0, fmt.Errorf("%w: %d bytes over %d", ErrBufferFull, w.buf.Len()+len(p)-w.limit, w.limit)
	}

	return w.buf.Write(p)
}

// WriteHeader records the status code. The first call wins, as with the
// standard library writer; nothing reaches the wire until flush.
func (w *ResponseBuffer) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

// Reset discards all buffered bytes, the recorded status code and any
// headers set so far, so a fresh response can be written.
func (w *ResponseBuffer) Reset() {
	w.buf.Reset()
	w.status = 0

	hdr := w.under.Header()
	for k := range hdr {
		delete(hdr, k)
	}
}

// FlushBuffer writes the recorded status (200 when none was set) and the
// buffered bytes to the underlying writer. Flushing twice is a no-op.
func (w *ResponseBuffer) FlushBuffer() error {
	if w.flushed {
		return nil
	}

	w.flushed = true

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	w.under.WriteHeader(status)

	if _, err := w.under.Write(w.buf.Bytes()); err != nil {
		return fmt.Errorf("flush buffered response: %w", err)
	}

	return nil
}

// Free returns the buffer to the pool. The ResponseBuffer must not be used
// afterwards.
func (w *ResponseBuffer) Free() {
	w.buf.Reset()
	bufPool.Put(w.buf)
	w.buf = nil
}

var _ ResponseWriter = &ResponseBuffer{}
