package routa

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec, -1)
	defer w.Free()

	fmt.Fprint(w, "hello")
	require.NoError(t, w.FlushBuffer())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hello", rec.Body.String())
}

func TestBufferFirstWriteHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec, -1)
	defer w.Free()

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusAccepted)
	require.NoError(t, w.FlushBuffer())

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestBufferNothingWrittenBeforeFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec, -1)
	defer w.Free()

	w.WriteHeader(http.StatusTeapot)
	fmt.Fprint(w, "held back")

	require.Empty(t, rec.Body.String())

	require.NoError(t, w.FlushBuffer())
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "held back", rec.Body.String())
}

func TestBufferResetDiscardsEverything(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec, -1)
	defer w.Free()

	w.Header().Set("X-Stale", "yes")
	w.WriteHeader(http.StatusBadGateway)
	fmt.Fprint(w, "stale body")

	w.Reset()

	fmt.Fprint(w, "fresh body")
	require.NoError(t, w.FlushBuffer())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fresh body", rec.Body.String())
	require.Empty(t, rec.Header().Get("X-Stale"))
}

func TestBufferLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec, 4)
	defer w.Free()

	_, err := w.Write([]byte("12345"))
	require.ErrorIs(t, err, ErrBufferFull)

	_, err = w.Write([]byte("1234"))
	require.NoError(t, err, "writes within the limit still succeed")
}

func TestBufferDoubleFlushIsNoop(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec, -1)
	defer w.Free()

	fmt.Fprint(w, "once")
	require.NoError(t, w.FlushBuffer())
	require.NoError(t, w.FlushBuffer())

	require.Equal(t, "once", rec.Body.String())
}
