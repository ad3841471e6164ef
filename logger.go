package routa

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger is the diagnostic sink the dispatcher reports to. Errors without a
// status code never reach the client, so this is the only place their detail
// becomes visible. The default is [NopLogger]; inject something real with
// [WithLogger].
type Logger interface {
	LogUnhandledServeError(err error)
	LogImplicitFlushError(err error)
}

// NopLogger discards all diagnostics.
type NopLogger struct{}

func (NopLogger) LogUnhandledServeError(error) {}
func (NopLogger) LogImplicitFlushError(error)  {}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledServeError(err error) {
	l.Logger.Printf("routa: unhandled serve error: %s", err)
}

func (l stdLogger) LogImplicitFlushError(err error) {
	l.Logger.Printf("routa: error while flushing implicitly: %s", err)
}

// NewStdLogger adapts a standard library logger. Passing nil uses
// log.Default().
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}

	return stdLogger{l}
}

// TestLogger counts diagnostics so tests can assert on masked errors.
type TestLogger struct {
	tb testing.TB

	NumLogUnhandledServeError int64
	NumLogImplicitFlushError  int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledServeError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledServeError, 1)
	l.tb.Logf("routa: unhandled serve error: %s", err)
}

func (l *TestLogger) LogImplicitFlushError(err error) {
	atomic.AddInt64(&l.NumLogImplicitFlushError, 1)
	l.tb.Logf("routa: error while flushing implicitly: %s", err)
}

var _ Logger = &TestLogger{}
