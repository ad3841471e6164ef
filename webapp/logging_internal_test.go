package webapp

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevel(t *testing.T) {
	env := BaseEnvironment{LogLevel: zapcore.WarnLevel, ServiceName: "svc"}

	logger, err := NewLogger(env)
	require.NoError(t, err)

	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestZapDispatchLogger(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	logs := newZapDispatchLogger(zap.New(core))

	logs.LogUnhandledServeError(errors.New("boom"))
	logs.LogImplicitFlushError(errors.New("pipe broke"))

	entries := observed.All()
	require.Len(t, entries, 2)
	require.Equal(t, "unhandled serve error", entries[0].Message)
	require.Equal(t, "error while flushing implicitly", entries[1].Message)
	require.Equal(t, "routa.webapp", entries[0].LoggerName)
}
