package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" error ", zapcore.ErrorLevel},
		{"warn", zapcore.WarnLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestDefaultLoggerIsNoop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Debugw("ignored", FieldRule, "test")
		Named("datetime").Infow("ignored")
	})
}

func TestNamedAddsComponent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = prev })

	Named("numtext").Debugw("matched", FieldToken, "zwei")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "numtext", fields[FieldComponent])
	assert.Equal(t, "zwei", fields[FieldToken])
}

func TestInitialize(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev; JSONOutput = false })

	require.NoError(t, Initialize(true, "info"))
	assert.True(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(false, "debug"))
	assert.False(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}
