package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("production config honours level", func(t *testing.T) {
		l := Build(LoggerConfig{Level: "warn", Stage: "prod", EnableJSON: true})
		require.NotNil(t, l)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("development config", func(t *testing.T) {
		l := Build(LoggerConfig{Level: "debug", Stage: "local", EnableColor: true})
		require.NotNil(t, l)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestInitLogger(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	t.Setenv("LOG_LEVEL", "error")
	InitLogger("local")

	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, Log.Core().Enabled(zapcore.ErrorLevel))
}
