package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rangecache/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("bench")))
		log.Info("msg")
		assert.Equal(t, "bench", decode(t, buf)["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("run")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey).(string); ok {
					return logger.RunID(v), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "r-42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "r-42", decode(t, buf)["run_id"])
	})

	t.Run("context value option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key{}))
		log.With(logger.Component("x")).InfoContext(context.WithValue(context.Background(), key{}, "abc"), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "abc", entry["request_id"])
		assert.Equal(t, "x", entry["component"])
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantJSON  bool
		wantDebug bool
		wantEnv   string
	}{
		{name: "production", env: "production", wantJSON: true, wantEnv: "production"},
		{name: "prod alias", env: "prod", wantJSON: true, wantEnv: "production"},
		{name: "staging", env: "stage", wantJSON: true, wantEnv: "staging"},
		{name: "development", env: "development", wantDebug: true, wantEnv: "development"},
		{name: "unknown falls back to development", env: "", wantDebug: true, wantEnv: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tt.env, "svc"), logger.WithOutput(buf))
			log.Debug("dbg")
			if !tt.wantDebug {
				assert.Empty(t, buf.String())
			}
			buf.Reset()
			log.Info("msg")
			if tt.wantJSON {
				entry := decode(t, buf)
				assert.Equal(t, "svc", entry["service"])
				assert.Equal(t, tt.wantEnv, entry["env"])
			} else {
				assert.Contains(t, buf.String(), "service=svc")
				assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}

	_, err := logger.ParseLevel("verbose")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
