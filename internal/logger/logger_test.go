package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payments-engine/internal/config"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel slog.Level
	}{
		{"DebugLevel", "debug", slog.LevelDebug},
		{"InfoLevel", "info", slog.LevelInfo},
		{"WarnLevel", "warn", slog.LevelWarn},
		{"ErrorLevel", "error", slog.LevelError},
		{"DefaultToInfo", "unknown", slog.LevelInfo},
		{"EmptyToInfo", "", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				Logging: config.LoggingConfig{Level: tc.logLevel},
			}

			var buf bytes.Buffer
			log := NewLogger(cfg, &buf)
			require.NotNil(t, log)

			assert.True(t, log.Enabled(context.Background(), tc.expectedLevel))
			if tc.expectedLevel > slog.LevelDebug {
				assert.False(t, log.Enabled(context.Background(), tc.expectedLevel-1))
			}
		})
	}
}

func TestNewLogger_WritesJSONToGivenWriter(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "info"}}

	var buf bytes.Buffer
	log := NewLogger(cfg, &buf)
	log.Info("transaction rejected", "client", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "transaction rejected", entry["msg"])
	assert.Equal(t, float64(7), entry["client"])
}
