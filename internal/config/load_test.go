package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("nonexistent_config")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, "payments-engine", cfg.Application.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.WorkerPool.Size)

	// Dead-lettering is opt-in.
	assert.Equal(t, "", cfg.Kafka.RejectedTopic)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WORKER_POOL_SIZE", "4")

	cfg, err := LoadConfig("nonexistent_config")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 4, cfg.WorkerPool.Size)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("ZeroServerPort", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "0")

		_, err := LoadConfig("nonexistent_config")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("ZeroWorkerPoolSize", func(t *testing.T) {
		t.Setenv("WORKER_POOL_SIZE", "0")

		_, err := LoadConfig("nonexistent_config")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WORKER_POOL_SIZE")
	})

	t.Run("KafkaOnlyValidatedWhenEnabled", func(t *testing.T) {
		t.Setenv("KAFKA_WRITE_TIMEOUT", "0s")

		// Topic unset: the zero timeout does not matter.
		_, err := LoadConfig("nonexistent_config")
		require.NoError(t, err)

		// Topic set: it does.
		t.Setenv("KAFKA_REJECTED_TOPIC", "rejected_records")
		_, err = LoadConfig("nonexistent_config")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KAFKA_WRITE_TIMEOUT")
	})
}
