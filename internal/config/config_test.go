package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"TRANSPORT", "REDIS_ADDR", "REDIS_DB", "KAFKA_BROKERS", "CONSUME_KAFKA",
		"OUTBOX_DRIVER", "OUTBOX_PERIOD", "OUTBOX_LIMIT", "WORKERS", "HTTP_PORT", "SIMULATE_LOT_WON",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, TransportRedis, cfg.Transport)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.ConsumeKafka)
	assert.Equal(t, OutboxNone, cfg.OutboxDriver)
	assert.Equal(t, time.Second, cfg.OutboxPeriod)
	assert.Equal(t, 10, cfg.OutboxLimit)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 0, cfg.SimulateLotWon)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	// Arrange
	t.Setenv("TRANSPORT", "Kafka")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CONSUME_KAFKA", "true")
	t.Setenv("OUTBOX_DRIVER", "postgres")
	t.Setenv("OUTBOX_PERIOD", "250ms")
	t.Setenv("WORKERS", "0")
	t.Setenv("SIMULATE_LOT_WON", "5")

	// Act
	cfg := LoadConfig()

	// Assert
	assert.Equal(t, TransportKafka, cfg.Transport)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.ConsumeKafka)
	assert.Equal(t, OutboxPostgres, cfg.OutboxDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.OutboxPeriod)
	assert.Equal(t, 1, cfg.Workers, "workers nunca baja de 1")
	assert.Equal(t, 5, cfg.SimulateLotWon)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "uno")
	t.Setenv("OUTBOX_PERIOD", "-1s")
	t.Setenv("CONSUME_KAFKA", "quizá")

	cfg := LoadConfig()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, time.Second, cfg.OutboxPeriod)
	assert.False(t, cfg.ConsumeKafka)
}

func TestConfig_Validate(t *testing.T) {
	t.Setenv("TRANSPORT", "")
	t.Setenv("OUTBOX_DRIVER", "")
	require.NoError(t, LoadConfig().Validate())

	t.Setenv("TRANSPORT", "kafak")
	err := LoadConfig().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafak")

	t.Setenv("TRANSPORT", "memory")
	t.Setenv("OUTBOX_DRIVER", "mysql")
	err = LoadConfig().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}
