package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("EVENT_BUS", "")
	t.Setenv("DEFAULT_REFUND_AMOUNT", "")
	t.Setenv("DISPATCH_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EventBusNone, cfg.EventBus)
	assert.Equal(t, 5000, cfg.DefaultRefundAmount)
	assert.Equal(t, 15*time.Second, cfg.DispatchInterval)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("EVENT_BUS", "Kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("DISPATCH_INTERVAL", "30")
	t.Setenv("DISPATCH_STALE_AFTER", "2m")
	t.Setenv("DISPATCH_RATE", "0.5")
	t.Setenv("DEFAULT_REFUND_AMOUNT", "not-a-number")
	t.Setenv("READ_TIMEOUT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EventBusKafka, cfg.EventBus)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Second, cfg.DispatchInterval)
	assert.Equal(t, 2*time.Minute, cfg.DispatchStale)
	assert.Equal(t, 0.5, cfg.DispatchRate)
	assert.Equal(t, 5000, cfg.DefaultRefundAmount)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoadTrackerConfig(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("SESSION_STORE", "REDIS")
	t.Setenv("SESSION_FILE", "/tmp/session.yaml")

	cfg, err := LoadTrackerConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, "/tmp/session.yaml", cfg.SessionFile)
}
