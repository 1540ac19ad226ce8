package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"REST_PORT", "TURN_COST", "POLL_INTERVAL", "WORKERS", "JWT_ISSUER", "QUEUE_TTL_SECONDS"} {
			t.Setenv(key, "")
		}

		cfg := load()
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, int64(1000), cfg.TurnCost)
		assert.Equal(t, int64(1), cfg.StepCost)
		assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
		assert.Equal(t, 4, cfg.Workers)
		assert.Zero(t, cfg.QueueTTLSeconds, "job queue does not expire by default")
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("REST_PORT", "9090")
		t.Setenv("TURN_COST", "7")
		t.Setenv("SEARCH_TIMEOUT", "2s")
		t.Setenv("JWT_ISSUER", "ci")
		t.Setenv("REDIS_ADDR", "cache:6380")

		cfg := load()
		assert.Equal(t, 9090, cfg.RESTPort)
		assert.Equal(t, int64(7), cfg.TurnCost)
		assert.Equal(t, 2*time.Second, cfg.SearchTimeout)
		assert.Equal(t, "ci", cfg.JWTIssuer)
		assert.Equal(t, "cache:6380", cfg.RedisAddr)
	})
}
