package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("Writes named entries at or above the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Solver, "info", &buf)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("solved", zap.Int64("cost", 7036))
		require.NoError(t, logger.Sync())

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "[SOLVER]")
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, `"cost": 7036`)
	})

	t.Run("Rejects unknown levels", func(t *testing.T) {
		_, err := New(App, "loud", &bytes.Buffer{})
		assert.Error(t, err)
	})
}
