package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanneledLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewChanneledLogger(&LoggerConfig{
		OutputToConsole: true,
		Output:          &buf,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelInfo,
	})
	require.NoError(t, err)

	t.Run("records carry their channel", func(t *testing.T) {
		buf.Reset()
		logger.Persistence().Warn("snapshot write failed", "key", "glowyn-feed-storage")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "persistence", rec["channel"])
		assert.Equal(t, "glowyn-feed-storage", rec["key"])
	})

	t.Run("debug is filtered at info level", func(t *testing.T) {
		buf.Reset()
		logger.Store().Debug("noise")
		assert.Zero(t, buf.Len())
	})

	t.Run("channel level can be lowered at runtime", func(t *testing.T) {
		require.NoError(t, logger.SetChannelLevel(ChannelStore, slog.LevelDebug))
		buf.Reset()
		logger.Store().Debug("visible now")
		assert.Contains(t, buf.String(), "visible now")
		assert.Equal(t, "DEBUG", logger.GetChannelLevels()["store"])
	})

	t.Run("unknown channel is rejected", func(t *testing.T) {
		assert.Error(t, logger.SetChannelLevel(Channel("nope"), slog.LevelDebug))
	})
}
