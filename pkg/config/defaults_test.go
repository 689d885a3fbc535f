package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PERSIST_MAX_RETRIES", "7")
	t.Setenv("ANALYSIS_DELAY", "10ms")
	t.Setenv("CAMERA_ENABLED", "false")
	t.Setenv("PHOTO_SIZE", "not-a-number")
	t.Cleanup(Load)

	Load()

	assert.Equal(t, "memory", StorageDriver)
	assert.Equal(t, 7, PersistMaxRetries)
	assert.Equal(t, 10*time.Millisecond, AnalysisDelay)
	assert.False(t, CameraEnabled)
	assert.Equal(t, 1024, PhotoSize, "unparseable values fall back to the default")
}
