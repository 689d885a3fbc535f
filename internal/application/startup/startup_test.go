package startup

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/pkg/config"
)

func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "sqlite3")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "glowyn.db"))
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")
	config.Load()
	t.Cleanup(config.Load)
}

func TestResetThenDump(t *testing.T) {
	useSQLite(t)
	ctx := context.Background()

	require.NoError(t, ResetState(ctx))

	var buf bytes.Buffer
	require.NoError(t, DumpState(ctx, &buf))

	var dump map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &dump))
	assert.Contains(t, dump, types.UserStorageKey)
	assert.Contains(t, dump, types.ProductStorageKey)
	assert.Contains(t, dump, types.FeedStorageKey)

	var feed types.Snapshot[types.FeedState]
	require.NoError(t, json.Unmarshal(dump[types.FeedStorageKey], &feed))
	assert.NotEmpty(t, feed.State.Posts)
}

func TestDumpEmptyStorage(t *testing.T) {
	useSQLite(t)

	var buf bytes.Buffer
	require.NoError(t, DumpState(context.Background(), &buf))
	assert.JSONEq(t, `{}`, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}
