package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/pkg/config"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestResetAndDumpCommands(t *testing.T) {
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")
	config.Load()
	t.Cleanup(config.Load)

	db := filepath.Join(t.TempDir(), "cli.db")

	out := run(t, "reset", "--storage-driver", "sqlite3", "--sqlite-path", db)
	assert.Contains(t, out, "State reset.")
	assert.Equal(t, db, config.SQLitePath)

	out = run(t, "dump", "--storage-driver", "sqlite3", "--sqlite-path", db)
	assert.Contains(t, out, "glowyn-user-storage")
	assert.Contains(t, out, "glowyn-feed-storage")
}
