package commands

import (
	"fmt"
	"os"

	"github.com/AtRiskMedia/glowyn-go/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	storageDriver string
	sqlitePath    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glowyn",
	Short: "Glowyn state service",
	Long: `Glowyn keeps the beauty app's session, catalog and feed state in memory,
mirrors every change to durable storage and serves it over HTTP.

Storage backends: sqlite3, libsql (Turso), mysql, pgx, dynamodb, memory.
Settings come from the environment or a .env file; flags override them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if storageDriver != "" {
			config.StorageDriver = storageDriver
		}
		if sqlitePath != "" {
			config.SQLitePath = sqlitePath
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage-driver", "", "Storage backend (overrides STORAGE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file (overrides SQLITE_PATH)")
}
