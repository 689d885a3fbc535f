package commands

import (
	"github.com/AtRiskMedia/glowyn-go/internal/application/startup"
	"github.com/AtRiskMedia/glowyn-go/pkg/config"
	"github.com/spf13/cobra"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Hydrate the stores from storage and serve the API until SIGINT or SIGTERM.
Pending snapshots are flushed before exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if port != "" {
			config.Port = port
		}
		return startup.Initialize()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")
}
