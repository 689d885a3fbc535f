package commands

import (
	"github.com/AtRiskMedia/glowyn-go/internal/application/startup"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print persisted snapshots as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startup.DumpState(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
