package commands

import (
	"fmt"

	"github.com/AtRiskMedia/glowyn-go/internal/application/startup"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset persisted state to the seed data",
	Long: `Overwrite the user, product and feed snapshots with the initial fixture state.

Examples:
  glowyn reset
  glowyn reset --storage-driver pgx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := startup.ResetState(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "State reset.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
