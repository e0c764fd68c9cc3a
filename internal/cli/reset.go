package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/wire"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stamps and restore default settings",
	Long: `Delete every stamp and restore default settings.

The escape plan checklist and stored reasons survive a reset: new employer,
same plan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes every stamp and cannot be undone - confirm with --yes")
		}

		if err := wire.StampService().ResetAll(context.Background()); err != nil {
			return err
		}

		fmt.Println("✓ Fresh start. Run 'quitcard init' to set up the next card.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}

// ResetCmd returns the reset command.
func ResetCmd() *cobra.Command {
	return resetCmd
}
