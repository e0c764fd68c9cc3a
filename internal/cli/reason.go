package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/wire"
)

var reasonCmd = &cobra.Command{
	Use:   "reason",
	Short: "Manage reusable stamp reasons",
	Long:  "Store the reasons that keep coming up so stamping stays quick",
}

var reasonAddCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Store a reusable reason",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, err := wire.ReasonService().AddReason(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("✓ Stored %s: %s\n", reason.ID, reason.Text)
		return nil
	},
}

var reasonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reasons, most used first",
	RunE: func(cmd *cobra.Command, args []string) error {
		reasons, err := wire.ReasonService().ListReasons(context.Background())
		if err != nil {
			return err
		}

		if len(reasons) == 0 {
			fmt.Println("No stored reasons yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSED\tTEXT")
		fmt.Fprintln(w, "--\t----\t----")
		for _, r := range reasons {
			fmt.Fprintf(w, "%s\t%d\t%s\n", r.ID, r.UsageCount, r.Text)
		}
		w.Flush()
		return nil
	},
}

var reasonDeleteCmd = &cobra.Command{
	Use:   "delete [reason-id]",
	Short: "Delete a stored reason",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.ReasonService().DeleteReason(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	reasonCmd.AddCommand(reasonAddCmd)
	reasonCmd.AddCommand(reasonListCmd)
	reasonCmd.AddCommand(reasonDeleteCmd)
}

// ReasonCmd returns the reason command tree.
func ReasonCmd() *cobra.Command {
	return reasonCmd
}
