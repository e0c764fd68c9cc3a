package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/wire"
)

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Track the runway fund",
	Long:  "Save toward the amount that lets you resign without a backup plan",
}

var fundShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show fund progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := wire.SettingsService().Get(context.Background())
		if err != nil {
			return err
		}

		if settings.TargetFund <= 0 {
			fmt.Println("No fund goal set. Set one with 'quitcard fund target <amount>'")
			return nil
		}
		printFund(settings)
		return nil
	},
}

var fundTargetCmd = &cobra.Command{
	Use:   "target [amount]",
	Short: "Set the fund goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}

		if err := wire.SettingsService().SetTargetFund(context.Background(), amount); err != nil {
			return err
		}
		fmt.Printf("✓ Fund goal set to %d\n", amount)
		return nil
	},
}

var fundAddCmd = &cobra.Command{
	Use:   "add [amount]",
	Short: "Add to the fund (negative to withdraw)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}

		total, err := wire.SettingsService().AddToFund(context.Background(), amount)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Fund at %d\n", total)
		return nil
	},
}

var fundResumeCmd = &cobra.Command{
	Use:   "resume [ready|not-ready]",
	Short: "Track whether the resume is ready to send",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ready bool
		switch args[0] {
		case "ready":
			ready = true
		case "not-ready":
			ready = false
		default:
			return fmt.Errorf("expected 'ready' or 'not-ready', got %q", args[0])
		}

		if err := wire.SettingsService().SetResumeReady(context.Background(), ready); err != nil {
			return err
		}
		if ready {
			fmt.Println("✓ Resume marked ready")
		} else {
			fmt.Println("✓ Resume marked not ready")
		}
		return nil
	},
}

func init() {
	fundCmd.AddCommand(fundShowCmd)
	fundCmd.AddCommand(fundTargetCmd)
	fundCmd.AddCommand(fundAddCmd)
	fundCmd.AddCommand(fundResumeCmd)
}

// FundCmd returns the fund command tree.
func FundCmd() *cobra.Command {
	return fundCmd
}
