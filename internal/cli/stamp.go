package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/app"
	"github.com/example/quitcard/internal/core/card"
	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/wire"
)

var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Manage stamps (one per bad day)",
	Long:  "Add, edit, and delete stamps on the loyalty card",
}

var stampAddCmd = &cobra.Command{
	Use:   "add [reason...]",
	Short: "Stamp today's card",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		reason := strings.Join(args, " ")
		reasonID, _ := cmd.Flags().GetString("reason-id")

		if reasonID != "" {
			stored, err := wire.ReasonService().UseReason(ctx, reasonID)
			if err != nil {
				return fmt.Errorf("failed to use stored reason: %w", err)
			}
			reason = stored.Text
		}

		progress, err := wire.StampService().Progress(ctx)
		if err != nil {
			return err
		}

		// One stamp per day. Five grumbles on an already-stamped day
		// unlock an extra, visibly angrier stamp.
		special := false
		if progress.StampedToday {
			if progress.EscalationCount < app.EscalationThreshold {
				remaining := app.EscalationThreshold - progress.EscalationCount
				return fmt.Errorf("already stamped today\nHint: grumble %d more time(s) with 'quitcard stamp grumble' to earn an extra stamp", remaining)
			}
			special = true
		}

		stamp, err := wire.StampService().AddStamp(ctx, primary.AddStampRequest{
			Reason:  reason,
			Special: special,
		})
		if err != nil {
			if errors.Is(err, card.ErrAwaitingReview) {
				return err
			}
			return fmt.Errorf("failed to add stamp: %w", err)
		}

		mark := "✓"
		if stamp.Special {
			mark = color.New(color.FgHiRed).Sprint("✊")
		}
		fmt.Printf("%s Stamped card %d, position %d/%d (%s)\n", mark, stamp.CardIndex, stamp.Position, stamp.Capacity, stamp.ID)
		if stamp.Reason != "" {
			fmt.Printf("  Reason: %s\n", stamp.Reason)
		}

		updated, err := wire.StampService().Progress(ctx)
		if err != nil {
			return err
		}
		if updated.AwaitingReview {
			fmt.Println(color.New(color.FgHiYellow).Sprint("Card filled! Review it with 'quitcard card advance'"))
		}
		return nil
	},
}

var stampGrumbleCmd = &cobra.Command{
	Use:   "grumble",
	Short: "Vent about a day that already has its stamp",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		progress, err := wire.StampService().Progress(ctx)
		if err != nil {
			return err
		}
		if !progress.StampedToday {
			return fmt.Errorf("nothing to grumble about yet - stamp today first with 'quitcard stamp add'")
		}

		count, err := wire.StampService().Grumble(ctx)
		if err != nil {
			return err
		}

		if count >= app.EscalationThreshold {
			fmt.Println(color.New(color.FgHiRed).Sprint("That bad, huh. You've earned an extra stamp: 'quitcard stamp add'"))
			return nil
		}
		fmt.Printf("Noted. (%d/%d)\n", count, app.EscalationThreshold)
		return nil
	},
}

var stampEditCmd = &cobra.Command{
	Use:   "edit [stamp-id]",
	Short: "Edit a stamp's reason",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		stamp, err := wire.StampService().EditReason(context.Background(), args[0], reason)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Updated %s\n", stamp.ID)
		fmt.Printf("  Reason: %s\n", stamp.Reason)
		return nil
	},
}

var stampDeleteCmd = &cobra.Command{
	Use:   "delete [stamp-id]",
	Short: "Delete a stamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("deleting a stamp rewrites history - confirm with --yes")
		}

		if err := wire.StampService().DeleteStamp(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	stampAddCmd.Flags().String("reason-id", "", "Use a stored reason (see 'quitcard reason list')")

	stampEditCmd.Flags().StringP("reason", "r", "", "New reason text")
	stampEditCmd.MarkFlagRequired("reason")

	stampDeleteCmd.Flags().Bool("yes", false, "Skip confirmation")

	stampCmd.AddCommand(stampAddCmd)
	stampCmd.AddCommand(stampGrumbleCmd)
	stampCmd.AddCommand(stampEditCmd)
	stampCmd.AddCommand(stampDeleteCmd)
}

// StampCmd returns the stamp command tree.
func StampCmd() *cobra.Command {
	return stampCmd
}
