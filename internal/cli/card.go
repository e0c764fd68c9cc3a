package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/wire"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage loyalty cards",
	Long:  "Show the current card and advance past filled ones",
}

var cardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current card",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		progress, err := wire.StampService().Progress(ctx)
		if err != nil {
			return err
		}

		printCard(progress)

		if progress.AwaitingReview {
			fmt.Println()
			fmt.Println(color.New(color.FgHiYellow).Sprint("This card is full. Advance it with 'quitcard card advance'"))
		}
		return nil
	},
}

var cardAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Acknowledge a filled card and open the next one",
	RunE: func(cmd *cobra.Command, args []string) error {
		acknowledged, err := wire.StampService().AdvanceCard(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("✓ Card %d retired. It is now read-only.\n", acknowledged)
		fmt.Printf("  Card %d is open for stamps.\n", acknowledged+1)
		return nil
	},
}

// printCard renders the current card as a grid of filled and empty slots.
func printCard(progress *primary.Progress) {
	header := fmt.Sprintf("Card %d  (%d/%d stamps)", progress.CurrentCardIndex, progress.StampsOnCurrent, progress.Capacity)
	fmt.Println(color.New(color.Bold).Sprint(header))

	filled := color.New(color.FgHiRed).Sprint("●")
	empty := color.New(color.FgHiBlack).Sprint("○")

	const perRow = 10
	var row strings.Builder
	for i := 0; i < progress.Capacity; i++ {
		if i < progress.StampsOnCurrent {
			row.WriteString(filled)
		} else {
			row.WriteString(empty)
		}
		row.WriteString(" ")
		if (i+1)%perRow == 0 || i == progress.Capacity-1 {
			fmt.Println(row.String())
			row.Reset()
		}
	}
}

func init() {
	cardCmd.AddCommand(cardShowCmd)
	cardCmd.AddCommand(cardAdvanceCmd)
}

// CardCmd returns the card command tree.
func CardCmd() *cobra.Command {
	return cardCmd
}
