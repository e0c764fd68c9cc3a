package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/core/quote"
	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/wire"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the full picture: card, fund, and plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		settings, err := wire.SettingsService().Get(ctx)
		if err != nil {
			return err
		}
		if !settings.OnboardingDone {
			fmt.Println("Not set up yet. Run 'quitcard init' first.")
			return nil
		}

		progress, err := wire.StampService().Progress(ctx)
		if err != nil {
			return err
		}

		title := "Quit Card"
		if settings.CompanyName != "" {
			title = fmt.Sprintf("Quit Card — %s", settings.CompanyName)
		}
		fmt.Println(color.New(color.Bold, color.FgHiWhite).Sprint(title))
		fmt.Println(color.New(color.FgHiBlack, color.Italic).Sprintf("%q", quote.Pick(time.Now(), settings.QuoteRefreshHours)))
		fmt.Println()

		printCard(progress)
		fmt.Println()

		if progress.AwaitingReview {
			fmt.Println(color.New(color.FgHiYellow).Sprint("Card filled! Advance it with 'quitcard card advance'"))
		} else if progress.StampedToday {
			fmt.Println("Today is stamped. Hang in there.")
		} else {
			fmt.Println("No stamp today yet. Maybe it's a good day?")
		}

		if progress.CompletedCards > 0 {
			fmt.Printf("Cards completed: %d (%d stamps total)\n", progress.CompletedCards, progress.TotalStamps)
		}
		if progress.EscalationCount > 0 {
			fmt.Printf("Grumbles today: %d\n", progress.EscalationCount)
		}

		printFund(settings)

		todos, err := wire.TodoService().ListTodos(ctx)
		if err != nil {
			return err
		}
		if len(todos) > 0 {
			done := 0
			for _, t := range todos {
				if t.Done {
					done++
				}
			}
			fmt.Printf("Escape plan: %d/%d items done\n", done, len(todos))
		}
		return nil
	},
}

// printFund renders runway-fund progress when a goal is set.
func printFund(settings *primary.Settings) {
	if settings.TargetFund <= 0 {
		return
	}

	percent := float64(settings.CurrentFund) / float64(settings.TargetFund) * 100
	if percent > 100 {
		percent = 100
	}
	fmt.Printf("Runway fund: %d / %d (%.0f%%)", settings.CurrentFund, settings.TargetFund, percent)
	if settings.ResumeReady {
		fmt.Print(color.New(color.FgHiGreen).Sprint("  [resume ready]"))
	}
	fmt.Println()
}

// StatusCmd returns the status command.
func StatusCmd() *cobra.Command {
	return statusCmd
}
