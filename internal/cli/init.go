package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/core/card"
	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/wire"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the loyalty card",
	Long:  "First-run setup: who you suffer for, how many stamps fill a card, and how it looks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		company, _ := cmd.Flags().GetString("company")
		target, _ := cmd.Flags().GetInt("target")
		theme, _ := cmd.Flags().GetString("theme")

		settings, err := wire.SettingsService().Get(ctx)
		if err != nil {
			return err
		}
		if settings.OnboardingDone {
			return fmt.Errorf("already set up - use 'quitcard config' to change settings, or 'quitcard reset' to start over")
		}

		if company != "" {
			if err := wire.SettingsService().SetCompanyName(ctx, company); err != nil {
				return err
			}
		}
		if err := wire.SettingsService().SetTargetStamps(ctx, target); err != nil {
			return err
		}
		if err := wire.SettingsService().SetTheme(ctx, theme); err != nil {
			return err
		}
		if err := wire.SettingsService().CompleteOnboarding(ctx); err != nil {
			return err
		}

		fmt.Println("✓ Loyalty card ready")
		if company != "" {
			fmt.Printf("  Company: %s\n", company)
		}
		fmt.Printf("  Stamps per card: %d\n", target)
		fmt.Printf("  Theme: %s\n", theme)
		fmt.Println()
		fmt.Println("Bad day? 'quitcard stamp add <reason>'")
		return nil
	},
}

func init() {
	initCmd.Flags().StringP("company", "c", "", "Company the card is suffered at")
	initCmd.Flags().IntP("target", "t", card.DefaultCapacity, "Stamps needed to fill a card")
	initCmd.Flags().String("theme", primary.ThemeClassicRPG,
		fmt.Sprintf("Card theme (%s)", strings.Join(primary.ValidThemes, ", ")))
}

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return initCmd
}
