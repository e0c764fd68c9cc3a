package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/config"
	"github.com/example/quitcard/internal/db"
	"github.com/example/quitcard/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := wire.SettingsService().Get(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Company: %s\n", orDash(settings.CompanyName))
		fmt.Printf("Theme: %s\n", orDash(settings.Theme))
		fmt.Printf("Stamps per card: %d\n", settings.TargetStamps)
		fmt.Printf("Quote refresh: every %d hour(s)\n", settings.QuoteRefreshHours)
		if dbPath, err := db.GetDBPath(); err == nil {
			fmt.Printf("Database: %s\n", dbPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting. Keys:
  company   Company name
  theme     Card theme
  target    Stamps needed to fill a card (applies to new stamps only)
  quotes    Quote refresh interval in hours
  db-path   Database file location (tool config, takes effect next run)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		key, value := args[0], args[1]

		switch key {
		case "company":
			return reportSet(wire.SettingsService().SetCompanyName(ctx, value), key, value)
		case "theme":
			return reportSet(wire.SettingsService().SetTheme(ctx, value), key, value)
		case "target":
			target, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid target %q", value)
			}
			return reportSet(wire.SettingsService().SetTargetStamps(ctx, target), key, value)
		case "quotes":
			hours, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid interval %q", value)
			}
			return reportSet(wire.SettingsService().SetQuoteRefreshHours(ctx, hours), key, value)
		case "db-path":
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg.DatabasePath = value
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("✓ db-path = %s (takes effect next run)\n", value)
			return nil
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
	},
}

func reportSet(err error, key, value string) error {
	if err != nil {
		return err
	}
	fmt.Printf("✓ %s = %s\n", key, value)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// ConfigCmd returns the config command tree.
func ConfigCmd() *cobra.Command {
	return configCmd
}
