package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/cli"
	"github.com/example/quitcard/internal/config"
	"github.com/example/quitcard/internal/db"
	"github.com/example/quitcard/internal/version"
)

func main() {
	// Tool config is optional; apply overrides before any command touches
	// the database.
	if cfg, err := config.LoadConfig(); err == nil {
		if cfg.DatabasePath != "" {
			db.SetPath(cfg.DatabasePath)
		}
		if cfg.NoColor {
			color.NoColor = true
		}
	}

	rootCmd := &cobra.Command{
		Use:     "quitcard",
		Short:   "quitcard - a loyalty card for bad days at work",
		Version: version.String(),
		Long: `quitcard is a stamp card for your job: every bad day earns a stamp,
and every filled card is one step closer to the resignation letter.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.StampCmd())
	rootCmd.AddCommand(cli.CardCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.TodoCmd())
	rootCmd.AddCommand(cli.ReasonCmd())
	rootCmd.AddCommand(cli.FundCmd())
	rootCmd.AddCommand(cli.QuoteCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.ResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
