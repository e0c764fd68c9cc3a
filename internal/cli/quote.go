package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/core/quote"
	"github.com/example/quitcard/internal/wire"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show the current motivational quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := wire.SettingsService().Get(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(quote.Pick(time.Now(), settings.QuoteRefreshHours))
		return nil
	},
}

// QuoteCmd returns the quote command.
func QuoteCmd() *cobra.Command {
	return quoteCmd
}
