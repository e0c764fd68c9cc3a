package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stamps, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cardFilter, _ := cmd.Flags().GetString("card")

		var stamps []*primary.Stamp
		var err error
		if cardFilter != "" {
			cardIndex, convErr := strconv.Atoi(cardFilter)
			if convErr != nil || cardIndex < 1 {
				return fmt.Errorf("invalid card index %q", cardFilter)
			}
			stamps, err = wire.StampService().StampsForCard(ctx, cardIndex)
		} else {
			stamps, err = wire.StampService().ListStamps(ctx)
		}
		if err != nil {
			return err
		}

		if len(stamps) == 0 {
			fmt.Println("No stamps yet")
			return nil
		}

		tbl := uitable.New()
		tbl.MaxColWidth = 50
		tbl.AddRow("ID", "CARD", "POS", "DATE", "REASON", "")
		for _, s := range stamps {
			marker := ""
			if s.Locked {
				marker = color.New(color.FgHiBlack).Sprint("[locked]")
			}
			if s.Special {
				marker += color.New(color.FgHiRed).Sprint(" ✊")
			}
			pos := fmt.Sprintf("%d/%d", s.Position, s.Capacity)
			tbl.AddRow(s.ID, s.CardIndex, pos, s.StampedAt.Format("2006-01-02 15:04"), s.Reason, marker)
		}
		fmt.Fprintln(color.Output, tbl)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("card", "c", "", "Only show stamps from one card")
}

// HistoryCmd returns the history command.
func HistoryCmd() *cobra.Command {
	return historyCmd
}
