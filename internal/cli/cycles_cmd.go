package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
)

func newCyclesCmd(app *App) *cobra.Command {
	var birth contract.BirthInput
	var date string

	cmd := &cobra.Command{
		Use:   "cycles [NAME]",
		Short: "Show the luck cycles (大运/流年/流月) for a profile or ad-hoc birth data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			b, err := resolveBirth(ctx, app, args, birth, date)
			if err != nil {
				return err
			}

			resp, err := app.Charts.Compute(ctx, contract.NewChartRequest(b))
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCycles(resp.Cycles, time.Now().Year()))
			return nil
		},
	}

	birthFlags(cmd.Flags(), &birth, &date)

	return cmd
}
