package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
)

func newDivineCmd(app *App) *cobra.Command {
	var question string
	var yes bool

	cmd := &cobra.Command{
		Use:   "divine NAME",
		Short: "Cast the daily hexagram for a profile (每日一卦)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// The quota allows one casting per day, so give an
			// interactive caller a chance to back out.
			if app.interactive() && !yes {
				var confirmed bool
				if err := wizardConfirm("每日仅此一卦，现在起卦？", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Printf("%s\n", formatter.Dim("已取消。"))
					return nil
				}
			}

			stopSpinner := formatter.StartSpinner("起卦中...")
			resp, err := app.Divination.Divine(ctx, contract.DivineRequest{
				ProfileID: args[0],
				Question:  question,
			})
			stopSpinner()

			var divineErr *contract.DivineError
			if errors.As(err, &divineErr) && divineErr.Code == contract.DivineErrQuotaExhausted {
				fmt.Printf("%s\n", formatter.Dim(divineErr.Message))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatDivination(*resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "What the casting is about")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
