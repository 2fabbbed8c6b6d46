package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
)

func newCompatCmd(app *App) *cobra.Command {
	var relation, focus string
	var save bool

	cmd := &cobra.Command{
		Use:   "compat NAME_A NAME_B",
		Short: "Score two stored profiles against each other (合盘)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := app.Profiles.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			b, err := app.Profiles.GetByID(ctx, args[1])
			if err != nil {
				return err
			}

			req := contract.NewCompatRequest(contract.BirthFromProfile(a), contract.BirthFromProfile(b))
			req.RelationType = relation
			req.Focus = focus

			stopSpinner := formatter.StartSpinner("合盘推演中...")
			resp, err := app.Compat.Analyze(ctx, req)
			stopSpinner()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCompat(*resp, relation))

			if save && resp.Reading.Source != "refused" {
				r := &domain.Reading{
					ProfileID: a.ID,
					Kind:      domain.ReadingCompat,
					Topic:     "八字合婚",
					Question:  focus,
					Content:   resp.Reading.Text,
					Model:     resp.Reading.Model,
				}
				if err := app.Readings.Record(ctx, r); err != nil {
					return err
				}
				fmt.Printf("Saved reading %s\n", r.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&relation, "relation", "", "Relation framing (恋人/伴侣|事业合伙人|知己好友)")
	cmd.Flags().StringVar(&focus, "focus", "", "Core question to steer the reading")
	cmd.Flags().BoolVar(&save, "save", false, "Store the reading under NAME_A")

	return cmd
}
