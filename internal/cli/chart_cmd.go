package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
)

// birthFlags registers the ad-hoc birth flags shared by chart and cycles,
// writing into the given input.
func birthFlags(fs *pflag.FlagSet, b *contract.BirthInput, date *string) {
	fs.StringVar(&b.Gender, "gender", "", "Gender (男|女)")
	fs.StringVar(date, "date", "", "Birth date (YYYY-MM-DD)")
	fs.StringVar(&b.Hour, "hour", "", "Birth hour (HH:MM, bare hour, or 时辰 like 午时)")
	fs.StringVar(&b.City, "city", "", "Birth city for true-solar-time correction")
	fs.BoolVar(&b.IsLunar, "lunar", false, "Birth date is a lunar (农历) date")
}

// resolveBirth turns either a stored profile name or the ad-hoc flags
// into a chart input.
func resolveBirth(ctx context.Context, app *App, args []string, b contract.BirthInput, date string) (contract.BirthInput, error) {
	if len(args) > 0 {
		p, err := app.Profiles.GetByID(ctx, args[0])
		if err != nil {
			return contract.BirthInput{}, err
		}
		return contract.BirthFromProfile(p), nil
	}
	if date == "" {
		return contract.BirthInput{}, fmt.Errorf("a profile name or --date is required")
	}
	year, month, day, err := parseBirthDate(date)
	if err != nil {
		return contract.BirthInput{}, err
	}
	b.Year, b.Month, b.Day = year, month, day
	return b, nil
}

func newChartCmd(app *App) *cobra.Command {
	var birth contract.BirthInput
	var date string
	var noSolar bool

	cmd := &cobra.Command{
		Use:   "chart [NAME]",
		Short: "Derive the four-pillar chart for a profile or ad-hoc birth data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			b, err := resolveBirth(ctx, app, args, birth, date)
			if err != nil {
				return err
			}

			req := contract.NewChartRequest(b)
			if noSolar {
				req.UseSolarTime = false
			}
			resp, err := app.Charts.Compute(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatChart(*resp))
			return nil
		},
	}

	birthFlags(cmd.Flags(), &birth, &date)
	cmd.Flags().BoolVar(&noSolar, "no-solar-time", false, "Skip the true-solar-time correction")

	return cmd
}
