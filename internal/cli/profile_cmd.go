package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/domain"
)

// parseBirthDate splits YYYY-MM-DD without time.Parse: lunar dates name
// days the Gregorian calendar lacks (a 闰月 三十 is no Feb 30), so range
// checks are left to validation and the calendar layer.
func parseBirthDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid birth date %q: want YYYY-MM-DD", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid birth date %q: %w", s, convErr)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage birth profiles",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileDeleteCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *App) *cobra.Command {
	var gender, date, hour, city string
	var lunar bool

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Create a birth profile (wizard when run without arguments)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 && !cmd.Flags().Changed("date") {
				if !app.interactive() {
					return fmt.Errorf("profile name and flags are required outside a terminal")
				}
				return runProfileWizard(ctx, app)
			}
			if len(args) == 0 {
				return fmt.Errorf("profile name is required")
			}

			year, month, day, err := parseBirthDate(date)
			if err != nil {
				return err
			}

			p := &domain.Profile{
				ID:         args[0],
				Gender:     domain.Gender(gender),
				BirthYear:  year,
				BirthMonth: month,
				BirthDay:   day,
				BirthHour:  hour,
				City:       city,
				IsLunar:    lunar,
				CreatedAt:  time.Now(),
			}

			if err := app.Profiles.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created profile %s (%s %s %s)\n", p.ID, p.Gender, p.BirthDateLabel(), p.BirthHour)
			return nil
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "", "Gender (男|女)")
	cmd.Flags().StringVar(&date, "date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&hour, "hour", "", "Birth hour (HH:MM, bare hour, or 时辰 like 午时)")
	cmd.Flags().StringVar(&city, "city", "", "Birth city for true-solar-time correction")
	cmd.Flags().BoolVar(&lunar, "lunar", false, "Birth date is a lunar (农历) date")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProfileList(profiles))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	var readings int

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a profile and its recent readings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profiles.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProfileDetail(p))

			recent, err := app.Readings.ListByProfile(ctx, p.ID, readings)
			if err != nil {
				return err
			}
			if len(recent) > 0 {
				fmt.Printf("%s\n", formatter.FormatReadingList(recent))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&readings, "readings", 5, "How many recent readings to show (0 for all)")

	return cmd
}

func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a profile and its readings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted profile %s and its readings\n", args[0])
			return nil
		},
	}
}
