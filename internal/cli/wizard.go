package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tianji/internal/calendar"
	"github.com/alexanderramin/tianji/internal/cli/formatter"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
)

// tianjiHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tianjiHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// exactHourOption is the hour-select escape hatch for people who know the
// clock time instead of the watch.
const exactHourOption = "精确时间"

type profileDraft struct {
	Name     string
	Gender   string
	Calendar string
	Date     string
	Hour     string
	City     string
}

func validateRequired(title string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

func validateBirthDate(s string) error {
	_, _, _, err := parseBirthDate(s)
	return err
}

func validateClockHour(s string) error {
	_, _, err := calendar.ParseBirthHour(s)
	return err
}

// wizardProfileForm collects the birth record. The hour select offers the
// twelve watches plus the exact-time escape hatch; the city select drives
// the true-solar-time correction.
func wizardProfileForm(d *profileDraft) *huh.Form {
	hourOptions := append(calendar.ShichenNames(), exactHourOption)

	cityOptions := make([]huh.Option[string], 0, len(calendar.Cities())+1)
	cityOptions = append(cityOptions, huh.NewOption("不校正（按北京时间）", ""))
	for _, city := range calendar.Cities() {
		cityOptions = append(cityOptions, huh.NewOption(city, city))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("档案名").
				Placeholder("ming").
				Value(&d.Name).
				Validate(validateRequired("档案名")),
			huh.NewSelect[string]().
				Title("性别").
				Options(huh.NewOptions("男", "女")...).
				Value(&d.Gender),
			huh.NewSelect[string]().
				Title("历法").
				Options(huh.NewOptions("公历", "农历")...).
				Value(&d.Calendar),
			huh.NewInput().
				Title("出生日期").
				Placeholder("1990-01-01").
				Value(&d.Date).
				Validate(validateBirthDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("出生时辰").
				Options(huh.NewOptions(hourOptions...)...).
				Value(&d.Hour),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("出生城市").
				Description("用于真太阳时校正").
				Options(cityOptions...).
				Value(&d.City),
		),
	).WithTheme(tianjiHuhTheme()).WithShowHelp(false)
}

// wizardExactHourForm asks for the clock time when the watch list was not
// precise enough.
func wizardExactHourForm(result *string) *huh.Form {
	*result = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("出生时间 (HH:MM)").
				Placeholder("12:30").
				Value(result).
				Validate(validateClockHour),
		),
	).WithTheme(tianjiHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("确认").
				Negative("取消").
				Value(result),
		),
	).WithTheme(tianjiHuhTheme()).WithShowHelp(false)
}

// runProfileWizard drives the interactive profile creation and prints the
// derived chart when done.
func runProfileWizard(ctx context.Context, app *App) error {
	var d profileDraft
	if err := wizardProfileForm(&d).Run(); err != nil {
		return err
	}
	if d.Hour == exactHourOption {
		if err := wizardExactHourForm(&d.Hour).Run(); err != nil {
			return err
		}
	}

	year, month, day, err := parseBirthDate(d.Date)
	if err != nil {
		return err
	}
	p := &domain.Profile{
		ID:         d.Name,
		Gender:     domain.Gender(d.Gender),
		BirthYear:  year,
		BirthMonth: month,
		BirthDay:   day,
		BirthHour:  d.Hour,
		City:       d.City,
		IsLunar:    d.Calendar == "农历",
		CreatedAt:  time.Now(),
	}
	if err := app.Profiles.Create(ctx, p); err != nil {
		return err
	}
	fmt.Printf("Created profile %s\n", p.ID)

	resp, err := app.Charts.Compute(ctx, contract.NewChartRequest(contract.BirthFromProfile(p)))
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", formatter.FormatChart(*resp))
	return nil
}
