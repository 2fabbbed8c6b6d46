package contract

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/domain"
)

// BirthInput is the civil birth record a chart is computed from.
type BirthInput struct {
	Gender string // 男 / 女
	Year   int
	Month  int
	Day    int
	// Hour is the birth hour as entered: "14:30", a bare "14", or a
	// watch name like 午时.
	Hour string
	// City selects the longitude for true-solar-time correction; empty
	// or unknown cities skip the correction.
	City    string
	IsLunar bool
}

// BirthFromProfile maps a stored profile onto the chart input.
func BirthFromProfile(p *domain.Profile) BirthInput {
	return BirthInput{
		Gender:  string(p.Gender),
		Year:    p.BirthYear,
		Month:   p.BirthMonth,
		Day:     p.BirthDay,
		Hour:    p.BirthHour,
		City:    p.City,
		IsLunar: p.IsLunar,
	}
}

// Validate checks the fields the chart service cannot defer to the
// calendar layer. Hour syntax and actual calendar validity are checked
// during resolution.
func (b BirthInput) Validate() error {
	if !domain.ValidGenders[b.Gender] {
		return &ChartError{Code: ChartErrInvalidGender, Message: fmt.Sprintf("gender must be 男 or 女, got %q", b.Gender)}
	}
	if b.Year < domain.MinBirthYear || b.Year > domain.MaxBirthYear {
		return &ChartError{Code: ChartErrInvalidDate, Message: fmt.Sprintf("birth year %d outside %d-%d", b.Year, domain.MinBirthYear, domain.MaxBirthYear)}
	}
	if b.Month < 1 || b.Month > 12 || b.Day < 1 || b.Day > 31 {
		return &ChartError{Code: ChartErrInvalidDate, Message: fmt.Sprintf("%d-%d is not a month/day", b.Month, b.Day)}
	}
	if b.Hour == "" {
		return &ChartError{Code: ChartErrInvalidHour, Message: "birth hour is required"}
	}
	return nil
}

// ChartRequest asks for one derived chart.
type ChartRequest struct {
	Birth BirthInput
	// UseSolarTime applies the longitude correction when the city is
	// known. NewChartRequest enables it.
	UseSolarTime bool
	// Now anchors the fortune-cycle window; nil means the wall clock.
	Now *time.Time
}

func NewChartRequest(birth BirthInput) ChartRequest {
	return ChartRequest{Birth: birth, UseSolarTime: true}
}

// ChartResponse carries the derived chart and its luck cycles.
type ChartResponse struct {
	Chart  bazi.Chart
	Cycles bazi.FortuneCycles
	// Birth is the resolved civil instant; Corrected is the
	// solar-adjusted instant the calendar actually converted. They are
	// equal when no correction applied.
	Birth      time.Time
	Corrected  time.Time
	Correction bazi.SolarTimeCorrection
	// HasCorrection reports whether the birth city carried a longitude
	// and the correction ran.
	HasCorrection bool
}

type ChartErrorCode string

const (
	ChartErrInvalidGender ChartErrorCode = "INVALID_GENDER"
	ChartErrInvalidDate   ChartErrorCode = "INVALID_DATE"
	ChartErrInvalidHour   ChartErrorCode = "INVALID_HOUR"
)

type ChartError struct {
	Code    ChartErrorCode
	Message string
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
