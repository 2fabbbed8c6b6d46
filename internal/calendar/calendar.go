// Package calendar bridges civil time and the sexagenary calendar. It
// wraps lunar-go for the solar-to-ganzhi conversion and the luck cycle
// tables, returning everything in bazi types.
package calendar

import (
	"fmt"
	"time"

	lunar "github.com/6tail/lunar-go/calendar"

	"github.com/alexanderramin/tianji/internal/bazi"
)

// annualWindow caps how many upcoming annual cycles a reading carries.
const annualWindow = 10

func eightCharAt(t time.Time) *lunar.EightChar {
	solar := lunar.NewSolar(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	return solar.GetLunar().GetEightChar()
}

// PillarsAt converts a birth moment to its four pillars. Callers apply
// any true-solar-time correction before passing t in.
func PillarsAt(t time.Time) (bazi.Pillars, error) {
	ec := eightCharAt(t)
	p, err := bazi.ParsePillars(ec.GetYear(), ec.GetMonth(), ec.GetDay(), ec.GetTime())
	if err != nil {
		return bazi.Pillars{}, fmt.Errorf("convert %s: %w", t.Format("2006-01-02 15:04"), err)
	}
	return p, nil
}

// FortuneCyclesAt derives the luck cycles for a birth moment: the start
// countdown, the ten-year decades, the annual cycles from now's year on,
// and the current year's monthly cycles. Like PillarsAt, t is the
// corrected birth moment.
func FortuneCyclesAt(t time.Time, male bool, now time.Time) bazi.FortuneCycles {
	gender := 0
	if male {
		gender = 1
	}
	yun := eightCharAt(t).GetYun(gender)

	cycles := bazi.FortuneCycles{
		Start: bazi.FortuneStart{
			Years:  yun.GetStartYear(),
			Months: yun.GetStartMonth(),
			Days:   yun.GetStartDay(),
		},
	}

	nowYear := now.Year()
	var current *lunar.LiuNian
	for _, dy := range yun.GetDaYun() {
		cycles.Decades = append(cycles.Decades, bazi.Decade{
			GanZhi:    dy.GetGanZhi(),
			StartYear: dy.GetStartYear(),
			EndYear:   dy.GetEndYear(),
			StartAge:  dy.GetStartAge(),
			EndAge:    dy.GetEndAge(),
		})
		for _, ln := range dy.GetLiuNian() {
			if ln.GetYear() == nowYear {
				current = ln
			}
			if ln.GetYear() >= nowYear {
				cycles.Annual = append(cycles.Annual, bazi.AnnualCycle{
					Year:   ln.GetYear(),
					Age:    ln.GetAge(),
					GanZhi: ln.GetGanZhi(),
				})
			}
		}
	}
	cycles.Annual = bazi.UpcomingAnnual(cycles.Annual, nowYear, annualWindow)
	if len(cycles.Annual) == 0 {
		cycles.Annual = synthesizeAnnual(t.Year(), nowYear)
	}

	if current != nil {
		for _, ly := range current.GetLiuYue() {
			cycles.Monthly = append(cycles.Monthly, bazi.MonthlyCycle{
				Month:  ly.GetMonthInChinese() + "月",
				GanZhi: ly.GetGanZhi(),
			})
		}
	}
	if len(cycles.Monthly) == 0 {
		cycles.Monthly = synthesizeMonthly(nowYear)
	}
	return cycles
}

// SolarFromLunar converts a lunar birth date to its solar date. leap
// marks a leap-month date. lunar-go panics on dates outside its tables,
// so the conversion is fenced.
func SolarFromLunar(year, month, day int, leap bool) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid lunar date %d-%d-%d: %v", year, month, day, r)
		}
	}()
	m := month
	if leap {
		m = -month
	}
	solar := lunar.NewLunarFromYmd(year, m, day).GetSolar()
	return time.Date(solar.GetYear(), time.Month(solar.GetMonth()), solar.GetDay(), 0, 0, 0, 0, time.Local), nil
}

// synthesizeAnnual rebuilds annual pillars from mid-year solar dates for
// charts whose decades don't reach the current year anymore.
func synthesizeAnnual(birthYear, nowYear int) []bazi.AnnualCycle {
	out := make([]bazi.AnnualCycle, 0, annualWindow)
	for y := nowYear; y < nowYear+annualWindow; y++ {
		ec := eightCharAt(time.Date(y, time.June, 15, 12, 0, 0, 0, time.Local))
		out = append(out, bazi.AnnualCycle{
			Year:   y,
			Age:    y - birthYear,
			GanZhi: ec.GetYear(),
		})
	}
	return out
}

// synthesizeMonthly rebuilds the current year's month pillars from each
// month's mid-point.
func synthesizeMonthly(year int) []bazi.MonthlyCycle {
	out := make([]bazi.MonthlyCycle, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ec := eightCharAt(time.Date(year, m, 15, 12, 0, 0, 0, time.Local))
		out = append(out, bazi.MonthlyCycle{
			Month:  fmt.Sprintf("%d月", int(m)),
			GanZhi: ec.GetMonth(),
		})
	}
	return out
}
