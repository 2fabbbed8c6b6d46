package bazi

import "sort"

// FortuneStart is the countdown from birth to the first luck decade.
type FortuneStart struct {
	Years  int
	Months int
	Days   int
}

// Decade is one ten-year luck pillar (大运). The first entry may carry an
// empty GanZhi: the span before the first decade begins.
type Decade struct {
	GanZhi    string
	StartYear int
	EndYear   int
	StartAge  int
	EndAge    int
}

// AnnualCycle is one year's pillar (流年).
type AnnualCycle struct {
	Year   int
	Age    int
	GanZhi string
}

// MonthlyCycle is one month's pillar within a year (流月).
type MonthlyCycle struct {
	Month  string
	GanZhi string
}

// FortuneCycles groups the luck cycles derived for one chart.
type FortuneCycles struct {
	Start   FortuneStart
	Decades []Decade
	Annual  []AnnualCycle
	Monthly []MonthlyCycle
}

// UpcomingAnnual keeps the annual cycles from fromYear on, ascending, at
// most limit entries.
func UpcomingAnnual(cycles []AnnualCycle, fromYear, limit int) []AnnualCycle {
	out := make([]AnnualCycle, 0, limit)
	for _, c := range cycles {
		if c.Year >= fromYear {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CurrentDecade returns the decade covering year, or nil when the cycles
// don't reach it.
func CurrentDecade(decades []Decade, year int) *Decade {
	for i := range decades {
		d := decades[i]
		if d.StartYear <= year && year <= d.EndYear {
			return &d
		}
	}
	return nil
}
