package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpcomingAnnual_FiltersSortsAndCaps(t *testing.T) {
	cycles := []AnnualCycle{
		{Year: 2030, Age: 41, GanZhi: "庚戌"},
		{Year: 2024, Age: 35, GanZhi: "甲辰"},
		{Year: 2026, Age: 37, GanZhi: "丙午"},
		{Year: 2025, Age: 36, GanZhi: "乙巳"},
	}

	out := UpcomingAnnual(cycles, 2025, 2)
	assert.Len(t, out, 2)
	assert.Equal(t, 2025, out[0].Year)
	assert.Equal(t, 2026, out[1].Year)
}

func TestUpcomingAnnual_KeepsAllWhenUnderLimit(t *testing.T) {
	cycles := []AnnualCycle{
		{Year: 2026, GanZhi: "丙午"},
		{Year: 2025, GanZhi: "乙巳"},
	}
	out := UpcomingAnnual(cycles, 2020, 10)
	assert.Len(t, out, 2)
	assert.Equal(t, 2025, out[0].Year)
}

func TestUpcomingAnnual_EmptyWhenAllPast(t *testing.T) {
	cycles := []AnnualCycle{{Year: 2019, GanZhi: "己亥"}}
	assert.Empty(t, UpcomingAnnual(cycles, 2025, 10))
}

func TestCurrentDecade(t *testing.T) {
	decades := []Decade{
		{GanZhi: "", StartYear: 1990, EndYear: 1992, StartAge: 1, EndAge: 3},
		{GanZhi: "丁丑", StartYear: 1993, EndYear: 2002, StartAge: 4, EndAge: 13},
		{GanZhi: "戊寅", StartYear: 2003, EndYear: 2012, StartAge: 14, EndAge: 23},
	}

	d := CurrentDecade(decades, 2005)
	assert.NotNil(t, d)
	assert.Equal(t, "戊寅", d.GanZhi)

	assert.Nil(t, CurrentDecade(decades, 2050))
	assert.Nil(t, CurrentDecade(nil, 2005))
}
