package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSpirits_AnchorChart(t *testing.T) {
	// 丙 day master over 寅, branches 巳子寅午: the general star and blade
	// both land on 午, 福星 on 子, 禄神 on 巳, and month 子 grants 天德
	// through the 己 year stem.
	p := mustPillars(t, "己巳", "丙子", "丙寅", "甲午")
	spirits := ComputeSpirits(p)
	assert.Equal(t, []string{
		"将星(午)",
		"羊刃(午)",
		"福星(子)",
		"禄神(巳)",
		"天德(己)",
	}, spirits)
}

func TestComputeSpirits_NoblemanScansAllBranches(t *testing.T) {
	// 甲's noblemen sit at 丑 and 未; both present, both reported.
	p := mustPillars(t, "乙丑", "癸未", "甲午", "庚午")
	spirits := ComputeSpirits(p)
	assert.Contains(t, spirits, "天乙贵人(丑)")
	assert.Contains(t, spirits, "天乙贵人(未)")
}

func TestComputeSpirits_DedupKeepsFirstOccurrence(t *testing.T) {
	// Two 丑 branches both hit 甲's nobleman scan; the label appears once.
	p := mustPillars(t, "乙丑", "癸丑", "甲午", "庚寅")
	spirits := ComputeSpirits(p)
	count := 0
	for _, s := range spirits {
		if s == "天乙贵人(丑)" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestComputeSpirits_PeachBlossomByDayTrine(t *testing.T) {
	// Day branch 子 belongs to the 申子辰 trine; its flower is 酉.
	p := mustPillars(t, "辛酉", "庚子", "甲子", "乙亥")
	assert.Contains(t, ComputeSpirits(p), "桃花(酉)")
}

func TestComputeSpirits_RomanceStarsByYearBranch(t *testing.T) {
	// Year branch 子: 红鸾 at 卯, 天喜 at 酉.
	p := mustPillars(t, "甲子", "丁卯", "戊辰", "辛酉")
	spirits := ComputeSpirits(p)
	assert.Contains(t, spirits, "红鸾(卯)")
	assert.Contains(t, spirits, "天喜(酉)")
}

func TestComputeSpirits_MonthVirtueChecksStems(t *testing.T) {
	// Month 寅 wants 丙 among the stems.
	withBing := mustPillars(t, "丙申", "庚寅", "戊辰", "癸丑")
	assert.Contains(t, ComputeSpirits(withBing), "月德(丙)")

	withoutBing := mustPillars(t, "甲申", "庚寅", "戊辰", "癸丑")
	assert.NotContains(t, ComputeSpirits(withoutBing), "月德(丙)")
}

func TestComputeSpirits_HeavenVirtueBranchTargetsNeverMatch(t *testing.T) {
	// Month 卯 points 天德 at 申, which is a branch: the stem scan can
	// never find it, so the star stays silent even with 申 present.
	p := mustPillars(t, "壬申", "癸卯", "戊申", "庚申")
	for _, s := range ComputeSpirits(p) {
		assert.NotContains(t, s, "天德")
	}
}
