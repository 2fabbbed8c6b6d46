package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStrength_WeakOffSeason(t *testing.T) {
	// 丙 fire in a 子 month: support from 巳(4) 丙(8) 寅(12) 甲(8) 午(8) = 40,
	// below the off-season threshold of 48.
	p := mustPillars(t, "己巳", "丙子", "丙寅", "甲午")
	result := ComputeStrength(p)

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, 48, result.Threshold)
	assert.False(t, result.InSeason)
	assert.False(t, result.IsStrong)
	assert.Equal(t, "身弱", result.Result)
	assert.Equal(t, "同党得分: 40, 判定阈值: 48 (失令)", result.ScoreInfo)
}

func TestComputeStrength_StrongInSeason(t *testing.T) {
	// 甲 wood in a 寅 month: 甲(4) 寅(4) 寅(40) 子(12) 乙(8) 亥(8) = 76,
	// well over the in-season threshold of 38.
	p := mustPillars(t, "甲寅", "丙寅", "甲子", "乙亥")
	result := ComputeStrength(p)

	assert.Equal(t, 76, result.Score)
	assert.Equal(t, 38, result.Threshold)
	assert.True(t, result.InSeason)
	assert.True(t, result.IsStrong)
	assert.Equal(t, "身旺", result.Result)
}

func TestComputeStrength_DayStemNeverScores(t *testing.T) {
	// Only the day stem matches the day master's party; score stays zero.
	p := mustPillars(t, "戊戌", "戊午", "甲申", "庚午")
	result := ComputeStrength(p)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.IsStrong)
}

func TestComputeStrength_NoSupportAnywhere(t *testing.T) {
	// 壬 water with a 戌 earth month and only fire and earth elsewhere:
	// nothing scores, the off-season threshold applies, and the weak
	// verdict favors water itself plus metal as its resource.
	p := mustPillars(t, "丙戌", "戊戌", "壬午", "丁巳")
	result := ComputeStrength(p)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 48, result.Threshold)
	assert.False(t, result.InSeason)
	assert.False(t, result.IsStrong)
	assert.Equal(t, "水、金", result.JoyElements)
}

func TestComputeStrength_JoyElements(t *testing.T) {
	// Weak chart favors its own element and its resource.
	weak := ComputeStrength(mustPillars(t, "己巳", "丙子", "丙寅", "甲午"))
	assert.Equal(t, "火、木", weak.JoyElements)

	// Strong chart favors the other three, in 金木水火土 order.
	strong := ComputeStrength(mustPillars(t, "甲寅", "丙寅", "甲子", "乙亥"))
	assert.Equal(t, "金、火、土", strong.JoyElements)
}

func TestComputeStrength_ResourceCountsAsSupport(t *testing.T) {
	// 壬 water with a 申 metal month: metal is water's resource, so the
	// month branch scores and the in-season threshold applies.
	p := mustPillars(t, "戊戌", "庚申", "壬午", "丙午")
	result := ComputeStrength(p)
	assert.True(t, result.InSeason)
	assert.Equal(t, 38, result.Threshold)
	// 庚(8) + 申(40) = 48.
	assert.Equal(t, 48, result.Score)
	assert.True(t, result.IsStrong)
}
