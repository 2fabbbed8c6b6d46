package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPillars(t *testing.T, year, month, day, hour string) Pillars {
	t.Helper()
	p, err := ParsePillars(year, month, day, hour)
	require.NoError(t, err)
	return p
}

func TestRegularPattern_MonthCommandPeer(t *testing.T) {
	// 寅 main qi 甲 equals the day master: 建禄.
	assert.Equal(t, "建禄格", RegularPattern("甲", "寅", []Stem{"丙", "丁", "戊"}))
	// 卯 main qi 乙 is the yin twin: 羊刃.
	assert.Equal(t, "羊刃格", RegularPattern("甲", "卯", []Stem{"丙", "丁", "戊"}))
}

func TestRegularPattern_MainQiTransparent(t *testing.T) {
	// 申 hides 庚壬戊; 庚 surfaces and is 七杀 to 甲.
	assert.Equal(t, "七杀格", RegularPattern("甲", "申", []Stem{"庚", "丁", "丙"}))
}

func TestRegularPattern_MiddleQiTransparent(t *testing.T) {
	// Main qi 庚 hidden, middle qi 壬 surfaces: 偏印 to 甲.
	assert.Equal(t, "偏印格", RegularPattern("甲", "申", []Stem{"壬", "丁", "丙"}))
}

func TestRegularPattern_FallbackToMainQi(t *testing.T) {
	// Nothing surfaces; main qi 癸 still sets the pattern: 正印 to 甲.
	assert.Equal(t, "正印格", RegularPattern("甲", "子", []Stem{"丙", "丁", "戊"}))
}

func TestSpecialPattern_UniformStems(t *testing.T) {
	p := mustPillars(t, "甲戌", "甲戌", "甲辰", "甲子")
	assert.Equal(t, "天元一气格", SpecialPattern(p))
}

func TestSpecialPattern_UniformBranches(t *testing.T) {
	p := mustPillars(t, "庚子", "丙子", "壬子", "庚子")
	assert.Equal(t, "地元一气格", SpecialPattern(p))
}

func TestSpecialPattern_RatNobleHour(t *testing.T) {
	p := mustPillars(t, "庚午", "戊子", "乙丑", "丙子")
	assert.Equal(t, "六乙鼠贵格", SpecialPattern(p))
}

func TestSpecialPattern_LuInHourBranch(t *testing.T) {
	// 甲's 禄 seat is 寅 and the hour branch carries it.
	p := mustPillars(t, "丁酉", "戊申", "甲辰", "丙寅")
	assert.Equal(t, "日禄归时格", SpecialPattern(p))
}

func TestSpecialPattern_FlyingLuHorse(t *testing.T) {
	// 壬 day over 子 with the branch tripled.
	p := mustPillars(t, "庚子", "丙子", "壬子", "辛丑")
	assert.Equal(t, "飞天禄马格", SpecialPattern(p))
}

func TestSpecialPattern_WellRailing(t *testing.T) {
	// 庚 day with the full 申子辰 trio.
	p := mustPillars(t, "壬申", "壬子", "庚辰", "丙戌")
	assert.Equal(t, "井栏叉马格", SpecialPattern(p))
}

func TestSpecialPattern_Transformation(t *testing.T) {
	// 甲 and 己 combine; 丑 backs the earth transformation.
	p := mustPillars(t, "丙寅", "己丑", "甲子", "丙戌")
	assert.Equal(t, "化土格", SpecialPattern(p))
}

func TestSpecialPattern_KuiGangDay(t *testing.T) {
	p := mustPillars(t, "甲戌", "丙寅", "庚辰", "丁亥")
	assert.Equal(t, "魁罡格", SpecialPattern(p))
}

func TestSpecialPattern_GoldenSpiritHour(t *testing.T) {
	p := mustPillars(t, "丙寅", "丁酉", "甲辰", "癸酉")
	assert.Equal(t, "金神格", SpecialPattern(p))
}

func TestSpecialPattern_PriorityOrder(t *testing.T) {
	// Four 子 branches also satisfy 飞天禄马, but uniform branches win.
	p := mustPillars(t, "庚子", "丙子", "壬子", "壬子")
	assert.Equal(t, "地元一气格", SpecialPattern(p))

	// Four 甲子 pillars satisfy 天元一气, 地元一气 and 子遥巳 at once;
	// the first rule takes it.
	p = mustPillars(t, "甲子", "甲子", "甲子", "甲子")
	assert.Equal(t, "天元一气格", SpecialPattern(p))
}

func TestSpecialPattern_NoMatch(t *testing.T) {
	p := mustPillars(t, "己巳", "丙子", "丙寅", "甲午")
	assert.Equal(t, "", SpecialPattern(p))
}

func TestClassifyPattern_SpecialWins(t *testing.T) {
	p := mustPillars(t, "庚子", "丙子", "壬子", "辛丑")
	result := ClassifyPattern(p)
	assert.Equal(t, "飞天禄马格", result.Name)
	assert.Equal(t, PatternSpecial, result.Type)
}

func TestClassifyPattern_FallsBackToRegular(t *testing.T) {
	// Month 子 hides only 癸, which stays buried: 正官 to 丙.
	p := mustPillars(t, "己巳", "丙子", "丙寅", "甲午")
	result := ClassifyPattern(p)
	assert.Equal(t, "正官格", result.Name)
	assert.Equal(t, PatternRegular, result.Type)
}
