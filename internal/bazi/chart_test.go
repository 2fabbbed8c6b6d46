package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_FullChart(t *testing.T) {
	p, err := ParsePillars("己巳", "丙子", "丙寅", "甲午")
	require.NoError(t, err)

	chart := Derive(p)

	assert.Equal(t, Stem("丙"), chart.DayMaster)
	assert.Equal(t, Branch("子"), chart.MonthBranch)

	assert.Equal(t, "正官格", chart.Pattern.Name)
	assert.Equal(t, PatternRegular, chart.Pattern.Type)

	assert.Equal(t, HurtingOfficer, chart.TenGods.Year)
	assert.Equal(t, Friend, chart.TenGods.Month)
	assert.Equal(t, IndirectSeal, chart.TenGods.Hour)

	assert.Equal(t, []Stem{"丙", "戊", "庚"}, chart.HiddenStems.Year)
	assert.Equal(t, []Stem{"癸"}, chart.HiddenStems.Month)

	assert.Equal(t, "身弱", chart.Strength.Result)
	assert.Equal(t, 40, chart.Strength.Score)

	assert.Equal(t, "长生", chart.Stages.Day)
	assert.Equal(t, [2]Branch{"戌", "亥"}, chart.DayVoids)

	assert.Equal(t, "炉中火", chart.NaYin.Day)
	assert.Equal(t, []string{"子午相冲"}, chart.Interactions)
	assert.Equal(t, []string{"⚠️子午冲"}, chart.Formations)

	assert.Equal(t, "火势气弱", chart.Climate.Status)
	assert.True(t, chart.Climate.Urgent)
}

func TestDerive_Deterministic(t *testing.T) {
	p, err := ParsePillars("己巳", "丙子", "丙寅", "甲午")
	require.NoError(t, err)
	assert.Equal(t, Derive(p), Derive(p))
}

func TestDerive_DayVoidsMatchDayPillar(t *testing.T) {
	p, err := ParsePillars("甲子", "丙寅", "庚午", "壬午")
	require.NoError(t, err)
	chart := Derive(p)
	assert.Equal(t, Voids(p.Day), chart.DayVoids)
	assert.Equal(t, chart.Voids.Day, chart.DayVoids)
}

func TestChart_PillarLine(t *testing.T) {
	p, err := ParsePillars("己巳", "丙子", "丙寅", "甲午")
	require.NoError(t, err)
	chart := Derive(p)
	assert.Equal(t, "年柱: 己巳  月柱: 丙子  日柱: 丙寅  时柱: 甲午", chart.PillarLine())
}

func TestChart_CoreConflictReflectsClash(t *testing.T) {
	p, err := ParsePillars("己巳", "丙子", "丙寅", "甲午")
	require.NoError(t, err)
	chart := Derive(p)
	assert.Equal(t, "Self is Weak -> Needs Support; Clash Detected: 子午相冲", chart.CoreConflict())
}
