package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthHour_ClockTime(t *testing.T) {
	h, m, err := ParseBirthHour("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, h)
	assert.Equal(t, 30, m)
}

func TestParseBirthHour_FullWidthColon(t *testing.T) {
	h, m, err := ParseBirthHour("14：30")
	require.NoError(t, err)
	assert.Equal(t, 14, h)
	assert.Equal(t, 30, m)
}

func TestParseBirthHour_BareHour(t *testing.T) {
	h, m, err := ParseBirthHour("7")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 0, m)
}

func TestParseBirthHour_Whitespace(t *testing.T) {
	h, m, err := ParseBirthHour(" 08:05 ")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 5, m)
}

func TestParseBirthHour_WatchName(t *testing.T) {
	h, m, err := ParseBirthHour("午时")
	require.NoError(t, err)
	assert.Equal(t, 12, h)
	assert.Equal(t, 0, m)
}

func TestParseBirthHour_BareBranch(t *testing.T) {
	h, _, err := ParseBirthHour("酉")
	require.NoError(t, err)
	assert.Equal(t, 18, h)
}

func TestParseBirthHour_MidnightWatch(t *testing.T) {
	h, _, err := ParseBirthHour("子时")
	require.NoError(t, err)
	assert.Equal(t, 0, h)
}

func TestParseBirthHour_Invalid(t *testing.T) {
	for _, in := range []string{"", "25:00", "12:61", "-1", "甲时", "noon"} {
		_, _, err := ParseBirthHour(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestShichenLabel(t *testing.T) {
	assert.Equal(t, "子时", ShichenLabel(23))
	assert.Equal(t, "子时", ShichenLabel(0))
	assert.Equal(t, "丑时", ShichenLabel(1))
	assert.Equal(t, "午时", ShichenLabel(12))
	assert.Equal(t, "未时", ShichenLabel(13))
	assert.Equal(t, "亥时", ShichenLabel(22))
}

func TestShichenNames_TwelveInOrder(t *testing.T) {
	names := ShichenNames()
	require.Len(t, names, 12)
	assert.Equal(t, "子时", names[0])
	assert.Equal(t, "亥时", names[11])
}

func TestShichenNames_RoundTrip(t *testing.T) {
	for _, name := range ShichenNames() {
		h, m, err := ParseBirthHour(name)
		require.NoError(t, err, name)
		assert.Zero(t, m)
		assert.Equal(t, name, ShichenLabel(h), "watch %s midpoint %d", name, h)
	}
}
