package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

var branchOrder = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// shichenMidHours maps each two-hour watch of the traditional day to its
// midpoint clock hour. 子时 straddles midnight, so its midpoint is 0.
var shichenMidHours = map[string]int{
	"子": 0,
	"丑": 2,
	"寅": 4,
	"卯": 6,
	"辰": 8,
	"巳": 10,
	"午": 12,
	"未": 14,
	"申": 16,
	"酉": 18,
	"戌": 20,
	"亥": 22,
}

// ShichenNames returns the twelve watch names in day order, each with
// the 时 suffix, for menus.
func ShichenNames() []string {
	names := make([]string, 0, len(branchOrder))
	for _, b := range branchOrder {
		names = append(names, b+"时")
	}
	return names
}

// ShichenLabel names the watch a clock hour falls in, e.g. 12 → 午时.
// 23:00 already belongs to the next day's 子时.
func ShichenLabel(hour int) string {
	h := ((hour % 24) + 24) % 24
	return branchOrder[((h+1)/2)%12] + "时"
}

// ParseBirthHour turns a recorded birth hour into a clock hour and
// minute. Profiles store the hour as entered: "14:30", a bare "14", or
// a watch name like "午时" (which resolves to the watch midpoint).
func ParseBirthHour(s string) (hour, minute int, err error) {
	v := strings.TrimSpace(s)
	v = strings.ReplaceAll(v, "：", ":")
	if v == "" {
		return 0, 0, fmt.Errorf("parsing birth hour: empty value")
	}

	if branch, ok := strings.CutSuffix(v, "时"); ok {
		v = branch
	}
	if mid, ok := shichenMidHours[v]; ok {
		return mid, 0, nil
	}

	hPart, mPart, hasMinute := strings.Cut(v, ":")
	h, err := strconv.Atoi(hPart)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing birth hour %q: not a clock time or watch name", s)
	}
	m := 0
	if hasMinute {
		m, err = strconv.Atoi(mPart)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing birth hour %q: bad minutes", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("parsing birth hour %q: out of range", s)
	}
	return h, m, nil
}
