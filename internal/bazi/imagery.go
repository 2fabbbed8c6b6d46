package bazi

import (
	"fmt"
	"strings"
)

// Season labels by month branch.
var seasonOf = map[Branch]string{
	"寅": "春", "卯": "春", "辰": "春",
	"巳": "夏", "午": "夏", "未": "夏",
	"申": "秋", "酉": "秋", "戌": "秋",
	"亥": "冬", "子": "冬", "丑": "冬",
}

// natureImages gives each element a poetic image per season, used to seed
// persona-style readings.
var natureImages = map[Element]map[string]string{
	Wood: {
		"春": "Spring Willow (Vitality)",
		"夏": "Dry Wood in Fire (Burning)",
		"秋": "Withered Wood (Changes)",
		"冬": "Floating Wood or Winter Orchid (Dormant)",
	},
	Fire: {
		"春": "Wood Fire (Bright)",
		"夏": "Volcano (Intense)",
		"秋": "Sunset Glow (Fading)",
		"冬": "Candle in Snow (Precious)",
	},
	Earth: {
		"春": "Loose Soil (Weak)",
		"夏": "Dry Earth (Cracked)",
		"秋": "Mountain (Stable)",
		"冬": "Frozen Earth (Hard)",
	},
	Metal: {
		"春": "Rusty Metal (Dull)",
		"夏": "Molten Metal (Soft)",
		"秋": "Sharp Sword (Strong)",
		"冬": "Cold Steel (Chilling)",
	},
	Water: {
		"春": "Morning Dew (Gentle)",
		"夏": "Evaporating Pond (Scarse)",
		"秋": "Clear Stream (Flowing)",
		"冬": "Iceberg/Ocean (Frozen/Deep)",
	},
}

// Season returns the season label of a month branch.
func Season(monthBranch Branch) string {
	return seasonOf[monthBranch]
}

// NatureImageHint renders the day master's seasonal image line fed to
// persona generation.
func NatureImageHint(dayMaster Stem, monthBranch Branch) string {
	image := natureImages[dayMaster.Element()][seasonOf[monthBranch]]
	return fmt.Sprintf("%s Day Master in %s (%s) Month -> Image Hint: %s",
		dayMaster, monthBranch, seasonOf[monthBranch], image)
}

// CoreConflictHint summarizes the chart's central tension: strength posture
// plus any clashes among the branches.
func CoreConflictHint(isStrong bool, interactions []string) string {
	hints := []string{}
	if isStrong {
		hints = append(hints, "Self is Strong -> Needs Venting/Control")
	} else {
		hints = append(hints, "Self is Weak -> Needs Support")
	}
	for _, i := range interactions {
		if strings.Contains(i, "冲") {
			hints = append(hints, "Clash Detected: "+i)
		}
	}
	return strings.Join(hints, "; ")
}
