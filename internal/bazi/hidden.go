package bazi

// hiddenStems maps each branch to the stems concealed in it, main qi first,
// then middle qi, then residual qi.
var hiddenStems = map[Branch][]Stem{
	"子": {"癸"},
	"丑": {"己", "癸", "辛"},
	"寅": {"甲", "丙", "戊"},
	"卯": {"乙"},
	"辰": {"戊", "乙", "癸"},
	"巳": {"丙", "戊", "庚"},
	"午": {"丁", "己"},
	"未": {"己", "丁", "乙"},
	"申": {"庚", "壬", "戊"},
	"酉": {"辛"},
	"戌": {"戊", "辛", "丁"},
	"亥": {"壬", "甲"},
}

// HiddenStems returns the stems concealed in a branch, main qi first.
// The returned slice is a copy.
func HiddenStems(b Branch) []Stem {
	src := hiddenStems[b]
	out := make([]Stem, len(src))
	copy(out, src)
	return out
}

// MainQi returns the dominant hidden stem of a branch.
func MainQi(b Branch) Stem {
	return hiddenStems[b][0]
}

// HiddenStemSet holds the hidden stems of each pillar branch.
type HiddenStemSet struct {
	Year  []Stem
	Month []Stem
	Day   []Stem
	Hour  []Stem
}

func ChartHiddenStems(p Pillars) HiddenStemSet {
	return HiddenStemSet{
		Year:  HiddenStems(p.Year.Branch),
		Month: HiddenStems(p.Month.Branch),
		Day:   HiddenStems(p.Day.Branch),
		Hour:  HiddenStems(p.Hour.Branch),
	}
}
