package bazi

// PatternType distinguishes the rare special structures from the regular
// eight patterns derived by the transparency method.
type PatternType string

const (
	PatternSpecial PatternType = "特殊格局"
	PatternRegular PatternType = "正格"
)

type PatternResult struct {
	Name string
	Type PatternType
}

// luBranch maps each stem to the branch where it sits at 临官, its 禄 seat.
var luBranch = map[Stem]Branch{
	"甲": "寅", "乙": "卯", "丙": "巳", "丁": "午", "戊": "巳",
	"己": "午", "庚": "申", "辛": "酉", "壬": "亥", "癸": "子",
}

// transformPairs are the five stem combinations and the month element each
// one needs to actually transform (化气).
var transformPairs = []struct {
	a, b    Stem
	element Element
	name    string
}{
	{"甲", "己", Earth, "化土格"},
	{"乙", "庚", Metal, "化金格"},
	{"丙", "辛", Water, "化水格"},
	{"丁", "壬", Wood, "化木格"},
	{"戊", "癸", Fire, "化火格"},
}

// ClassifyPattern determines the chart's pattern: special structures take
// priority, the transparency method covers everything else.
func ClassifyPattern(p Pillars) PatternResult {
	if name := SpecialPattern(p); name != "" {
		return PatternResult{Name: name, Type: PatternSpecial}
	}
	others := []Stem{p.Year.Stem, p.Month.Stem, p.Hour.Stem}
	return PatternResult{
		Name: RegularPattern(p.DayMaster(), p.Month.Branch, others),
		Type: PatternRegular,
	}
}

// SpecialPattern checks the rare structures in fixed priority order and
// returns the first match, or "" when none applies. The order matters: a
// chart can satisfy several rules and the earliest one wins.
func SpecialPattern(p Pillars) string {
	stems := p.StemList()
	branches := p.BranchList()
	dm, db := p.Day.Stem, p.Day.Branch
	hs, hb := p.Hour.Stem, p.Hour.Branch

	// 天元一气: four identical stems.
	if stems[0] == stems[1] && stems[1] == stems[2] && stems[2] == stems[3] {
		return "天元一气格"
	}
	// 地元一气: four identical branches.
	if branches[0] == branches[1] && branches[1] == branches[2] && branches[2] == branches[3] {
		return "地元一气格"
	}
	// 壬骑龙背: 壬辰 day with 辰 or 寅 dominating the branches.
	if dm == "壬" && db == "辰" {
		chen := countBranch(branches, "辰")
		yin := countBranch(branches, "寅")
		if chen >= 3 || (yin > 0 && chen >= 2) || yin >= 3 {
			return "壬骑龙背格"
		}
	}
	// 六乙鼠贵: 乙 day born in the 子 hour.
	if dm == "乙" && hb == "子" {
		return "六乙鼠贵格"
	}
	// 六阴朝阳: 辛 day born in the 子 hour.
	if dm == "辛" && hb == "子" {
		return "六阴朝阳格"
	}
	// 刑合: 癸 day with a 甲寅 hour.
	if dm == "癸" && hs == "甲" && hb == "寅" {
		return "刑合格"
	}
	// 拱禄: day and hour branches bracket the day master's 禄 seat.
	if dm == "癸" && ((db == "亥" && hb == "丑") || (db == "丑" && hb == "亥")) {
		return "拱禄格"
	}
	if (dm == "丁" || dm == "己") && ((db == "巳" && hb == "未") || (db == "未" && hb == "巳")) {
		return "拱禄格"
	}
	// 拱贵: day and hour branches bracket the noble star.
	if dm == "甲" && ((db == "申" && hb == "戌") || (db == "戌" && hb == "申")) {
		return "拱贵格"
	}
	// 日禄归时: the day master's 禄 seat sits in the hour branch.
	if luBranch[dm] == hb {
		return "日禄归时格"
	}
	// 飞天禄马: 庚/壬 over 子 or 辛/癸 over 亥, the branch tripled.
	if (dm == "庚" || dm == "壬") && db == "子" && countBranch(branches, "子") >= 3 {
		return "飞天禄马格"
	}
	if (dm == "辛" || dm == "癸") && db == "亥" && countBranch(branches, "亥") >= 3 {
		return "飞天禄马格"
	}
	// 井栏叉马: 庚 day with the full 申子辰 trio present.
	if dm == "庚" && countBranch(branches, "申") > 0 && countBranch(branches, "子") > 0 && countBranch(branches, "辰") > 0 {
		return "井栏叉马格"
	}
	// 子遥巳: 甲子 day with doubled 子.
	if dm == "甲" && db == "子" && countBranch(branches, "子") >= 2 {
		return "子遥巳格"
	}
	// 丑遥巳: 癸丑 or 辛丑 day with doubled 丑.
	if (dm == "癸" || dm == "辛") && db == "丑" && countBranch(branches, "丑") >= 2 {
		return "丑遥巳格"
	}
	// 化气: day and month stems combine and the month element backs the
	// transformation.
	ms, mb := p.Month.Stem, p.Month.Branch
	for _, tp := range transformPairs {
		if ((dm == tp.a && ms == tp.b) || (dm == tp.b && ms == tp.a)) && mb.Element() == tp.element {
			return tp.name
		}
	}
	// 魁罡: day pillar is one of the four 魁罡 days.
	switch p.Day.String() {
	case "戊戌", "庚戌", "庚辰", "壬辰":
		return "魁罡格"
	}
	// 金神: hour pillar is one of the three 金神 hours.
	switch p.Hour.String() {
	case "癸酉", "己巳", "乙丑":
		return "金神格"
	}
	return ""
}

// RegularPattern derives the 八格 name from the month command. otherStems are
// the year, month and hour stems; the day master never counts as transparent.
func RegularPattern(dayMaster Stem, monthBranch Branch, otherStems []Stem) string {
	hidden := hiddenStems[monthBranch]
	mainQi := hidden[0]

	// Month command matching the day master's element has its own names.
	switch (mainQi.Index() - dayMaster.Index() + 10) % 10 {
	case 0:
		return "建禄格"
	case 1:
		return "羊刃格"
	}

	// Transparency: main qi first, then middle and residual qi. When nothing
	// surfaces the main qi still sets the pattern.
	found := mainQi
	if !containsStem(otherStems, mainQi) {
		for _, s := range hidden[1:] {
			if containsStem(otherStems, s) {
				found = s
				break
			}
		}
	}
	return string(TenGodOf(dayMaster, found)) + "格"
}

func countBranch(branches [4]Branch, want Branch) int {
	n := 0
	for _, b := range branches {
		if b == want {
			n++
		}
	}
	return n
}

func containsStem(stems []Stem, want Stem) bool {
	for _, s := range stems {
		if s == want {
			return true
		}
	}
	return false
}
