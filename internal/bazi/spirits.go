package bazi

// Symbolic star (神煞) lookup tables. Stars keyed off the day master or day
// branch scan the whole chart; 天德/月德 key off the month branch and look
// for a stem, 红鸾/天喜/孤辰/寡宿 key off the year branch.

var noblemanTargets = map[Stem][]Branch{
	"甲": {"丑", "未"}, "戊": {"丑", "未"}, "庚": {"丑", "未"},
	"乙": {"子", "申"}, "己": {"子", "申"},
	"丙": {"亥", "酉"}, "丁": {"亥", "酉"},
	"壬": {"巳", "卯"}, "癸": {"巳", "卯"},
	"辛": {"午", "寅"},
}

// Peach blossom, travel horse, canopy and general star all key off the day
// branch's trine group.
var peachBlossomTarget = map[Branch]Branch{
	"申": "酉", "子": "酉", "辰": "酉",
	"寅": "卯", "午": "卯", "戌": "卯",
	"巳": "午", "酉": "午", "丑": "午",
	"亥": "子", "卯": "子", "未": "子",
}

var travelHorseTarget = map[Branch]Branch{
	"申": "寅", "子": "寅", "辰": "寅",
	"寅": "申", "午": "申", "戌": "申",
	"巳": "亥", "酉": "亥", "丑": "亥",
	"亥": "巳", "卯": "巳", "未": "巳",
}

var canopyTarget = map[Branch]Branch{
	"申": "辰", "子": "辰", "辰": "辰",
	"寅": "戌", "午": "戌", "戌": "戌",
	"巳": "丑", "酉": "丑", "丑": "丑",
	"亥": "未", "卯": "未", "未": "未",
}

var generalStarTarget = map[Branch]Branch{
	"申": "子", "子": "子", "辰": "子",
	"寅": "午", "午": "午", "戌": "午",
	"巳": "酉", "酉": "酉", "丑": "酉",
	"亥": "卯", "卯": "卯", "未": "卯",
}

var bladeTarget = map[Stem]Branch{
	"甲": "卯", "乙": "寅",
	"丙": "午", "丁": "巳",
	"戊": "午", "己": "巳",
	"庚": "酉", "辛": "申",
	"壬": "子", "癸": "亥",
}

var literaryTargets = map[Stem][]Branch{
	"甲": {"巳", "午"}, "乙": {"巳", "午"},
	"丙": {"申", "酉"}, "丁": {"申", "酉"},
	"戊": {"申", "酉"}, "己": {"申", "酉"},
	"庚": {"亥", "子"}, "辛": {"亥", "子"},
	"壬": {"寅", "卯"}, "癸": {"寅", "卯"},
}

var taijiTargets = map[Stem][]Branch{
	"甲": {"子", "午"}, "乙": {"子", "午"},
	"丙": {"卯", "酉"}, "丁": {"卯", "酉"},
	"戊": {"辰", "戌", "丑", "未"}, "己": {"辰", "戌", "丑", "未"},
	"庚": {"寅", "亥"}, "辛": {"寅", "亥"},
	"壬": {"巳", "申"}, "癸": {"巳", "申"},
}

var fortuneStarTargets = map[Stem][]Branch{
	"甲": {"丑", "未"}, "乙": {"丑", "未"},
	"丙": {"子", "申"}, "丁": {"子", "申"},
	"戊": {"寅", "戌"}, "己": {"寅", "戌"},
	"庚": {"卯", "亥"}, "辛": {"卯", "亥"},
	"壬": {"巳", "酉"}, "癸": {"巳", "酉"},
}

var stateSealTargets = map[Stem][]Branch{
	"甲": {"戌"}, "乙": {"亥"}, "丙": {"丑"}, "丁": {"寅"},
	"戊": {"丑"}, "己": {"寅"}, "庚": {"辰"}, "辛": {"巳"},
	"壬": {"未"}, "癸": {"申"},
}

// 天德 targets are stems for some months and branches for others; only stem
// targets can ever surface since the scan runs over the four stems.
var heavenVirtueTarget = map[Branch]string{
	"寅": "丁", "卯": "申", "辰": "壬", "巳": "辛",
	"午": "亥", "未": "甲", "申": "癸", "酉": "寅",
	"戌": "丙", "亥": "乙", "子": "己", "丑": "庚",
}

var monthVirtueTarget = map[Branch]Stem{
	"寅": "丙", "卯": "甲", "辰": "壬", "巳": "庚",
	"午": "丙", "未": "甲", "申": "壬", "酉": "庚",
	"戌": "丙", "亥": "甲", "子": "壬", "丑": "庚",
}

var redPhoenixTarget = map[Branch]Branch{
	"子": "卯", "丑": "寅", "寅": "丑", "卯": "子",
	"辰": "亥", "巳": "戌", "午": "酉", "未": "申",
	"申": "未", "酉": "午", "戌": "巳", "亥": "辰",
}

var heavenJoyTarget = map[Branch]Branch{
	"子": "酉", "丑": "申", "寅": "未", "卯": "午",
	"辰": "巳", "巳": "辰", "午": "卯", "未": "寅",
	"申": "丑", "酉": "子", "戌": "亥", "亥": "戌",
}

var lonelyStarTarget = map[Branch]Branch{
	"亥": "寅", "子": "寅", "丑": "寅",
	"寅": "巳", "卯": "巳", "辰": "巳",
	"巳": "申", "午": "申", "未": "申",
	"申": "亥", "酉": "亥", "戌": "亥",
}

var widowStarTarget = map[Branch]Branch{
	"亥": "戌", "子": "戌", "丑": "戌",
	"寅": "丑", "卯": "丑", "辰": "丑",
	"巳": "辰", "午": "辰", "未": "辰",
	"申": "未", "酉": "未", "戌": "未",
}

// ComputeSpirits collects every symbolic star present in the chart as
// 名(支) labels, e.g. 天乙贵人(丑). Duplicates are dropped keeping first
// occurrence, so the output order follows the rule order.
func ComputeSpirits(p Pillars) []string {
	dm := p.DayMaster()
	db := p.Day.Branch
	branches := p.BranchList()
	stems := p.StemList()

	var out []string
	seen := map[string]bool{}
	add := func(name string, target string) {
		label := name + "(" + target + ")"
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	scanBranches := func(name string, targets []Branch) {
		for _, b := range branches {
			for _, t := range targets {
				if b == t {
					add(name, string(b))
				}
			}
		}
	}
	hasBranch := func(want Branch) bool {
		return countBranch(branches, want) > 0
	}

	scanBranches("天乙贵人", noblemanTargets[dm])

	if t := peachBlossomTarget[db]; hasBranch(t) {
		add("桃花", string(t))
	}
	if t := travelHorseTarget[db]; hasBranch(t) {
		add("驿马", string(t))
	}
	if t := canopyTarget[db]; hasBranch(t) {
		add("华盖", string(t))
	}
	if t := generalStarTarget[db]; hasBranch(t) {
		add("将星", string(t))
	}
	if t := bladeTarget[dm]; hasBranch(t) {
		add("羊刃", string(t))
	}

	scanBranches("文昌", literaryTargets[dm])
	scanBranches("太极", taijiTargets[dm])
	scanBranches("福星", fortuneStarTargets[dm])
	scanBranches("国印", stateSealTargets[dm])

	if t := luBranch[dm]; hasBranch(t) {
		add("禄神", string(t))
	}

	if t := heavenVirtueTarget[p.Month.Branch]; t != "" && containsStem(stems[:], Stem(t)) {
		add("天德", t)
	}
	if t := monthVirtueTarget[p.Month.Branch]; containsStem(stems[:], t) {
		add("月德", string(t))
	}

	yb := p.Year.Branch
	if t := redPhoenixTarget[yb]; hasBranch(t) {
		add("红鸾", string(t))
	}
	if t := heavenJoyTarget[yb]; hasBranch(t) {
		add("天喜", string(t))
	}
	if t := lonelyStarTarget[yb]; hasBranch(t) {
		add("孤辰", string(t))
	}
	if t := widowStarTarget[yb]; hasBranch(t) {
		add("寡宿", string(t))
	}

	return out
}
