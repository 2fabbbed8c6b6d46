package bazi

import "fmt"

// StrengthWeights are the per-slot points awarded when a chart position
// carries the day master's element or its resource. The month branch
// dominates; the day stem is the subject itself and never scores.
type StrengthWeights struct {
	YearStem    int
	YearBranch  int
	MonthStem   int
	MonthBranch int
	DayBranch   int
	HourStem    int
	HourBranch  int
}

func defaultStrengthWeights() StrengthWeights {
	return StrengthWeights{
		YearStem:    4,
		YearBranch:  4,
		MonthStem:   8,
		MonthBranch: 40,
		DayBranch:   12,
		HourStem:    8,
		HourBranch:  8,
	}
}

// Thresholds: a supported month command (得令) needs little extra help to
// count as strong, a hostile one (失令) needs a lot.
const (
	strongThresholdInSeason  = 38
	strongThresholdOffSeason = 48
)

// StrengthScale is the top of the scoring scale: the score of a chart
// whose every slot supports the day master.
func StrengthScale() int {
	w := defaultStrengthWeights()
	return w.YearStem + w.YearBranch + w.MonthStem + w.MonthBranch +
		w.DayBranch + w.HourStem + w.HourBranch
}

type StrengthResult struct {
	// Result is the verdict label, 身旺 or 身弱.
	Result   string
	IsStrong bool
	Score    int
	// Threshold applied for this chart, depending on the month command.
	Threshold int
	InSeason  bool
	// ScoreInfo is the human-readable scoring summary.
	ScoreInfo string
	// JoyElements names the favorable elements, 、-joined.
	JoyElements string
}

// ComputeStrength scores the day master's support across the chart. Same
// element and resource element count toward the score; crossing the
// threshold makes the chart strong.
func ComputeStrength(p Pillars) StrengthResult {
	weights := defaultStrengthWeights()
	dm := p.DayMaster().Element()
	resource := dm.Resource()

	supports := func(e Element) bool { return e == dm || e == resource }

	score := 0
	slots := []struct {
		weight  int
		element Element
	}{
		{weights.YearStem, p.Year.Stem.Element()},
		{weights.YearBranch, p.Year.Branch.Element()},
		{weights.MonthStem, p.Month.Stem.Element()},
		{weights.MonthBranch, p.Month.Branch.Element()},
		{weights.DayBranch, p.Day.Branch.Element()},
		{weights.HourStem, p.Hour.Stem.Element()},
		{weights.HourBranch, p.Hour.Branch.Element()},
	}
	for _, slot := range slots {
		if supports(slot.element) {
			score += slot.weight
		}
	}

	inSeason := supports(p.Month.Branch.Element())
	threshold := strongThresholdOffSeason
	seasonLabel := "失令"
	if inSeason {
		threshold = strongThresholdInSeason
		seasonLabel = "得令"
	}

	isStrong := score >= threshold
	result := "身弱"
	if isStrong {
		result = "身旺"
	}

	return StrengthResult{
		Result:      result,
		IsStrong:    isStrong,
		Score:       score,
		Threshold:   threshold,
		InSeason:    inSeason,
		ScoreInfo:   fmt.Sprintf("同党得分: %d, 判定阈值: %d (%s)", score, threshold, seasonLabel),
		JoyElements: joyElements(isStrong, dm, resource),
	}
}

// joyElements picks the favorable elements: a strong chart likes whatever
// drains or controls it, a weak one likes its own party.
func joyElements(isStrong bool, dm, resource Element) string {
	if !isStrong {
		return string(dm) + "、" + string(resource)
	}
	out := ""
	for _, e := range Elements {
		if e == dm || e == resource {
			continue
		}
		if out != "" {
			out += "、"
		}
		out += string(e)
	}
	return out
}
