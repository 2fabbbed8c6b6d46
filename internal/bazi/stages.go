package bazi

// lifeStages are the twelve stages in cycle order starting at 长生.
var lifeStages = [12]string{
	"长生", "沐浴", "冠带", "临官", "帝旺", "衰",
	"病", "死", "墓", "绝", "胎", "养",
}

// lifeStageStart is the branch index where each stem's 长生 sits. Yang stems
// walk the cycle forward from there, yin stems walk it backward.
var lifeStageStart = map[Stem]int{
	"甲": 11, "丙": 2, "戊": 2, "庚": 5, "壬": 8,
	"乙": 6, "丁": 9, "己": 9, "辛": 0, "癸": 3,
}

// LifeStage returns the day master's stage at a branch, e.g. 帝旺.
func LifeStage(dayMaster Stem, b Branch) string {
	start := lifeStageStart[dayMaster]
	var diff int
	if dayMaster.Yang() {
		diff = (b.Index() - start + 12) % 12
	} else {
		diff = (start - b.Index() + 12) % 12
	}
	return lifeStages[diff]
}

// LifeStages holds the day master's stage at each pillar branch. Day is the
// self-seat (自坐) stage.
type LifeStages struct {
	Year  string
	Month string
	Day   string
	Hour  string
}

func ChartLifeStages(p Pillars) LifeStages {
	dm := p.DayMaster()
	return LifeStages{
		Year:  LifeStage(dm, p.Year.Branch),
		Month: LifeStage(dm, p.Month.Branch),
		Day:   LifeStage(dm, p.Day.Branch),
		Hour:  LifeStage(dm, p.Hour.Branch),
	}
}

// Voids returns the two vacant branches (旬空) of the pillar's decade: the
// decade starting at the pillar's stem leaves two branches uncovered.
func Voids(p Pillar) [2]Branch {
	diff := p.Branch.Index() - p.Stem.Index()
	if diff < 0 {
		diff += 12
	}
	return [2]Branch{
		Branches[(diff-2+12)%12],
		Branches[(diff-1+12)%12],
	}
}

// ChartVoids holds the vacant branches per pillar. Day is the one classical
// readings lean on.
type ChartVoids struct {
	Year  [2]Branch
	Month [2]Branch
	Day   [2]Branch
	Hour  [2]Branch
}

func ComputeChartVoids(p Pillars) ChartVoids {
	return ChartVoids{
		Year:  Voids(p.Year),
		Month: Voids(p.Month),
		Day:   Voids(p.Day),
		Hour:  Voids(p.Hour),
	}
}
