package bazi

// TenGod is the relationship of a stem to the day master (十神).
type TenGod string

const (
	Friend         TenGod = "比肩"
	RobWealth      TenGod = "劫财"
	EatingGod      TenGod = "食神"
	HurtingOfficer TenGod = "伤官"
	IndirectWealth TenGod = "偏财"
	DirectWealth   TenGod = "正财"
	SevenKillings  TenGod = "七杀"
	DirectOfficer  TenGod = "正官"
	IndirectSeal   TenGod = "偏印"
	DirectSeal     TenGod = "正印"
)

// tenGodByOffset indexes ten gods by (other - dayMaster) mod 10 in stem order.
var tenGodByOffset = [10]TenGod{
	Friend, RobWealth,
	EatingGod, HurtingOfficer,
	IndirectWealth, DirectWealth,
	SevenKillings, DirectOfficer,
	IndirectSeal, DirectSeal,
}

func (t TenGod) String() string { return string(t) }

// TenGodOf returns the ten-god relation of other relative to the day master.
// The day master maps to 比肩 like any same-stem pair; callers that want the
// 日主 label apply it at presentation time.
func TenGodOf(dayMaster, other Stem) TenGod {
	diff := (other.Index() - dayMaster.Index() + 10) % 10
	return tenGodByOffset[diff]
}

// TenGodSet holds the ten gods of the three non-day stems.
type TenGodSet struct {
	Year  TenGod
	Month TenGod
	Hour  TenGod
}

func ChartTenGods(p Pillars) TenGodSet {
	dm := p.DayMaster()
	return TenGodSet{
		Year:  TenGodOf(dm, p.Year.Stem),
		Month: TenGodOf(dm, p.Month.Stem),
		Hour:  TenGodOf(dm, p.Hour.Stem),
	}
}
