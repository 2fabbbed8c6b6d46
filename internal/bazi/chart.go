package bazi

// Chart is a fully derived natal chart: every table-driven reading computed
// from the four pillars.
type Chart struct {
	Pillars     Pillars
	DayMaster   Stem
	MonthBranch Branch

	Pattern     PatternResult
	TenGods     TenGodSet
	HiddenStems HiddenStemSet
	Strength    StrengthResult
	Stages      LifeStages
	// DayVoids are the day pillar's vacant branches, the pair classical
	// readings cite.
	DayVoids [2]Branch
	Voids    ChartVoids
	Spirits  []string
	NaYin    NaYinSet
	// Interactions is the terse clash/combine/trio listing; Formations is
	// the annotated variant for analysis context.
	Interactions []string
	Formations   []string
	Climate      ClimateResult
}

// Derive computes the full chart from validated pillars. It never fails:
// all lookups are total over valid stems and branches.
func Derive(p Pillars) Chart {
	branches := p.BranchList()
	return Chart{
		Pillars:      p,
		DayMaster:    p.DayMaster(),
		MonthBranch:  p.Month.Branch,
		Pattern:      ClassifyPattern(p),
		TenGods:      ChartTenGods(p),
		HiddenStems:  ChartHiddenStems(p),
		Strength:     ComputeStrength(p),
		Stages:       ChartLifeStages(p),
		DayVoids:     Voids(p.Day),
		Voids:        ComputeChartVoids(p),
		Spirits:      ComputeSpirits(p),
		NaYin:        ChartNaYin(p),
		Interactions: BranchInteractionsBrief(branches),
		Formations:   BranchInteractions(branches),
		Climate:      ComputeClimate(p.DayMaster(), p.Month.Branch),
	}
}

// PillarLine renders the four pillars in the classic one-line listing.
func (c Chart) PillarLine() string {
	return "年柱: " + c.Pillars.Year.String() +
		"  月柱: " + c.Pillars.Month.String() +
		"  日柱: " + c.Pillars.Day.String() +
		"  时柱: " + c.Pillars.Hour.String()
}

// NatureImage returns the chart's seasonal imagery hint.
func (c Chart) NatureImage() string {
	return NatureImageHint(c.DayMaster, c.MonthBranch)
}

// CoreConflict returns the chart's central-tension hint.
func (c Chart) CoreConflict() string {
	return CoreConflictHint(c.Strength.IsStrong, c.Interactions)
}
