package bazi

import "fmt"

// CompatibilityResult is the hard-evidence part of a two-chart reading: the
// day-pillar chemistry lines plus a base score, 60 when nothing reacts.
type CompatibilityResult struct {
	Details   []string
	BaseScore int
}

const compatibilityBaseScore = 60

// StemsCombine reports whether two stems form one of the five 天干五合 pairs.
func StemsCombine(a, b Stem) bool {
	for _, tp := range transformPairs {
		if (a == tp.a && b == tp.b) || (a == tp.b && b == tp.a) {
			return true
		}
	}
	return false
}

// BranchesCombine reports whether two branches form a 六合 pair.
func BranchesCombine(a, b Branch) bool {
	for _, pair := range sixCombines {
		if (a == pair.a && b == pair.b) || (a == pair.b && b == pair.a) {
			return true
		}
	}
	return false
}

// BranchesClash reports whether two branches form a 六冲 pair.
func BranchesClash(a, b Branch) bool {
	for _, pair := range sixClashes {
		if (a == pair.a && b == pair.b) || (a == pair.b && b == pair.a) {
			return true
		}
	}
	return false
}

// AnalyzeCompatibility compares two charts through the day pillar, the
// spouse palace: stem combination weighs most, then branch combine or clash.
func AnalyzeCompatibility(a, b Pillars) CompatibilityResult {
	var details []string
	bonus := 0

	dmA, dmB := a.Day.Stem, b.Day.Stem
	if StemsCombine(dmA, dmB) {
		details = append(details, fmt.Sprintf("❤️ **日干相合 (%s-%s)**：灵魂吸引力极强，性格互补。", dmA, dmB))
		bonus += 30
	}

	dbA, dbB := a.Day.Branch, b.Day.Branch
	if BranchesCombine(dbA, dbB) {
		details = append(details, fmt.Sprintf("🤝 **日支六合 (%s-%s)**：相处舒服，生活步调一致。", dbA, dbB))
		bonus += 20
	} else if BranchesClash(dbA, dbB) {
		details = append(details, fmt.Sprintf("⚡ **日支相冲 (%s-%s)**：容易有价值观冲突，需磨合。", dbA, dbB))
		bonus -= 10
	}

	return CompatibilityResult{
		Details:   details,
		BaseScore: compatibilityBaseScore + bonus,
	}
}
