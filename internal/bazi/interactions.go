package bazi

// Branch relation tables. Rule order is output order.

// seasonalTrios are the directional 三会 groups, the strongest formation.
var seasonalTrios = []struct {
	members [3]Branch
	name    string
}{
	{[3]Branch{"亥", "子", "丑"}, "北方水局"},
	{[3]Branch{"寅", "卯", "辰"}, "东方木局"},
	{[3]Branch{"巳", "午", "未"}, "南方火局"},
	{[3]Branch{"申", "酉", "戌"}, "西方金局"},
}

// elementalTrios are the 三合 groups.
var elementalTrios = []struct {
	members [3]Branch
	name    string
}{
	{[3]Branch{"申", "子", "辰"}, "申子辰三合水局"},
	{[3]Branch{"亥", "卯", "未"}, "亥卯未三合木局"},
	{[3]Branch{"寅", "午", "戌"}, "寅午戌三合火局"},
	{[3]Branch{"巳", "酉", "丑"}, "巳酉丑三合金局"},
}

// sixCombines are the 六合 pairs with the element each pair merges into.
var sixCombines = []struct {
	a, b Branch
	name string
}{
	{"子", "丑", "子丑合土"},
	{"寅", "亥", "寅亥合木"},
	{"卯", "戌", "卯戌合火"},
	{"辰", "酉", "辰酉合金"},
	{"巳", "申", "巳申合水"},
	{"午", "未", "午未合土"},
}

// sixClashes are the 六冲 pairs. Clashes are always reported since a clash
// can break a combine.
var sixClashes = []struct {
	a, b Branch
	name string
}{
	{"子", "午", "子午冲"},
	{"丑", "未", "丑未冲"},
	{"寅", "申", "寅申冲"},
	{"卯", "酉", "卯酉冲"},
	{"辰", "戌", "辰戌冲"},
	{"巳", "亥", "巳亥冲"},
}

// BranchInteractions lists every formation among the four branches, annotated
// for analysis: 三会 marked 力量极强, 三合 marked 格局核心, clashes flagged.
func BranchInteractions(branches [4]Branch) []string {
	var out []string
	for _, trio := range seasonalTrios {
		if hasAll(branches, trio.members) {
			out = append(out, "【"+trio.name+"】(力量极强)")
		}
	}
	for _, trio := range elementalTrios {
		if hasAll(branches, trio.members) {
			out = append(out, "【"+trio.name+"】(格局核心)")
		}
	}
	for _, pair := range sixCombines {
		if countBranch(branches, pair.a) > 0 && countBranch(branches, pair.b) > 0 {
			out = append(out, pair.name)
		}
	}
	for _, pair := range sixClashes {
		if countBranch(branches, pair.a) > 0 && countBranch(branches, pair.b) > 0 {
			out = append(out, "⚠️"+pair.name)
		}
	}
	return out
}

// briefTrios orders the 三合 groups for the terse chart listing.
var briefTrios = []struct {
	members [3]Branch
	name    string
}{
	{[3]Branch{"申", "子", "辰"}, "水局"},
	{[3]Branch{"寅", "午", "戌"}, "火局"},
	{[3]Branch{"亥", "卯", "未"}, "木局"},
	{[3]Branch{"巳", "酉", "丑"}, "金局"},
}

// BranchInteractionsBrief is the terse variant used in chart listings:
// clashes first, then combines, then trios.
func BranchInteractionsBrief(branches [4]Branch) []string {
	var out []string
	for _, pair := range sixClashes {
		if countBranch(branches, pair.a) > 0 && countBranch(branches, pair.b) > 0 {
			out = append(out, string(pair.a)+string(pair.b)+"相冲")
		}
	}
	for _, pair := range sixCombines {
		if countBranch(branches, pair.a) > 0 && countBranch(branches, pair.b) > 0 {
			out = append(out, string(pair.a)+string(pair.b)+"六合")
		}
	}
	for _, trio := range briefTrios {
		if hasAll(branches, trio.members) {
			out = append(out, "三合"+trio.name)
		}
	}
	return out
}

// HiddenStemSummary renders each branch with its hidden stems, e.g. 寅(甲丙戊).
func HiddenStemSummary(branches [4]Branch) []string {
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		joined := ""
		for _, s := range hiddenStems[b] {
			joined += string(s)
		}
		out = append(out, string(b)+"("+joined+")")
	}
	return out
}

func hasAll(branches [4]Branch, members [3]Branch) bool {
	for _, m := range members {
		if countBranch(branches, m) == 0 {
			return false
		}
	}
	return true
}
