package bazi

// ClimateResult is the seasonal adjustment (调候) reading: what the season
// does to the day master and which element relieves it.
type ClimateResult struct {
	Status string
	Needs  string
	Advice string
	Urgent bool
}

// Winter and summer are the urgent seasons. Spring and autumn only need the
// usual support/restraint balancing, so they fall through to the mild result.
var winterBranches = map[Branch]bool{"亥": true, "子": true, "丑": true}

var summerBranches = map[Branch]bool{"巳": true, "午": true, "未": true}

var winterClimate = map[Element]ClimateResult{
	Wood: {
		Status: "水冷木冻",
		Needs:  "丙火 (太阳)",
		Advice: "寒木向阳，无火不发。首要取火暖局，防根基腐烂。",
		Urgent: true,
	},
	Fire: {
		Status: "火势气弱",
		Needs:  "甲木 (引火)",
		Advice: "冬天的火容易熄灭，喜木来生火，同时需丙火比劫帮身抗寒。",
		Urgent: true,
	},
	Earth: {
		Status: "天地冻结",
		Needs:  "丙火 (解冻)",
		Advice: "湿土冻土无法生金或栽木，急需火来解冻，才能恢复生机。",
		Urgent: true,
	},
	Metal: {
		Status: "金寒水冷",
		Needs:  "丁火/丙火",
		Advice: "水冷金寒，也就是'沉金'。需要火来炼金或暖局，否则才华被冰封。",
		Urgent: true,
	},
	Water: {
		Status: "滴水成冰",
		Needs:  "戊土 (止流) + 丙火 (暖局)",
		Advice: "冬水太旺且寒，容易泛滥成灾。需土制水，更需火来暖水，否则是一潭死水。",
		Urgent: true,
	},
}

var summerClimate = map[Element]ClimateResult{
	Wood: {
		Status: "木性枯焦",
		Needs:  "癸水 (雨露)",
		Advice: "火旺泄木太过，木容易枯萎。急需水来滋润，也就是'虚湿之地'。",
		Urgent: true,
	},
	Fire: {
		Status: "炎火炎上",
		Needs:  "壬水 (既济)",
		Advice: "火太旺则容易自焚，喜水来调节（水火既济），这叫'辉光相映'。",
		Urgent: true,
	},
	Earth: {
		Status: "火炎土燥",
		Needs:  "癸水 (润土)",
		Advice: "燥土不能生金，也不能种树。急需水来润土，解决'亢旱'。",
		Urgent: true,
	},
	Metal: {
		Status: "火熔金流",
		Needs:  "壬水 (洗金) + 己土 (生金)",
		Advice: "金被火克太重，急需水来制火护金，或者湿土来生金。",
		Urgent: true,
	},
	Water: {
		Status: "水气干涸",
		Needs:  "庚辛金 (发源) + 比劫",
		Advice: "夏天的水容易蒸发，需要金（水源）来生水，或者比劫帮身。",
		Urgent: true,
	},
}

var mildClimate = ClimateResult{
	Status: "气候平和",
	Needs:  "依据强弱定喜用",
	Advice: "调候需求不明显，请主要参考五行强弱分析。",
}

// ComputeClimate returns the seasonal adjustment need for a day master born
// in a given month.
func ComputeClimate(dayMaster Stem, monthBranch Branch) ClimateResult {
	switch {
	case winterBranches[monthBranch]:
		return winterClimate[dayMaster.Element()]
	case summerBranches[monthBranch]:
		return summerClimate[dayMaster.Element()]
	}
	return mildClimate
}
