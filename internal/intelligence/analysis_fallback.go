package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/zhouyi"
)

// Deterministic readings are built entirely from the computed chart.
// They carry less narrative than a model reading but every sentence is
// backed by a table lookup, so they are safe to show whenever the LLM
// is disabled or fails.

// elementColors and elementDirections carry the classical five-element
// correspondences used by the deterministic 开运 reading.
var elementColors = map[bazi.Element]string{
	bazi.Wood:  "绿色、青色",
	bazi.Fire:  "红色、紫色",
	bazi.Earth: "黄色、咖啡色",
	bazi.Metal: "白色、金色",
	bazi.Water: "黑色、蓝色",
}

var elementDirections = map[bazi.Element]string{
	bazi.Wood:  "东方",
	bazi.Fire:  "南方",
	bazi.Earth: "本地与中部",
	bazi.Metal: "西方",
	bazi.Water: "北方",
}

var elementOrgans = map[bazi.Element]string{
	bazi.Wood:  "肝胆、筋骨",
	bazi.Fire:  "心脏、血液循环",
	bazi.Earth: "脾胃、消化系统",
	bazi.Metal: "肺部、呼吸道",
	bazi.Water: "肾脏、泌尿系统",
}

// monthGodCareers maps the month-stem ten god to its classical career
// inclination, the strongest single career indicator in the chart.
var monthGodCareers = map[string]string{
	"比肩": "适合与人并肩合作、合伙经营，在公平竞争中求进",
	"劫财": "行动力强但竞争激烈，宜选拼劲型行业，防合伙财务纠纷",
	"食神": "才华输出之象，适合创作、饮食、教育等靠手艺与表达立足的行业",
	"伤官": "技艺与口才出众，适合专业技能、设计、自由职业，忌与上司硬顶",
	"偏财": "财来财去流转快，适合经商、销售、金融等活财行业",
	"正财": "稳扎稳打之象，适合按部就班、积少成多的职业路径",
	"七杀": "压力与魄力并存，适合纪律性强、竞争激烈的环境，化杀为权",
	"正官": "带官贵之气，适合体制内、管理、法务等讲规则的工作",
	"偏印": "思维独特偏好冷门，适合研究、技术、玄学等深钻领域",
	"正印": "学业名誉之星，适合文教、文化、医疗、公益方向",
}

// DeterministicTopicReading builds a topic reading from the chart alone.
// Unknown topics fall back to the overview reading.
func DeterministicTopicReading(in ContextInput, topic string) string {
	c := in.Chart
	switch topic {
	case "整体命格":
		return deterministicOverview(c)
	case "事业运势":
		return deterministicCareer(c)
	case "感情运势":
		return deterministicRomance(c)
	case "健康建议":
		return deterministicHealth(c)
	case "开运建议":
		return deterministicLuck(c)
	case "大运流年":
		return deterministicCycles(in)
	default:
		return deterministicOverview(c)
	}
}

// DeterministicQuestionReading answers a free question with the chart's
// core facts; it cannot address the question itself and says so.
func DeterministicQuestionReading(c bazi.Chart, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "关于「%s」，大师暂时无法在线推演，先将命盘的关键信息奉上，供你对照思量。\n\n", strings.TrimSpace(question))
	b.WriteString(chartEssence(c))
	b.WriteString("\n把问题放回这张盘里看：顺着喜用五行（")
	b.WriteString(c.Strength.JoyElements)
	b.WriteString("）的方向行事，多半不会错。")
	return b.String()
}

// DeterministicDivinationReading reads a casting by the classical rules:
// no moving line reads the original judgment, otherwise the moving lines
// and the transformed hexagram take over.
func DeterministicDivinationReading(cast zhouyi.CastResult, question string) string {
	var b strings.Builder
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(&b, "所问之事：%s\n\n", q)
	}
	fmt.Fprintf(&b, "本卦【%s】，卦义「%s」。上卦%s主%s，下卦%s主%s，卦象由此而生。\n",
		cast.Original.Name, cast.Original.Meaning,
		cast.Upper.Label(), cast.Upper.Trait,
		cast.Lower.Label(), cast.Lower.Trait)
	switch {
	case !cast.HasChange:
		b.WriteString("\n六爻皆静，以本卦卦辞断之：眼下局面已然定型，按卦义行事即可，不必强求变化。")
	case len(cast.ChangingLines) == 1:
		fmt.Fprintf(&b, "\n第%d爻独动，事情的关键正落在此处。动则生变，变卦为【%s】——「%s」，此为事态的去向。",
			cast.ChangingLines[0], cast.Future.Name, cast.Future.Meaning)
	default:
		lines := make([]string, 0, len(cast.ChangingLines))
		for _, n := range cast.ChangingLines {
			lines = append(lines, fmt.Sprintf("第%d爻", n))
		}
		fmt.Fprintf(&b, "\n%s俱动，局面正在多处松动，宜以变卦【%s】为主参断——「%s」。",
			strings.Join(lines, "、"), cast.Future.Name, cast.Future.Meaning)
	}
	return b.String()
}

// chartEssence is the shared opening of every deterministic reading.
func chartEssence(c bazi.Chart) string {
	return fmt.Sprintf(`【四柱】%s
【格局】%s（%s）
【日主】%s，生于%s月（%s季），判定%s
【喜用五行】%s
`,
		c.Pillars,
		c.Pattern.Name, c.Pattern.Type,
		c.DayMaster, c.MonthBranch, bazi.Season(c.MonthBranch), c.Strength.Result,
		c.Strength.JoyElements)
}

func deterministicOverview(c bazi.Chart) string {
	var b strings.Builder
	b.WriteString(chartEssence(c))

	fmt.Fprintf(&b, "\n你的格局为「%s」。", c.Pattern.Name)
	if c.Strength.IsStrong {
		b.WriteString("日主身旺，底气足、主意正，一生的功课在于把旺气导出去：泄秀生财，而不是困在自己手里。")
	} else {
		b.WriteString("日主身弱，心思细、感受多，一生的功课在于寻得生扶：靠印比帮身，借贵人之力成事。")
	}
	fmt.Fprintf(&b, "%s\n", strengthHint(c))

	fmt.Fprintf(&b, "\n【纳音三音】本命音「%s」，自我音「%s」，归宿音「%s」。三音相连，便是你从出身到归宿的底色。\n",
		c.NaYin.Year, c.NaYin.Day, c.NaYin.Hour)

	if len(c.Formations) > 0 {
		fmt.Fprintf(&b, "\n【地支动静】%s。合主聚力，冲主变动，这些是命局里最先发动的机关。\n", strings.Join(c.Formations, "；"))
	} else {
		b.WriteString("\n【地支动静】四支安静，无明显合冲，命局走势以平稳渐进为主。\n")
	}

	if len(c.Spirits) > 0 {
		fmt.Fprintf(&b, "\n【神煞】命带%s。\n", strings.Join(c.Spirits, "、"))
	}
	return b.String()
}

func deterministicCareer(c bazi.Chart) string {
	var b strings.Builder
	b.WriteString(chartEssence(c))

	god := string(c.TenGods.Month)
	if line, ok := monthGodCareers[god]; ok {
		fmt.Fprintf(&b, "\n月干透出「%s」，主事业取向：%s。\n", god, line)
	}
	fmt.Fprintf(&b, "\n十神布局：年干%s、月干%s、时干%s。月柱管青中年运，是事业的主战场。\n",
		c.TenGods.Year, c.TenGods.Month, c.TenGods.Hour)

	if c.Strength.IsStrong {
		b.WriteString("\n身旺之人担得起事，宜主动出击、挑大梁；怕的是无处使力，闲下来反生是非。\n")
	} else {
		b.WriteString("\n身弱之人善借势，宜跟对平台与贵人，以巧胜力；切忌孤军硬扛。\n")
	}
	fmt.Fprintf(&b, "行业五行宜向「%s」靠拢。\n", c.Strength.JoyElements)
	return b.String()
}

func deterministicRomance(c bazi.Chart) string {
	var b strings.Builder
	b.WriteString(chartEssence(c))

	fmt.Fprintf(&b, "\n日支%s为夫妻宫，坐下藏干%s——这是伴侣在你命里的底相。\n",
		c.Pillars.Day.Branch, joinStems(c.HiddenStems.Day))

	romance := romanceSpirits(c.Spirits)
	if len(romance) > 0 {
		fmt.Fprintf(&b, "\n命带%s，人缘与情缘皆不缺，要紧的是分辨真心与热闹。\n", strings.Join(romance, "、"))
	} else {
		b.WriteString("\n盘中桃花不显，情缘走的是细水长流一路，相处之功重于相遇之缘。\n")
	}

	clash := false
	for _, f := range c.Formations {
		if strings.Contains(f, "冲") && strings.Contains(f, string(c.Pillars.Day.Branch)) {
			clash = true
			fmt.Fprintf(&b, "\n注意：%s 涉及夫妻宫，感情易有波动聚散，逢冲之年尤须经营。\n", f)
			break
		}
	}
	if !clash {
		b.WriteString("\n夫妻宫无明显刑冲，感情根基尚稳，余下的便看两人如何相待。\n")
	}
	return b.String()
}

func deterministicHealth(c bazi.Chart) string {
	var b strings.Builder
	b.WriteString(chartEssence(c))

	dm := c.DayMaster.Element()
	fmt.Fprintf(&b, "\n日主属%s，先天对应%s，平日保养自此处着手。\n", dm, elementOrgans[dm])

	if c.Climate.Urgent {
		fmt.Fprintf(&b, "\n【调候】%s。急需补「%s」。古籍有言：「%s」。作息饮食先顺着这一条调理，心态与健康都会松快许多。\n",
			c.Climate.Status, c.Climate.Needs, c.Climate.Advice)
	} else {
		b.WriteString("\n生月气候平和，无需刻意调候，守住规律作息即可。\n")
	}
	fmt.Fprintf(&b, "\n喜用五行为「%s」，相应脏腑宜养不宜耗：%s\n",
		c.Strength.JoyElements, joyOrganLines(c.Strength.JoyElements))
	return b.String()
}

func deterministicLuck(c bazi.Chart) string {
	var b strings.Builder
	b.WriteString(chartEssence(c))

	b.WriteString("\n开运以喜用五行为纲：\n")
	for _, name := range strings.Split(c.Strength.JoyElements, "、") {
		e := bazi.Element(name)
		fmt.Fprintf(&b, "* **%s**：颜色取%s，方位利%s。\n", name, elementColors[e], elementDirections[e])
	}

	if c.Climate.Urgent {
		fmt.Fprintf(&b, "\n调候急于一切：此命%s，先补「%s」，再谈其余开运之法。\n", c.Climate.Status, c.Climate.Needs)
	}
	if len(c.Spirits) > 0 {
		fmt.Fprintf(&b, "\n命带%s，善用自身已有的缘法，胜过外求。\n", strings.Join(c.Spirits, "、"))
	}
	return b.String()
}

func deterministicCycles(in ContextInput) string {
	var b strings.Builder
	b.WriteString(chartEssence(in.Chart))

	fc := in.Cycles
	if fc == nil {
		b.WriteString("\n大运尚未排定，请先排出大运流年再来问运势节奏。\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n【起运】出生后%d年%d个月%d天起运。\n", fc.Start.Years, fc.Start.Months, fc.Start.Days)

	year := in.Now.Year()
	if d := bazi.CurrentDecade(fc.Decades, year); d != nil && d.GanZhi != "" {
		fmt.Fprintf(&b, "\n当前行「%s」大运（%d-%d年，%d-%d岁），这十年的总基调由此柱定。\n",
			d.GanZhi, d.StartYear, d.EndYear, d.StartAge, d.EndAge)
	}

	upcoming := bazi.UpcomingAnnual(fc.Annual, year, 3)
	if len(upcoming) > 0 {
		parts := make([]string, 0, len(upcoming))
		for _, a := range upcoming {
			parts = append(parts, fmt.Sprintf("%d年%s（%d岁）", a.Year, a.GanZhi, a.Age))
		}
		fmt.Fprintf(&b, "\n近三个流年：%s。流年干支与喜用「%s」相合者为顺势之年，宜进取；相悖者守成为上。\n",
			strings.Join(parts, "、"), in.Chart.Strength.JoyElements)
	}
	return b.String()
}

func strengthHint(c bazi.Chart) string {
	return fmt.Sprintf("（%s，喜用为%s。）", c.Strength.ScoreInfo, c.Strength.JoyElements)
}

// romanceSpirits filters the spirits list for the romance stars.
func romanceSpirits(spirits []string) []string {
	var out []string
	for _, s := range spirits {
		if strings.Contains(s, "桃花") || strings.Contains(s, "红鸾") || strings.Contains(s, "天喜") {
			out = append(out, s)
		}
	}
	return out
}

func joyOrganLines(joy string) string {
	parts := strings.Split(joy, "、")
	lines := make([]string, 0, len(parts))
	for _, name := range parts {
		e := bazi.Element(name)
		lines = append(lines, fmt.Sprintf("%s主%s", name, elementOrgans[e]))
	}
	return strings.Join(lines, "；")
}
