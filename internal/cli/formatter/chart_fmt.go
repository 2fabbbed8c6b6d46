package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/contract"
)

// FormatChart renders the full derived chart: birth header, the four-pillar
// table, and the analysis blocks underneath.
func FormatChart(resp contract.ChartResponse) string {
	var b strings.Builder

	b.WriteString(Header("四柱排盘"))
	b.WriteString("\n")
	pairs := [][2]string{
		{"出生时间", resp.Birth.Format("2006-01-02 15:04")},
	}
	if resp.HasCorrection {
		pairs = append(pairs, [2]string{"真太阳时", resp.Corrected.Format("2006-01-02 15:04")})
	}
	b.WriteString(RenderKV(pairs))
	if resp.HasCorrection {
		b.WriteString(StyleDim.Render(resp.Correction.Label()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(PillarTable(resp.Chart))
	b.WriteString("\n")
	b.WriteString(analysisBlock(resp.Chart))

	return b.String()
}

// PillarTable renders the classic four-column chart: ten gods on top, then
// stems, branches, hidden stems, life stages and NaYin.
func PillarTable(c bazi.Chart) string {
	p := c.Pillars
	headers := []string{"", "年柱", "月柱", "日柱", "时柱"}
	rows := [][]string{
		{
			StyleDim.Render("十神"),
			string(c.TenGods.Year),
			string(c.TenGods.Month),
			StyleBold.Render("日主"),
			string(c.TenGods.Hour),
		},
		{
			StyleDim.Render("天干"),
			StemStyled(p.Year.Stem),
			StemStyled(p.Month.Stem),
			StemStyled(p.Day.Stem),
			StemStyled(p.Hour.Stem),
		},
		{
			StyleDim.Render("地支"),
			BranchStyled(p.Year.Branch),
			BranchStyled(p.Month.Branch),
			BranchStyled(p.Day.Branch),
			BranchStyled(p.Hour.Branch),
		},
		{
			StyleDim.Render("藏干"),
			stemsJoined(c.HiddenStems.Year),
			stemsJoined(c.HiddenStems.Month),
			stemsJoined(c.HiddenStems.Day),
			stemsJoined(c.HiddenStems.Hour),
		},
		{
			StyleDim.Render("长生"),
			StyleDim.Render(c.Stages.Year),
			StyleDim.Render(c.Stages.Month),
			StyleDim.Render(c.Stages.Day),
			StyleDim.Render(c.Stages.Hour),
		},
		{
			StyleDim.Render("纳音"),
			StyleDim.Render(c.NaYin.Year),
			StyleDim.Render(c.NaYin.Month),
			StyleDim.Render(c.NaYin.Day),
			StyleDim.Render(c.NaYin.Hour),
		},
	}
	return RenderTable(headers, rows)
}

func analysisBlock(c bazi.Chart) string {
	var b strings.Builder

	b.WriteString(Header("命局分析"))
	b.WriteString("\n")

	verdict := StyleBlue.Render(c.Strength.Result)
	if c.Strength.IsStrong {
		verdict = StyleYellow.Render(c.Strength.Result)
	}
	climate := c.Climate.Status + "，" + c.Climate.Needs
	if c.Climate.Urgent {
		climate += " " + StyleRed.Render("（急）")
	}
	b.WriteString(RenderKV([][2]string{
		{"格局", c.Pattern.Name + " " + StyleDim.Render("（"+string(c.Pattern.Type)+"）")},
		{"旺衰", verdict + " " + StrengthBar(c.Strength, 20)},
		{"评分", StyleDim.Render(c.Strength.ScoreInfo)},
		{"喜用神", wuxingStyled(c.Strength.JoyElements)},
		{"调候", climate},
	}))
	b.WriteString(StyleDim.Render(c.Climate.Advice))
	b.WriteString("\n\n")

	b.WriteString(Header("神煞空亡"))
	b.WriteString("\n")
	b.WriteString(RenderKV([][2]string{
		{"空亡", string(c.DayVoids[0]) + string(c.DayVoids[1]) + " " + StyleDim.Render("（日柱）")},
		{"神煞", listOrNone(c.Spirits)},
		{"刑冲合会", listOrNone(c.Interactions)},
	}))

	return b.String()
}

// stemsJoined renders hidden stems as one tight run, each colored by its
// element: 甲丙戊.
func stemsJoined(stems []bazi.Stem) string {
	var b strings.Builder
	for _, s := range stems {
		b.WriteString(StemStyled(s))
	}
	return b.String()
}

// wuxingStyled colors the element characters inside a prose fragment like
// 火、木 while leaving separators alone.
func wuxingStyled(s string) string {
	var b strings.Builder
	for _, r := range s {
		e := bazi.Element(string(r))
		switch e {
		case bazi.Wood, bazi.Fire, bazi.Earth, bazi.Metal, bazi.Water:
			b.WriteString(ElementStyle(e).Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return StyleDim.Render("无")
	}
	return strings.Join(items, "、")
}

// FormatChartBrief is the compact variant used by list rows and compat
// output: the one-line pillar listing plus the verdict.
func FormatChartBrief(c bazi.Chart) string {
	return fmt.Sprintf("%s  %s", c.PillarLine(), StyleDim.Render(c.Strength.Result))
}
