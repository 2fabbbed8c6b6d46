package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/contract"
)

// FormatCompat renders a two-chart compatibility reading: the chemistry
// score, both day pillars, the deterministic findings, then the prose.
func FormatCompat(resp contract.CompatResponse, relation string) string {
	var b strings.Builder

	b.WriteString(Header("八字合婚"))
	b.WriteString("\n")

	score := resp.Result.BaseScore
	scoreStyle := StyleRed
	switch {
	case score >= 80:
		scoreStyle = StyleGreen
	case score >= 60:
		scoreStyle = StyleYellow
	}
	b.WriteString(fmt.Sprintf("缘分指数: %s\n\n", scoreStyle.Render(fmt.Sprintf("%d 分", score))))

	pairs := [][2]string{
		{"甲方日柱", PillarStyled(resp.AChart.Pillars.Day)},
		{"乙方日柱", PillarStyled(resp.BChart.Pillars.Day)},
	}
	if relation != "" {
		pairs = append(pairs, [2]string{"关系", relation})
	}
	b.WriteString(RenderKV(pairs))
	b.WriteString("\n")

	if len(resp.Result.Details) > 0 {
		for _, d := range resp.Result.Details {
			b.WriteString(CleanMarkdown(d))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if resp.Reading.Text != "" {
		b.WriteString(CleanMarkdown(resp.Reading.Text))
		b.WriteString("\n")
		b.WriteString(SourceNote(resp.Reading))
		b.WriteString("\n")
	}

	return b.String()
}
