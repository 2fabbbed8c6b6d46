package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/zhouyi"
)

const (
	yangLine = "━━━━━━━"
	yinLine  = "━━━ ━━━"
)

// FormatDivination renders a casting: the hexagram drawn line by line with
// moving lines marked, the names and meanings, then the reading prose.
func FormatDivination(resp contract.DivineResponse) string {
	var b strings.Builder
	cast := resp.Cast

	b.WriteString(Header("周易起卦"))
	b.WriteString("\n")
	b.WriteString(HexagramFigure(cast))
	b.WriteString("\n")

	pairs := [][2]string{
		{"本卦", StyleBold.Render(cast.Original.Name) + " " + StyleDim.Render(cast.Original.Meaning)},
		{"上卦", cast.Upper.Label()},
		{"下卦", cast.Lower.Label()},
	}
	if cast.HasChange {
		nums := make([]string, 0, len(cast.ChangingLines))
		for _, n := range cast.ChangingLines {
			nums = append(nums, fmt.Sprintf("%d", n))
		}
		pairs = append(pairs, [2]string{"动爻", "第 " + strings.Join(nums, "、") + " 爻"})
		if cast.Future != nil {
			pairs = append(pairs, [2]string{"变卦", StyleBold.Render(cast.Future.Name) + " " + StyleDim.Render(cast.Future.Meaning)})
		}
	} else {
		pairs = append(pairs, [2]string{"动爻", StyleDim.Render("六爻皆静")})
	}
	b.WriteString(RenderKV(pairs))
	b.WriteString("\n")

	if resp.Reading.Text != "" {
		b.WriteString(CleanMarkdown(resp.Reading.Text))
		b.WriteString("\n")
		b.WriteString(SourceNote(resp.Reading))
		b.WriteString("\n")
	}

	return b.String()
}

// HexagramFigure draws the six lines top-down. Bit order in the cast is
// bottom-up, so the figure walks it in reverse; moving lines get the
// classic ○ (old yang) and × (old yin) marks.
func HexagramFigure(cast zhouyi.CastResult) string {
	var b strings.Builder
	for i := len(cast.OriginalBits) - 1; i >= 0; i-- {
		line := yinLine
		if cast.OriginalBits[i] == '1' {
			line = yangLine
		}
		b.WriteString("  " + StyleYellow.Render(line))
		if i < len(cast.LineTypes) {
			switch cast.LineTypes[i] {
			case "老阳":
				b.WriteString(" " + StyleRed.Render("○"))
			case "老阴":
				b.WriteString(" " + StyleRed.Render("×"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
