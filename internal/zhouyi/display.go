package zhouyi

import (
	"strconv"
	"strings"
)

// FormatCast renders a casting in the traditional result layout: the
// original hexagram with its trigrams, moving lines, the transformed
// hexagram when one exists, and the line-by-line record.
func FormatCast(r CastResult) string {
	lines := []string{"═══ 周易起卦结果 ═══\n"}
	lines = append(lines,
		"【本卦】"+r.Original.Name,
		"   卦义："+r.Original.Meaning,
		"   上卦："+r.Upper.Label(),
		"   下卦："+r.Lower.Label(),
	)
	if r.HasChange {
		nums := make([]string, 0, len(r.ChangingLines))
		for _, n := range r.ChangingLines {
			nums = append(nums, strconv.Itoa(n))
		}
		lines = append(lines,
			"\n【动爻】第 "+strings.Join(nums, ", ")+" 爻",
			"\n【变卦】"+r.Future.Name,
			"   卦义："+r.Future.Meaning,
		)
	} else {
		lines = append(lines, "\n【动爻】无动爻（六爻皆静）")
	}
	lines = append(lines, "\n--- 逐爻详情 ---")
	lines = append(lines, r.Details...)
	return strings.Join(lines, "\n")
}
