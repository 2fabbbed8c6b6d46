package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/zhouyi"
)

func staticCast() zhouyi.CastResult {
	return zhouyi.CastResult{
		Original:      zhouyi.Hexagram{Name: "乾为天", Short: "乾", Meaning: "刚健中正，自强不息"},
		OriginalBits:  "111111",
		LineTypes:     []string{"少阳", "少阳", "老阳", "少阳", "少阳", "少阳"},
		ChangingLines: []int{3},
		Future:        &zhouyi.Hexagram{Name: "天泽履", Short: "履", Meaning: "如履薄冰，谨慎前行"},
		FutureBits:    "110111",
		Lower:         zhouyi.Trigram{Name: "乾", Nature: "天", Symbol: "☰", Trait: "健"},
		Upper:         zhouyi.Trigram{Name: "乾", Nature: "天", Symbol: "☰", Trait: "健"},
		HasChange:     true,
	}
}

func TestFormatDivination(t *testing.T) {
	resp := contract.DivineResponse{
		Cast: staticCast(),
		Reading: contract.ReadingView{
			Text:   "**本卦**乾为天，自强不息。",
			Source: "deterministic",
		},
	}
	out := FormatDivination(resp)

	assert.Contains(t, out, "周易起卦")
	assert.Contains(t, out, "乾为天")
	assert.Contains(t, out, "刚健中正")
	assert.Contains(t, out, "☰ 乾(天)")
	assert.Contains(t, out, "第 3 爻")
	assert.Contains(t, out, "天泽履")
	assert.Contains(t, out, "离线推演")
	// Markdown markers are cleaned before display.
	assert.NotContains(t, out, "**")
}

func TestFormatDivination_StaticLines(t *testing.T) {
	cast := staticCast()
	cast.LineTypes = []string{"少阳", "少阳", "少阳", "少阳", "少阳", "少阳"}
	cast.ChangingLines = nil
	cast.Future = nil
	cast.HasChange = false

	out := FormatDivination(contract.DivineResponse{Cast: cast})
	assert.Contains(t, out, "六爻皆静")
	assert.NotContains(t, out, "变卦")
}

func TestHexagramFigure(t *testing.T) {
	fig := HexagramFigure(staticCast())
	lines := strings.Split(strings.TrimRight(fig, "\n"), "\n")
	assert.Len(t, lines, 6)
	for _, line := range lines {
		assert.Contains(t, line, yangLine)
	}
	// The old-yang line (third from the bottom, fourth from the top)
	// carries the ○ mark.
	assert.Contains(t, lines[3], "○")
	assert.NotContains(t, lines[0], "○")
}

func TestHexagramFigure_Yin(t *testing.T) {
	cast := staticCast()
	cast.OriginalBits = "000000"
	cast.LineTypes = []string{"老阴", "少阴", "少阴", "少阴", "少阴", "少阴"}

	fig := HexagramFigure(cast)
	assert.Contains(t, fig, yinLine)
	assert.NotContains(t, fig, yangLine)
	assert.Contains(t, fig, "×")
}
