package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/bazi"
)

const (
	filledBlock    = "█"
	emptyBlock     = "░"
	thresholdBlock = "┃"
)

// StrengthBar renders the day-master score as a bar over the full scoring
// scale, with the strong/weak threshold marked:
//
//	[███████████┃░░░░░░░░] 36/84
//
// The filled part is yellow when the chart is strong and blue when weak.
func StrengthBar(res bazi.StrengthResult, width int) string {
	if width < 10 {
		width = 10
	}
	scale := bazi.StrengthScale()

	filled := res.Score * width / scale
	if filled > width {
		filled = width
	}
	mark := res.Threshold * width / scale
	if mark > width-1 {
		mark = width - 1
	}

	style := StyleBlue
	if res.IsStrong {
		style = StyleYellow
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == mark:
			b.WriteString(StyleFg.Render(thresholdBlock))
		case i < filled:
			b.WriteString(style.Render(filledBlock))
		default:
			b.WriteString(StyleDim.Render(emptyBlock))
		}
	}
	return fmt.Sprintf("[%s] %d/%d", b.String(), res.Score, scale)
}
