package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/bazi"
)

// DeterministicCoupleReading narrates the computed hard evidence when
// the model cannot. Every line restates score math or strength facts.
func DeterministicCoupleReading(req CoupleRequest, comp bazi.CompatibilityResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【关系类型】%s\n", relationOrDefault(req.RelationType))
	fmt.Fprintf(&b, "【缘分指数】%d / 100，%s\n", comp.BaseScore, scoreVerdict(comp.BaseScore))

	fmt.Fprintf(&b, "\n【甲方】%s，%s（喜：%s）\n",
		req.A.Chart.Pattern.Name, req.A.Chart.Strength.Result, req.A.Chart.Strength.JoyElements)
	fmt.Fprintf(&b, "【乙方】%s，%s（喜：%s）\n",
		req.B.Chart.Pattern.Name, req.B.Chart.Strength.Result, req.B.Chart.Strength.JoyElements)

	if len(comp.Details) > 0 {
		b.WriteString("\n【缘分硬指标】\n")
		for _, d := range comp.Details {
			b.WriteString("- " + d + "\n")
		}
	} else {
		b.WriteString("\n两人八字无明显的强合或强冲，属细水长流的平淡缘分，深浅全看经营。\n")
	}

	b.WriteString("\n" + strengthPairing(req.A.Chart.Strength.IsStrong, req.B.Chart.Strength.IsStrong) + "\n")

	if f := strings.TrimSpace(req.Focus); f != "" {
		fmt.Fprintf(&b, "\n关于「%s」：在线推演暂不可用，可先对照上列硬指标自行参详。\n", f)
	}
	return b.String()
}

func scoreVerdict(score int) string {
	switch {
	case score >= 80:
		return "有天作之合之象"
	case score >= 60:
		return "中等偏上，和而不同"
	default:
		return "属磨合型缘分，贵在包容"
	}
}

func strengthPairing(aStrong, bStrong bool) string {
	switch {
	case aStrong != bStrong:
		return "一旺一弱，能量天然互补：旺者出力，弱者出谋，各得其所。"
	case aStrong:
		return "两人皆身旺，都有主意也都不肯让，须学会轮流掌舵。"
	default:
		return "两人皆身弱，彼此体恤，宜共同寻找外部的依靠与支撑。"
	}
}
