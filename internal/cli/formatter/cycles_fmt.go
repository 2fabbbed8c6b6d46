package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/bazi"
)

// FormatCycles renders the luck cycles: the start-of-fortune line, the
// decade table with the current decade marked, and the near annual and
// monthly pillars. now anchors the "current" markers.
func FormatCycles(cycles bazi.FortuneCycles, nowYear int) string {
	var b strings.Builder

	b.WriteString(Header("大运流年"))
	b.WriteString("\n")
	s := cycles.Start
	b.WriteString(fmt.Sprintf("出生后 %s 起运\n\n",
		StyleBold.Render(fmt.Sprintf("%d年%d个月%d天", s.Years, s.Months, s.Days))))

	b.WriteString(decadeTable(cycles.Decades, nowYear))
	b.WriteString("\n")
	b.WriteString(annualTable(bazi.UpcomingAnnual(cycles.Annual, nowYear, 10)))

	if len(cycles.Monthly) > 0 {
		b.WriteString("\n")
		b.WriteString(monthlyTable(cycles.Monthly, nowYear))
	}

	return b.String()
}

func decadeTable(decades []bazi.Decade, nowYear int) string {
	headers := []string{"大运", "起止", "年龄", ""}
	current := bazi.CurrentDecade(decades, nowYear)
	rows := make([][]string, 0, len(decades))
	for _, d := range decades {
		gz := GanZhiStyled(d.GanZhi)
		if d.GanZhi == "" {
			gz = StyleDim.Render("未起运")
		}
		mark := ""
		if current != nil && d.StartYear == current.StartYear {
			mark = StyleGreen.Render("◀ 当前")
		}
		rows = append(rows, []string{
			gz,
			fmt.Sprintf("%d-%d", d.StartYear, d.EndYear),
			fmt.Sprintf("%d-%d岁", d.StartAge, d.EndAge),
			mark,
		})
	}
	return RenderTable(headers, rows)
}

func annualTable(annual []bazi.AnnualCycle) string {
	headers := []string{"流年", "年份", "虚岁"}
	rows := make([][]string, 0, len(annual))
	for _, a := range annual {
		rows = append(rows, []string{
			GanZhiStyled(a.GanZhi),
			fmt.Sprintf("%d", a.Year),
			fmt.Sprintf("%d岁", a.Age),
		})
	}
	return RenderTable(headers, rows)
}

func monthlyTable(monthly []bazi.MonthlyCycle, year int) string {
	headers := []string{fmt.Sprintf("%d流月", year), "干支"}
	rows := make([][]string, 0, len(monthly))
	for _, m := range monthly {
		rows = append(rows, []string{m.Month, GanZhiStyled(m.GanZhi)})
	}
	return RenderTable(headers, rows)
}
