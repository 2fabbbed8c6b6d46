package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
)

// FormatProfileList renders stored profiles as a table.
func FormatProfileList(profiles []*domain.Profile) string {
	if len(profiles) == 0 {
		return StyleDim.Render("暂无档案。用 tianji profile add 建一个。") + "\n"
	}
	headers := []string{"档案", "性别", "出生", "时辰", "城市"}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		city := p.City
		if city == "" {
			city = StyleDim.Render("—")
		}
		rows = append(rows, []string{
			StyleBold.Render(p.ID),
			GenderBadge(p.Gender),
			p.BirthDateLabel(),
			p.BirthHour,
			city,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProfileDetail renders one profile's stored facts.
func FormatProfileDetail(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString(Header(p.ID))
	b.WriteString("\n")

	calendarKind := "公历"
	if p.IsLunar {
		calendarKind = "农历"
	}
	lastCast := p.LastDivination
	if lastCast == "" {
		lastCast = StyleDim.Render("从未起卦")
	}
	b.WriteString(RenderKV([][2]string{
		{"性别", GenderBadge(p.Gender)},
		{"出生", p.BirthDateLabel() + " " + p.BirthHour},
		{"历法", calendarKind},
		{"城市", p.City},
		{"上次起卦", lastCast},
		{"建档", DateLabel(p.CreatedAt)},
	}))
	return b.String()
}

// FormatReadingList renders a profile's saved readings, newest first, each
// with a kind pill and a one-line preview.
func FormatReadingList(readings []*domain.Reading) string {
	if len(readings) == 0 {
		return StyleDim.Render("暂无历史记录。") + "\n"
	}
	var b strings.Builder
	for _, r := range readings {
		title := r.Topic
		if r.Question != "" {
			title = r.Question
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n", KindPill(r.Kind), StyleBold.Render(title), StyleDim.Render(DateLabel(r.CreatedAt))))
		b.WriteString("   " + StyleDim.Render(TruncateText(firstLine(r.Content), 64)) + "\n")
	}
	return b.String()
}

// FormatReading renders one saved reading in full.
func FormatReading(r *domain.Reading) string {
	var b strings.Builder
	title := r.Topic
	if r.Question != "" {
		title = r.Question
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	meta := KindPill(r.Kind) + "  " + StyleDim.Render(DateLabel(r.CreatedAt))
	if r.Model != "" {
		meta += "  " + StyleDim.Render(r.Model)
	}
	b.WriteString(meta)
	b.WriteString("\n\n")
	b.WriteString(CleanMarkdown(r.Content))
	b.WriteString("\n")
	return b.String()
}

// FormatPersona renders the one-screen persona card shown when a session
// opens on a profile.
func FormatPersona(card intelligence.PersonaCard) string {
	var b strings.Builder
	b.WriteString(card.Summary)
	b.WriteString("\n\n")
	b.WriteString(RenderKV([][2]string{
		{"气象", card.CoreImage},
		{"心结", card.KeyConflict},
		{"解法", card.KeyCure},
	}))
	return RenderBox("命格速览", strings.TrimRight(b.String(), "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
