package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tianji/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// KindPill returns a colored indicator for a reading kind.
func KindPill(kind domain.ReadingKind) string {
	switch kind {
	case domain.ReadingAnalysis:
		return StyleBlue.Render("● 命理")
	case domain.ReadingQuestion:
		return StyleGreen.Render("● 问答")
	case domain.ReadingCompat:
		return StylePurple.Render("● 合婚")
	case domain.ReadingDivination:
		return StyleYellow.Render("● 卦象")
	default:
		return StyleDim.Render(string(kind))
	}
}

// GenderBadge renders the gender glyph: 男 blue, 女 purple.
func GenderBadge(g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return StyleBlue.Render("男")
	case domain.GenderFemale:
		return StylePurple.Render("女")
	}
	return StyleDim.Render("--")
}

// DateLabel formats a timestamp for list display, local time.
func DateLabel(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// TruncateText shortens s to at most width display cells, appending an
// ellipsis when cut. Safe for double-width CJK runes.
func TruncateText(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}
