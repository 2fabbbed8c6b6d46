package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tianji/internal/bazi"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorHeader)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ElementStyle returns the style carrying an element's traditional color:
// 木 green, 火 red, 土 yellow, 金 orange, 水 blue.
func ElementStyle(e bazi.Element) lipgloss.Style {
	switch e {
	case bazi.Wood:
		return StyleGreen
	case bazi.Fire:
		return StyleRed
	case bazi.Earth:
		return StyleYellow
	case bazi.Metal:
		return StyleOrange
	case bazi.Water:
		return StyleBlue
	}
	return StyleFg
}

// StemStyled renders a stem in its element color.
func StemStyled(s bazi.Stem) string {
	return ElementStyle(s.Element()).Render(string(s))
}

// BranchStyled renders a branch in its element color.
func BranchStyled(b bazi.Branch) string {
	return ElementStyle(b.Element()).Render(string(b))
}

// PillarStyled renders a stem-branch pair, each character in its own
// element color.
func PillarStyled(p bazi.Pillar) string {
	return StemStyled(p.Stem) + BranchStyled(p.Branch)
}

// GanZhiStyled colors an arbitrary 干支 string character by character.
// Characters that are neither stem nor branch pass through unstyled.
func GanZhiStyled(gz string) string {
	var b strings.Builder
	for _, r := range gz {
		ch := string(r)
		if s, err := bazi.ParseStem(ch); err == nil {
			b.WriteString(StemStyled(s))
			continue
		}
		if br, err := bazi.ParseBranch(ch); err == nil {
			b.WriteString(BranchStyled(br))
			continue
		}
		b.WriteString(ch)
	}
	return b.String()
}

// Header renders a section header with the orange header style and an
// underline sized to the visible width.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
