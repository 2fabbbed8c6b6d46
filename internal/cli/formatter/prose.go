package formatter

import (
	"regexp"

	"github.com/alexanderramin/tianji/internal/contract"
)

// Reading prose arrives as light markdown. The terminal gets styles
// instead: headers and list markers take the accent color, emphasis
// markers are applied or stripped.
var (
	mdHeaderRe    = regexp.MustCompile(`(?m)^#{1,6}[ \t]*(.+)$`)
	mdBoldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	mdBoldAltRe   = regexp.MustCompile(`__(.+?)__`)
	mdItalicRe    = regexp.MustCompile(`\*([^*\n]+?)\*`)
	mdItalicAltRe = regexp.MustCompile(`\b_([^_\n]+?)_\b`)
	mdBulletRe    = regexp.MustCompile(`(?m)^[ \t]*[-*•][ \t]+`)
	mdNumberRe    = regexp.MustCompile(`(?m)^[ \t]*(\d+)\.[ \t]+`)
)

// CleanMarkdown converts reading prose to terminal output. Bold must run
// before italic so ** pairs are not eaten as two single stars.
func CleanMarkdown(text string) string {
	s := mdHeaderRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := mdHeaderRe.FindStringSubmatch(m)
		return StyleHeader.Render(sub[1])
	})
	s = mdBoldRe.ReplaceAllStringFunc(s, func(m string) string {
		return StyleBold.Render(m[2 : len(m)-2])
	})
	s = mdBoldAltRe.ReplaceAllStringFunc(s, func(m string) string {
		return StyleBold.Render(m[2 : len(m)-2])
	})
	s = mdItalicRe.ReplaceAllString(s, "$1")
	s = mdItalicAltRe.ReplaceAllString(s, "$1")
	s = mdBulletRe.ReplaceAllString(s, StyleYellow.Render("▸")+" ")
	s = mdNumberRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := mdNumberRe.FindStringSubmatch(m)
		return StyleYellow.Render(sub[1]+".") + " "
	})
	return s
}

// SourceNote renders the provenance footer under a reading.
func SourceNote(v contract.ReadingView) string {
	switch v.Source {
	case "llm":
		if v.Model != "" {
			return StyleDim.Render("—— " + v.Model)
		}
		return StyleDim.Render("—— 大模型推演")
	case "refused":
		return StyleDim.Render("—— 此问不宜深究")
	default:
		return StyleDim.Render("—— 离线推演")
	}
}
