package contract

import (
	"time"

	"github.com/alexanderramin/tianji/internal/bazi"
)

// CompatRequest asks for a two-chart compatibility reading.
type CompatRequest struct {
	A, B BirthInput
	// RelationType frames the prose: 恋人/伴侣 (the default when empty),
	// 事业合伙人, 知己好友, or 尚未确定.
	RelationType string
	// Focus is an optional core question that steers the reading.
	Focus string
	Now   *time.Time
}

func NewCompatRequest(a, b BirthInput) CompatRequest {
	return CompatRequest{A: a, B: b}
}

// CompatResponse pairs the deterministic chemistry score with the prose
// reading and both derived charts.
type CompatResponse struct {
	Result         bazi.CompatibilityResult
	AChart, BChart bazi.Chart
	Reading        ReadingView
}
