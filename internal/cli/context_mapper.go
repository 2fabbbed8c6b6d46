package cli

import (
	"time"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
)

// readingContext assembles the prompt context for a stored profile from
// its computed chart.
func readingContext(p *domain.Profile, resp *contract.ChartResponse, now time.Time) intelligence.ContextInput {
	return intelligence.ContextInput{
		Chart:      resp.Chart,
		Cycles:     &resp.Cycles,
		Gender:     string(p.Gender),
		Birthplace: p.City,
		BirthLabel: p.BirthDateLabel() + " " + p.BirthHour,
		BirthYear:  p.BirthYear,
		Now:        now,
	}
}
