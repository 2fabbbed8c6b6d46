package service

import (
	"time"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/intelligence"
)

// The divination quota day rolls over at midnight China Standard Time,
// wherever the process runs.
var cstZone = time.FixedZone("CST", 8*60*60)

func cstDay(t time.Time) string {
	return t.In(cstZone).Format("2006-01-02")
}

func readingView(r *intelligence.Reading) contract.ReadingView {
	return contract.ReadingView{Text: r.Text, Model: r.Model, Source: r.Source}
}
