package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/intelligence"
)

type compatService struct {
	charts   ChartService
	couple   intelligence.CoupleService
	observer UseCaseObserver
}

// NewCompatibilityService builds the two-chart analyzer. couple may be
// nil, which pins the prose to the deterministic reading.
func NewCompatibilityService(charts ChartService, couple intelligence.CoupleService, observers ...UseCaseObserver) CompatibilityService {
	return &compatService{charts: charts, couple: couple, observer: useCaseObserverOrNoop(observers)}
}

func (s *compatService) Analyze(ctx context.Context, req contract.CompatRequest) (resp *contract.CompatResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"relation": req.RelationType}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compat-analyze",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	reqA := contract.NewChartRequest(req.A)
	reqA.Now = req.Now
	var a *contract.ChartResponse
	a, err = s.charts.Compute(ctx, reqA)
	if err != nil {
		return nil, fmt.Errorf("deriving first chart: %w", err)
	}

	reqB := contract.NewChartRequest(req.B)
	reqB.Now = req.Now
	var b *contract.ChartResponse
	b, err = s.charts.Compute(ctx, reqB)
	if err != nil {
		return nil, fmt.Errorf("deriving second chart: %w", err)
	}

	comp := bazi.AnalyzeCompatibility(a.Chart.Pillars, b.Chart.Pillars)
	fields["score"] = comp.BaseScore

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	coupleReq := intelligence.CoupleRequest{
		A:            intelligence.CoupleInput{Chart: a.Chart, Gender: req.A.Gender},
		B:            intelligence.CoupleInput{Chart: b.Chart, Gender: req.B.Gender},
		RelationType: req.RelationType,
		Focus:        req.Focus,
		Now:          now,
	}

	var view contract.ReadingView
	if s.couple != nil {
		var reading *intelligence.Reading
		reading, err = s.couple.Reading(ctx, coupleReq)
		if err != nil {
			return nil, fmt.Errorf("couple reading: %w", err)
		}
		view = readingView(reading)
	} else {
		view = contract.ReadingView{
			Text:   intelligence.DeterministicCoupleReading(coupleReq, comp),
			Source: "deterministic",
		}
	}

	return &contract.CompatResponse{
		Result:  comp,
		AChart:  a.Chart,
		BChart:  b.Chart,
		Reading: view,
	}, nil
}
