package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/calendar"
	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
)

type chartService struct {
	observer UseCaseObserver
}

func NewChartService(observers ...UseCaseObserver) ChartService {
	return &chartService{observer: useCaseObserverOrNoop(observers)}
}

func (s *chartService) Compute(ctx context.Context, req contract.ChartRequest) (resp *contract.ChartResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"lunar": req.Birth.IsLunar,
		"city":  req.Birth.City,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compute-chart",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = req.Birth.Validate(); err != nil {
		return nil, err
	}

	var birth time.Time
	birth, err = resolveBirthInstant(req.Birth)
	if err != nil {
		return nil, err
	}

	corrected := birth
	var correction bazi.SolarTimeCorrection
	hasCorrection := false
	if req.UseSolarTime {
		if lng, ok := calendar.CityLongitude(req.Birth.City); ok {
			correction = bazi.TrueSolarTime(birth, lng)
			corrected = correction.Adjusted
			hasCorrection = true
		}
	}

	var pillars bazi.Pillars
	pillars, err = calendar.PillarsAt(corrected)
	if err != nil {
		return nil, fmt.Errorf("deriving pillars: %w", err)
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	return &contract.ChartResponse{
		Chart:         bazi.Derive(pillars),
		Cycles:        calendar.FortuneCyclesAt(corrected, req.Birth.Gender == string(domain.GenderMale), now),
		Birth:         birth,
		Corrected:     corrected,
		Correction:    correction,
		HasCorrection: hasCorrection,
	}, nil
}

// resolveBirthInstant turns the entered birth record into a local civil
// instant, converting lunar dates and parsing the hour label.
func resolveBirthInstant(b contract.BirthInput) (time.Time, error) {
	hour, minute, err := calendar.ParseBirthHour(b.Hour)
	if err != nil {
		return time.Time{}, &contract.ChartError{Code: contract.ChartErrInvalidHour, Message: err.Error()}
	}

	if b.IsLunar {
		day, err := calendar.SolarFromLunar(b.Year, b.Month, b.Day, false)
		if err != nil {
			return time.Time{}, &contract.ChartError{Code: contract.ChartErrInvalidDate, Message: err.Error()}
		}
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
	}

	t := time.Date(b.Year, time.Month(b.Month), b.Day, hour, minute, 0, 0, time.Local)
	if t.Year() != b.Year || t.Month() != time.Month(b.Month) || t.Day() != b.Day {
		return time.Time{}, &contract.ChartError{
			Code:    contract.ChartErrInvalidDate,
			Message: fmt.Sprintf("%d-%02d-%02d is not a calendar date", b.Year, b.Month, b.Day),
		}
	}
	return t, nil
}
