package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/db"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/alexanderramin/tianji/internal/repository"
	"github.com/alexanderramin/tianji/internal/zhouyi"
)

type divinationService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	caster   *zhouyi.Caster
	analysis intelligence.AnalysisService
	observer UseCaseObserver
}

// NewDivinationService wires the daily casting flow. analysis may be
// nil, which pins the reading to the deterministic interpretation.
func NewDivinationService(
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
	caster *zhouyi.Caster,
	analysis intelligence.AnalysisService,
	observers ...UseCaseObserver,
) DivinationService {
	return &divinationService{
		profiles: profiles,
		uow:      uow,
		caster:   caster,
		analysis: analysis,
		observer: useCaseObserverOrNoop(observers),
	}
}

func errQuotaExhausted() error {
	return &contract.DivineError{
		Code:    contract.DivineErrQuotaExhausted,
		Message: "今日已起过一卦，天机不可频泄，请明日再来",
	}
}

func (s *divinationService) Divine(ctx context.Context, req contract.DivineRequest) (resp *contract.DivineResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"profile": req.ProfileID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "divine",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	today := cstDay(now)

	// Fast path before any casting or model call; the transactional
	// write below re-checks.
	var last string
	last, err = s.profiles.LastDivination(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if last == today {
		err = errQuotaExhausted()
		return nil, err
	}

	cast := s.caster.Cast()
	fields["hexagram"] = cast.Original.Name

	var view contract.ReadingView
	if s.analysis != nil {
		var reading *intelligence.Reading
		reading, err = s.analysis.DivinationReading(ctx, cast, req.Question, now)
		if err != nil {
			return nil, fmt.Errorf("divination reading: %w", err)
		}
		view = readingView(reading)
	} else {
		view = contract.ReadingView{
			Text:   intelligence.DeterministicDivinationReading(cast, req.Question),
			Source: "deterministic",
		}
	}

	record := &domain.Reading{
		ID:        uuid.New().String(),
		ProfileID: req.ProfileID,
		Kind:      domain.ReadingDivination,
		Topic:     cast.Original.Name,
		Question:  req.Question,
		Content:   view.Text,
		Model:     view.Model,
		CreatedAt: now.UTC(),
	}

	// Consume the quota and store the casting together: either both
	// land or neither does.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		profiles := repository.NewSQLiteProfileRepo(tx)
		prev, txErr := profiles.LastDivination(ctx, req.ProfileID)
		if txErr != nil {
			return txErr
		}
		if prev == today {
			return errQuotaExhausted()
		}
		if txErr := profiles.SetLastDivination(ctx, req.ProfileID, today); txErr != nil {
			return fmt.Errorf("consuming daily quota: %w", txErr)
		}
		if txErr := repository.NewSQLiteReadingRepo(tx).Create(ctx, record); txErr != nil {
			return fmt.Errorf("recording casting: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.DivineResponse{
		Cast:           cast,
		Reading:        view,
		SavedReadingID: record.ID,
	}, nil
}
