package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/repository"
)

type readingService struct {
	readings repository.ReadingRepo
}

func NewReadingService(readings repository.ReadingRepo) ReadingService {
	return &readingService{readings: readings}
}

func (s *readingService) Record(ctx context.Context, r *domain.Reading) error {
	if r.ProfileID == "" {
		return fmt.Errorf("reading needs a profile")
	}
	if r.Content == "" {
		return fmt.Errorf("reading needs content")
	}
	if r.Kind == "" {
		r.Kind = domain.ReadingAnalysis
	}
	if !domain.ValidReadingKinds[string(r.Kind)] {
		return fmt.Errorf("reading kind %q is not one of analysis/question/compat/divination", r.Kind)
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return s.readings.Create(ctx, r)
}

func (s *readingService) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	return s.readings.GetByID(ctx, id)
}

func (s *readingService) ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.Reading, error) {
	return s.readings.ListByProfile(ctx, profileID, limit)
}

func (s *readingService) Delete(ctx context.Context, id string) error {
	return s.readings.Delete(ctx, id)
}
