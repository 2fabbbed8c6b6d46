package service

import (
	"context"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
)

// ChartService derives natal charts and fortune cycles from civil birth
// records.
type ChartService interface {
	Compute(ctx context.Context, req contract.ChartRequest) (*contract.ChartResponse, error)
}

type ProfileService interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Delete(ctx context.Context, id string) error

	// History loads the profile's saved reading session; SaveHistory
	// replaces it. Both work on the same per-profile record the
	// interactive session resumes from.
	History(ctx context.Context, id string) ([]intelligence.HistoryEntry, error)
	SaveHistory(ctx context.Context, id string, entries []intelligence.HistoryEntry) error
}

type ReadingService interface {
	// Record stores a generated reading, filling in id and timestamp.
	Record(ctx context.Context, r *domain.Reading) error
	GetByID(ctx context.Context, id string) (*domain.Reading, error)
	// ListByProfile returns newest-first; limit 0 means everything.
	ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.Reading, error)
	Delete(ctx context.Context, id string) error
}

// CompatibilityService scores two charts and narrates the pairing.
type CompatibilityService interface {
	Analyze(ctx context.Context, req contract.CompatRequest) (*contract.CompatResponse, error)
}

// DivinationService casts a hexagram for a profile under the daily
// quota, records the reading, and stamps the quota in one transaction.
type DivinationService interface {
	Divine(ctx context.Context, req contract.DivineRequest) (*contract.DivineResponse, error)
}
