package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/tianji/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// test for it with errors.Is.
var ErrNotFound = errors.New("not found")

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateSessionData(ctx context.Context, id, data string) error
	LastDivination(ctx context.Context, id string) (string, error)
	SetLastDivination(ctx context.Context, id, day string) error
	Delete(ctx context.Context, id string) error
}

type ReadingRepo interface {
	Create(ctx context.Context, r *domain.Reading) error
	GetByID(ctx context.Context, id string) (*domain.Reading, error)
	ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.Reading, error)
	Delete(ctx context.Context, id string) error
}
