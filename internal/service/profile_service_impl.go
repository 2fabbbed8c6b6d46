package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/alexanderramin/tianji/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Create(ctx context.Context, p *domain.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	exists, err := s.profiles.Exists(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("checking profile %q: %w", p.ID, err)
	}
	if exists {
		return fmt.Errorf("profile %q already exists", p.ID)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return s.profiles.Create(ctx, p)
}

func (s *profileService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *profileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}

// History decodes the stored session. Anything unreadable counts as no
// session: the next reading starts fresh rather than failing.
func (s *profileService) History(ctx context.Context, id string) ([]intelligence.HistoryEntry, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SessionData == "" {
		return nil, nil
	}
	var entries []intelligence.HistoryEntry
	if err := json.Unmarshal([]byte(p.SessionData), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (s *profileService) SaveHistory(ctx context.Context, id string, entries []intelligence.HistoryEntry) error {
	if len(entries) == 0 {
		return s.profiles.UpdateSessionData(ctx, id, "")
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding session history: %w", err)
	}
	return s.profiles.UpdateSessionData(ctx, id, string(data))
}
