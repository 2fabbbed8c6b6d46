package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tianji/internal/domain"
)

var testProfileCounter atomic.Int64

// Profile options
type ProfileOption func(*domain.Profile)

func WithGender(g domain.Gender) ProfileOption {
	return func(p *domain.Profile) {
		p.Gender = g
	}
}

func WithBirthDate(year, month, day int) ProfileOption {
	return func(p *domain.Profile) {
		p.BirthYear = year
		p.BirthMonth = month
		p.BirthDay = day
	}
}

func WithBirthHour(h string) ProfileOption {
	return func(p *domain.Profile) {
		p.BirthHour = h
	}
}

func WithCity(city string) ProfileOption {
	return func(p *domain.Profile) {
		p.City = city
	}
}

func WithLunarDate() ProfileOption {
	return func(p *domain.Profile) {
		p.IsLunar = true
	}
}

func WithLastDivination(day string) ProfileOption {
	return func(p *domain.Profile) {
		p.LastDivination = day
	}
}

// NewTestProfile builds a valid profile with a unique ID. The defaults
// match the 1990-01-01 noon chart used across the engine tests.
func NewTestProfile(opts ...ProfileOption) *domain.Profile {
	n := testProfileCounter.Add(1)
	p := &domain.Profile{
		ID:         fmt.Sprintf("profile-%02d", n),
		Gender:     domain.GenderMale,
		BirthYear:  1990,
		BirthMonth: 1,
		BirthDay:   1,
		BirthHour:  "12:00",
		City:       "北京",
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reading options
type ReadingOption func(*domain.Reading)

func WithReadingKind(k domain.ReadingKind) ReadingOption {
	return func(r *domain.Reading) {
		r.Kind = k
	}
}

func WithTopic(topic string) ReadingOption {
	return func(r *domain.Reading) {
		r.Topic = topic
	}
}

func WithQuestion(q string) ReadingOption {
	return func(r *domain.Reading) {
		r.Question = q
	}
}

func WithModel(model string) ReadingOption {
	return func(r *domain.Reading) {
		r.Model = model
	}
}

func WithCreatedAt(t time.Time) ReadingOption {
	return func(r *domain.Reading) {
		r.CreatedAt = t
	}
}

// NewTestReading builds a stored reading for the given profile.
func NewTestReading(profileID, content string, opts ...ReadingOption) *domain.Reading {
	r := &domain.Reading{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		Kind:      domain.ReadingAnalysis,
		Topic:     "整体命格",
		Content:   content,
		Model:     "fallback",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
