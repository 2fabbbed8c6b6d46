package domain

import "time"

// Reading is one stored consultation: an analysis topic, a free-form
// question, a couple comparison, or a divination. Question is empty
// except for question readings; Model records which LLM answered, or
// "fallback" when the built-in interpretation was used.
type Reading struct {
	ID        string
	ProfileID string
	Kind      ReadingKind
	Topic     string
	Question  string
	Content   string
	Model     string
	CreatedAt time.Time
}
