package contract

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tianji/internal/zhouyi"
)

// DivineRequest asks for a coin-toss casting on behalf of a profile.
type DivineRequest struct {
	ProfileID string
	// Question is what the casting is about; empty readings cover
	// general fortune.
	Question string
	// Now anchors the daily quota day; nil means the wall clock.
	Now *time.Time
}

// DivineResponse carries the casting, its reading, and the id of the
// stored record.
type DivineResponse struct {
	Cast           zhouyi.CastResult
	Reading        ReadingView
	SavedReadingID string
}

type DivineErrorCode string

const (
	// DivineErrQuotaExhausted means the profile already cast today
	// (China Standard Time day).
	DivineErrQuotaExhausted DivineErrorCode = "QUOTA_EXHAUSTED"
)

type DivineError struct {
	Code    DivineErrorCode
	Message string
}

func (e *DivineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
