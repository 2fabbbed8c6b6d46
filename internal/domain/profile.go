package domain

import (
	"fmt"
	"regexp"
	"time"
)

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,31}$`)

// Birth years the calendar tables cover.
const (
	MinBirthYear = 1900
	MaxBirthYear = 2100
)

// Profile is a stored birth record. The ID is user-chosen; birth fields
// stay in the calendar the user entered them in (IsLunar marks lunar
// dates), and BirthHour holds either a clock time like "12:30" or a
// traditional hour name like "午时".
type Profile struct {
	ID             string
	Gender         Gender
	BirthYear      int
	BirthMonth     int
	BirthDay       int
	BirthHour      string
	City           string
	IsLunar        bool
	SessionData    string
	LastDivination string
	CreatedAt      time.Time
}

// Validate checks the fields a profile needs before it can be stored.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile ID is required")
	}
	if !profileIDPattern.MatchString(p.ID) {
		return fmt.Errorf("profile ID %q must be 1-32 letters, digits, '_' or '-' and start with a letter or digit", p.ID)
	}
	if !ValidGenders[string(p.Gender)] {
		return fmt.Errorf("gender %q must be 男 or 女", p.Gender)
	}
	if p.BirthYear < MinBirthYear || p.BirthYear > MaxBirthYear {
		return fmt.Errorf("birth year %d must be between %d and %d", p.BirthYear, MinBirthYear, MaxBirthYear)
	}
	if p.BirthMonth < 1 || p.BirthMonth > 12 {
		return fmt.Errorf("birth month %d must be between 1 and 12", p.BirthMonth)
	}
	if p.BirthDay < 1 || p.BirthDay > 31 {
		return fmt.Errorf("birth day %d must be between 1 and 31", p.BirthDay)
	}
	if p.BirthHour == "" {
		return fmt.Errorf("birth hour is required")
	}
	return nil
}

// BirthDateLabel renders the birth date for display, marking lunar dates.
func (p *Profile) BirthDateLabel() string {
	if p.IsLunar {
		return fmt.Sprintf("农历%d年%d月%d日", p.BirthYear, p.BirthMonth, p.BirthDay)
	}
	return fmt.Sprintf("%d年%d月%d日", p.BirthYear, p.BirthMonth, p.BirthDay)
}
