package bazi

import (
	"fmt"
	"time"
)

// Chinese civil time is fixed to the 120°E meridian. A birthplace east or
// west of it shifts the apparent solar time by four minutes per degree.
const referenceLongitude = 120.0

// SolarTimeCorrection holds the longitude adjustment applied to a birth time.
type SolarTimeCorrection struct {
	Adjusted time.Time
	// OffsetMinutes is positive east of the reference meridian.
	OffsetMinutes float64
}

// Label renders the correction for display, e.g. 真太阳时校正: +12.0分钟.
func (c SolarTimeCorrection) Label() string {
	if c.OffsetMinutes >= 0 {
		return fmt.Sprintf("真太阳时校正: +%.1f分钟", c.OffsetMinutes)
	}
	return fmt.Sprintf("真太阳时校正: %.1f分钟", c.OffsetMinutes)
}

// TrueSolarTime shifts a civil birth time to apparent solar time at the
// given longitude.
func TrueSolarTime(t time.Time, longitude float64) SolarTimeCorrection {
	offset := (longitude - referenceLongitude) * 4
	return SolarTimeCorrection{
		Adjusted:      t.Add(time.Duration(offset * float64(time.Minute))),
		OffsetMinutes: offset,
	}
}
