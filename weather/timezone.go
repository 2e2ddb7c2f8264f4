package weather

import (
	"fmt"
	"time"
)

const (
	minOffsetSeconds = -12 * 60 * 60 // UTC-12
	maxOffsetSeconds = 14 * 60 * 60  // UTC+14
)

// TimezoneOffset is a fixed offset from UTC in seconds, as reported by the
// provider for the observed location.
type TimezoneOffset struct {
	seconds int
}

// NewTimezoneOffset creates a TimezoneOffset. The offset must be between
// UTC-12 and UTC+14.
func NewTimezoneOffset(seconds int) (TimezoneOffset, error) {
	if seconds < minOffsetSeconds || seconds > maxOffsetSeconds {
		return TimezoneOffset{}, fmt.Errorf("timezone offset must be between %d and %d seconds, got: %d",
			minOffsetSeconds, maxOffsetSeconds, seconds)
	}
	return TimezoneOffset{seconds: seconds}, nil
}

// TimezoneOffsetFromHours creates a TimezoneOffset from whole hours.
func TimezoneOffsetFromHours(hours int) (TimezoneOffset, error) {
	return NewTimezoneOffset(hours * 60 * 60)
}

// Seconds returns the offset from UTC in seconds.
func (o TimezoneOffset) Seconds() int {
	return o.seconds
}

// Location returns a fixed time.Location for the offset.
func (o TimezoneOffset) Location() *time.Location {
	return time.FixedZone(o.String(), o.seconds)
}

func (o TimezoneOffset) String() string {
	sign := "+"
	s := o.seconds
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, s/3600, (s%3600)/60)
}
