package weather

import (
	"fmt"
	"time"
)

// SunTimes holds the sunrise and sunset instants for a location.
type SunTimes struct {
	sunrise time.Time
	sunset  time.Time
}

// NewSunTimes creates a SunTimes. Sunrise must not be after sunset.
func NewSunTimes(sunrise, sunset time.Time) (SunTimes, error) {
	if sunrise.IsZero() || sunset.IsZero() {
		return SunTimes{}, fmt.Errorf("sunrise and sunset must be set")
	}
	if sunrise.After(sunset) {
		return SunTimes{}, fmt.Errorf("sunrise must occur before sunset, got sunrise=%s sunset=%s", sunrise, sunset)
	}
	return SunTimes{sunrise: sunrise, sunset: sunset}, nil
}

// Sunrise returns the sunrise instant.
func (s SunTimes) Sunrise() time.Time {
	return s.sunrise
}

// Sunset returns the sunset instant.
func (s SunTimes) Sunset() time.Time {
	return s.sunset
}

// DaylightDuration returns the time between sunrise and sunset.
func (s SunTimes) DaylightDuration() time.Duration {
	return s.sunset.Sub(s.sunrise)
}

// IsDaytime reports whether t falls strictly between sunrise and sunset.
func (s SunTimes) IsDaytime(t time.Time) bool {
	return t.After(s.sunrise) && t.Before(s.sunset)
}
