// Package weather defines the immutable domain values that the SDK returns
// to callers: a Weather snapshot composed of condition, temperature, wind,
// visibility, sun times and timezone information for one city.
//
// Values are constructed through validating constructors and are safe to
// copy and to share between goroutines.
package weather

import (
	"fmt"
	"strings"
	"time"
)

// Weather is a single observed weather snapshot for a city.
type Weather struct {
	condition   Condition
	temperature Temperature
	wind        Wind
	visibility  Visibility
	sunTimes    SunTimes
	cityName    string
	timezone    TimezoneOffset
	observedAt  time.Time
}

// New creates a Weather snapshot. The city name must not be blank and the
// observation time must be set.
func New(condition Condition, temperature Temperature, wind Wind, visibility Visibility,
	sunTimes SunTimes, cityName string, timezone TimezoneOffset, observedAt time.Time) (Weather, error) {
	if strings.TrimSpace(cityName) == "" {
		return Weather{}, fmt.Errorf("city name must not be blank")
	}
	if observedAt.IsZero() {
		return Weather{}, fmt.Errorf("observation time must be set")
	}
	return Weather{
		condition:   condition,
		temperature: temperature,
		wind:        wind,
		visibility:  visibility,
		sunTimes:    sunTimes,
		cityName:    cityName,
		timezone:    timezone,
		observedAt:  observedAt,
	}, nil
}

// Condition returns the reported weather condition.
func (w Weather) Condition() Condition { return w.condition }

// Temperature returns the actual and perceived temperature.
func (w Weather) Temperature() Temperature { return w.temperature }

// Wind returns the wind observation.
func (w Weather) Wind() Wind { return w.wind }

// Visibility returns the horizontal visibility.
func (w Weather) Visibility() Visibility { return w.visibility }

// SunTimes returns the sunrise and sunset instants.
func (w Weather) SunTimes() SunTimes { return w.sunTimes }

// CityName returns the city name as reported by the provider.
func (w Weather) CityName() string { return w.cityName }

// Timezone returns the UTC offset of the observed location.
func (w Weather) Timezone() TimezoneOffset { return w.timezone }

// ObservedAt returns the observation instant in UTC.
func (w Weather) ObservedAt() time.Time { return w.observedAt }

// LocalTime returns the observation instant in the observed location's
// timezone.
func (w Weather) LocalTime() time.Time {
	return w.observedAt.In(w.timezone.Location())
}

// Before reports whether this snapshot was observed before other.
func (w Weather) Before(other Weather) bool {
	return w.observedAt.Before(other.observedAt)
}

func (w Weather) String() string {
	return fmt.Sprintf("%s: %s, %s", w.cityName, w.condition, w.temperature)
}
