package weather

import (
	"fmt"
	"math"
)

const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.344
)

// Visibility is a horizontal visibility distance in meters.
type Visibility struct {
	meters int
}

// NewVisibility creates a Visibility from a non-negative distance in meters.
func NewVisibility(meters int) (Visibility, error) {
	if meters < 0 {
		return Visibility{}, fmt.Errorf("visibility must not be negative, got: %d m", meters)
	}
	return Visibility{meters: meters}, nil
}

// VisibilityFromKilometers creates a Visibility from a distance in
// kilometers, rounded to the nearest meter.
func VisibilityFromKilometers(km float64) (Visibility, error) {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return Visibility{}, fmt.Errorf("visibility must be finite and not negative, got: %v km", km)
	}
	return Visibility{meters: int(math.Round(km * metersPerKilometer))}, nil
}

// VisibilityFromMiles creates a Visibility from a distance in statute miles,
// rounded to the nearest meter.
func VisibilityFromMiles(miles float64) (Visibility, error) {
	if math.IsNaN(miles) || math.IsInf(miles, 0) || miles < 0 {
		return Visibility{}, fmt.Errorf("visibility must be finite and not negative, got: %v mi", miles)
	}
	return Visibility{meters: int(math.Round(miles * metersPerMile))}, nil
}

// Meters returns the visibility distance in meters.
func (v Visibility) Meters() int {
	return v.meters
}

// Kilometers returns the visibility distance in kilometers.
func (v Visibility) Kilometers() float64 {
	return float64(v.meters) / metersPerKilometer
}

// Miles returns the visibility distance in statute miles.
func (v Visibility) Miles() float64 {
	return float64(v.meters) / metersPerMile
}

func (v Visibility) String() string {
	return fmt.Sprintf("%.2f km", v.Kilometers())
}
