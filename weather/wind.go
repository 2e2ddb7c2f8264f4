package weather

import (
	"fmt"
	"math"
)

// Wind is the wind speed in meters per second and, when reported by the
// provider, the direction in meteorological degrees.
type Wind struct {
	speed     float64
	direction int
	hasDir    bool
}

// NewWind creates a Wind without direction information.
func NewWind(speed float64) (Wind, error) {
	if err := validateWindSpeed(speed); err != nil {
		return Wind{}, err
	}
	return Wind{speed: speed}, nil
}

// NewWindWithDirection creates a Wind with a direction between 0 and 360
// degrees.
func NewWindWithDirection(speed float64, direction int) (Wind, error) {
	if err := validateWindSpeed(speed); err != nil {
		return Wind{}, err
	}
	if direction < 0 || direction > 360 {
		return Wind{}, fmt.Errorf("wind direction must be between 0 and 360 degrees, got: %d", direction)
	}
	return Wind{speed: speed, direction: direction, hasDir: true}, nil
}

// Speed returns the wind speed in meters per second.
func (w Wind) Speed() float64 {
	return w.speed
}

// Direction returns the wind direction in degrees and whether a direction
// was reported.
func (w Wind) Direction() (int, bool) {
	return w.direction, w.hasDir
}

// Strength returns the Beaufort scale classification of the wind speed.
func (w Wind) Strength() WindStrength {
	return WindStrengthFromSpeed(w.speed)
}

func (w Wind) String() string {
	if w.hasDir {
		return fmt.Sprintf("%.2f m/s at %d°", w.speed, w.direction)
	}
	return fmt.Sprintf("%.2f m/s", w.speed)
}

func validateWindSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("wind speed must be finite, got: %v", speed)
	}
	if speed < 0 {
		return fmt.Errorf("wind speed must not be negative, got: %.2f", speed)
	}
	return nil
}
