package weather

import (
	"fmt"
	"math"
)

const (
	zeroCelsiusKelvin = 273.15

	// FreezingPointKelvin is the freezing point of water.
	FreezingPointKelvin = 273.15

	// DefaultSignificanceThresholdKelvin is the default difference between
	// actual and perceived temperature that counts as significant wind chill
	// or heat index.
	DefaultSignificanceThresholdKelvin = 3.0
)

// Temperature is the actual and perceived air temperature, stored in kelvin
// as reported by the provider.
type Temperature struct {
	temp      float64
	feelsLike float64
}

// NewTemperature creates a Temperature from kelvin values. Both values must
// be finite and not below absolute zero.
func NewTemperature(temp, feelsLike float64) (Temperature, error) {
	if err := validateKelvin(temp, "temp"); err != nil {
		return Temperature{}, err
	}
	if err := validateKelvin(feelsLike, "feelsLike"); err != nil {
		return Temperature{}, err
	}
	return Temperature{temp: temp, feelsLike: feelsLike}, nil
}

// TemperatureFromCelsius creates a Temperature from Celsius values.
func TemperatureFromCelsius(temp, feelsLike float64) (Temperature, error) {
	return NewTemperature(temp+zeroCelsiusKelvin, feelsLike+zeroCelsiusKelvin)
}

// TemperatureFromFahrenheit creates a Temperature from Fahrenheit values.
func TemperatureFromFahrenheit(temp, feelsLike float64) (Temperature, error) {
	return NewTemperature(fahrenheitToKelvin(temp), fahrenheitToKelvin(feelsLike))
}

// Kelvin returns the actual temperature in kelvin.
func (t Temperature) Kelvin() float64 {
	return t.temp
}

// Celsius returns the actual temperature in degrees Celsius.
func (t Temperature) Celsius() float64 {
	return t.temp - zeroCelsiusKelvin
}

// Fahrenheit returns the actual temperature in degrees Fahrenheit.
func (t Temperature) Fahrenheit() float64 {
	return t.Celsius()*9.0/5.0 + 32.0
}

// FeelsLikeKelvin returns the perceived temperature in kelvin.
func (t Temperature) FeelsLikeKelvin() float64 {
	return t.feelsLike
}

// FeelsLikeCelsius returns the perceived temperature in degrees Celsius.
func (t Temperature) FeelsLikeCelsius() float64 {
	return t.feelsLike - zeroCelsiusKelvin
}

// FeelsLikeFahrenheit returns the perceived temperature in degrees Fahrenheit.
func (t Temperature) FeelsLikeFahrenheit() float64 {
	return t.FeelsLikeCelsius()*9.0/5.0 + 32.0
}

// IsFreezing reports whether the actual temperature is below the freezing
// point of water.
func (t Temperature) IsFreezing() bool {
	return t.temp < FreezingPointKelvin
}

// HasSignificantWindChill reports whether the perceived temperature is at
// least threshold kelvin below the actual temperature. A threshold <= 0 uses
// DefaultSignificanceThresholdKelvin.
func (t Temperature) HasSignificantWindChill(threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultSignificanceThresholdKelvin
	}
	return t.temp-t.feelsLike >= threshold
}

// HasSignificantHeatIndex reports whether the perceived temperature is at
// least threshold kelvin above the actual temperature. A threshold <= 0 uses
// DefaultSignificanceThresholdKelvin.
func (t Temperature) HasSignificantHeatIndex(threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultSignificanceThresholdKelvin
	}
	return t.feelsLike-t.temp >= threshold
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.2fK (%.2f°C), feels like %.2fK (%.2f°C)",
		t.temp, t.Celsius(), t.feelsLike, t.FeelsLikeCelsius())
}

func fahrenheitToKelvin(f float64) float64 {
	return (f-32.0)*5.0/9.0 + zeroCelsiusKelvin
}

func validateKelvin(v float64, name string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got: %v", name, v)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be below absolute zero, got: %.2f", name, v)
	}
	return nil
}
