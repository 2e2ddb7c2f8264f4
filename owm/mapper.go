package owm

import (
	"errors"
	"fmt"
	"time"

	"github.com/sultanrasulov/weather-sdk/weather"
)

// MapWeather converts a provider response into a weather.Weather domain
// value. It fails when the response is missing the weather condition list or
// when any value violates a domain constraint.
func MapWeather(resp *CurrentResponse) (weather.Weather, error) {
	if resp == nil {
		return weather.Weather{}, errors.New("response must not be nil")
	}
	if len(resp.Weather) == 0 {
		return weather.Weather{}, errors.New("weather condition list must not be empty")
	}

	// The first condition entry is the primary one.
	condition, err := weather.NewCondition(resp.Weather[0].Main, resp.Weather[0].Description)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("invalid condition: %w", err)
	}

	temperature, err := weather.NewTemperature(resp.Main.Temp, resp.Main.FeelsLike)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("invalid temperature: %w", err)
	}

	var wind weather.Wind
	if resp.Wind.Deg != nil {
		wind, err = weather.NewWindWithDirection(resp.Wind.Speed, *resp.Wind.Deg)
	} else {
		wind, err = weather.NewWind(resp.Wind.Speed)
	}
	if err != nil {
		return weather.Weather{}, fmt.Errorf("invalid wind: %w", err)
	}

	visibility, err := weather.NewVisibility(resp.Visibility)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("invalid visibility: %w", err)
	}

	sunTimes, err := weather.NewSunTimes(
		time.Unix(resp.Sys.Sunrise, 0).UTC(),
		time.Unix(resp.Sys.Sunset, 0).UTC(),
	)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("invalid sun times: %w", err)
	}

	timezone, err := weather.NewTimezoneOffset(resp.Timezone)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("invalid timezone: %w", err)
	}

	w, err := weather.New(condition, temperature, wind, visibility, sunTimes,
		resp.Name, timezone, time.Unix(resp.Dt, 0).UTC())
	if err != nil {
		return weather.Weather{}, err
	}
	return w, nil
}
