package owm

// CurrentResponse is the subset of the OpenWeatherMap current weather JSON
// response used by the SDK. Unknown fields are ignored.
type CurrentResponse struct {
	Weather    []ConditionData `json:"weather"`
	Main       MainData        `json:"main"`
	Wind       WindData        `json:"wind"`
	Visibility int             `json:"visibility"`
	Dt         int64           `json:"dt"`
	Sys        SysData         `json:"sys"`
	Timezone   int             `json:"timezone"`
	Name       string          `json:"name"`
}

// ConditionData is one entry of the weather condition list.
type ConditionData struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// MainData carries temperatures in kelvin.
type MainData struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
}

// WindData carries wind speed in meters per second and an optional direction
// in degrees. Deg is a pointer because the provider omits it for variable
// wind.
type WindData struct {
	Speed float64 `json:"speed"`
	Deg   *int    `json:"deg"`
}

// SysData carries sunrise and sunset as unix timestamps.
type SysData struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}
