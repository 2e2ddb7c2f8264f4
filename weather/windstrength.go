package weather

// WindStrength is a Beaufort scale classification of wind speed. The zero
// value is Calm.
type WindStrength int

const (
	Calm WindStrength = iota
	LightAir
	LightBreeze
	GentleBreeze
	ModerateBreeze
	FreshBreeze
	StrongBreeze
	NearGale
	Gale
	StrongGale
	Storm
	ViolentStorm
	Hurricane
)

// Upper speed bound of each Beaufort number, in meters per second. Speeds
// above the last bound are Hurricane.
var beaufortMaxSpeeds = []float64{
	0.2,  // Calm
	1.5,  // LightAir
	3.3,  // LightBreeze
	5.4,  // GentleBreeze
	7.9,  // ModerateBreeze
	10.7, // FreshBreeze
	13.8, // StrongBreeze
	17.1, // NearGale
	20.7, // Gale
	24.4, // StrongGale
	28.4, // Storm
	32.6, // ViolentStorm
}

var windStrengthNames = []string{
	"calm",
	"light air",
	"light breeze",
	"gentle breeze",
	"moderate breeze",
	"fresh breeze",
	"strong breeze",
	"near gale",
	"gale",
	"strong gale",
	"storm",
	"violent storm",
	"hurricane",
}

// WindStrengthFromSpeed classifies a wind speed, in meters per second, on
// the Beaufort scale. Negative or non-finite speeds are rejected by the Wind
// constructors, so speed is assumed to be valid here and anything beyond the
// violent storm bound classifies as Hurricane.
func WindStrengthFromSpeed(speed float64) WindStrength {
	for i, max := range beaufortMaxSpeeds {
		if speed <= max {
			return WindStrength(i)
		}
	}
	return Hurricane
}

// Beaufort returns the Beaufort number, 0 through 12.
func (s WindStrength) Beaufort() int {
	return int(s)
}

func (s WindStrength) String() string {
	if s < Calm || s > Hurricane {
		return "unknown"
	}
	return windStrengthNames[s]
}
