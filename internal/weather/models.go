package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Reading names as they appear in a snapshot.
const (
	TempIn         = "Temp in"
	TempOut        = "Temp out"
	BaroPressure   = "Baro pressure"
	BaroTrend      = "Baro trend"
	StationNumber  = "Station number"
	WindDirection  = "Wind direction"
	WindSpeed      = "Wind speed"
	Rain           = "Rain"
	RainRate       = "Rain rate"
	HumIn          = "Hum in"
	HumOut         = "Hum out"
	WindChill      = "Wind chill"
	RainGraph      = "Rain graph"
	SolarRadiation = "Solar radiation"
)

// Reading is a single named value. Identity is the name.
type Reading struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Snapshot is one complete ordered set of readings.
type Snapshot []Reading

// Get returns the value of the first reading called name.
func (s Snapshot) Get(name string) (string, bool) {
	for _, r := range s {
		if r.Name == name {
			return r.Value, true
		}
	}
	return "", false
}
