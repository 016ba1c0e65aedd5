package weather

import "github.com/i474232898/weather-station/internal/common"

// Rain rate (in/hr) at or above which rain is reported as a storm.
const stormRainRate = 2.0

// Classify maps outdoor temperature (°F), humidity (%) and rain rate (in/hr)
// onto a Condition. Empty or unparsable inputs are treated as missing.
func Classify(temp, humidity, rainRate string) Condition {
	t, okT := common.ParseValue(temp)
	h, okH := common.ParseValue(humidity)
	r, okR := common.ParseValue(rainRate)

	switch {
	case !okT && !okH && !okR:
		return ConditionUnknown
	case okR && r >= stormRainRate:
		return ConditionStorm
	case okR && r > 0 && okT && t <= 32:
		return ConditionSnow
	case okR && r > 0:
		return ConditionRain
	case okH && h >= 90:
		return ConditionMist
	case okH && h >= 70:
		return ConditionCloudy
	default:
		return ConditionClear
	}
}
