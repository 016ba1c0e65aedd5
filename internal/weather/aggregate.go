package weather

import (
	"math"
	"strings"

	"github.com/i474232898/weather-station/internal/common"
)

// AggregateReadings combines the readings of every sensor into a single Snapshot.
// The station number comes first, sensor readings keep their order, and the
// derived wind chill and rain graph readings are appended when their inputs exist.
func AggregateReadings(station string, readings []Reading, rainHistory []float64) Snapshot {
	snapshot := make(Snapshot, 0, len(readings)+3)
	if station != "" {
		snapshot = append(snapshot, Reading{Name: StationNumber, Value: station})
	}
	snapshot = append(snapshot, readings...)

	temp, okTemp := lookupValue(readings, TempOut)
	speed, okSpeed := lookupValue(readings, WindSpeed)
	if okTemp && okSpeed {
		snapshot = append(snapshot, Reading{
			Name:  WindChill,
			Value: common.FormatValue(WindChillF(temp, speed)),
		})
	}

	if len(rainHistory) > 0 {
		points := make([]string, 0, len(rainHistory))
		for _, v := range rainHistory {
			points = append(points, common.FormatValue(v))
		}
		snapshot = append(snapshot, Reading{Name: RainGraph, Value: strings.Join(points, ",")})
	}

	return snapshot
}

// WindChillF returns the NWS wind chill for a temperature in °F and a wind
// speed in mph. Outside the formula's domain the air temperature is returned.
func WindChillF(tempF, windMph float64) float64 {
	if tempF > 50 || windMph < 3 {
		return common.Round2(tempF)
	}
	v := math.Pow(windMph, 0.16)
	return common.Round2(35.74 + 0.6215*tempF - 35.75*v + 0.4275*tempF*v)
}

func lookupValue(readings []Reading, name string) (float64, bool) {
	for _, r := range readings {
		if r.Name == name {
			return common.ParseValue(r.Value)
		}
	}
	return 0, false
}
