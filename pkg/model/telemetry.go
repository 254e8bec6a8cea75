package model

// TelemetryPoint is one sample of a telemetry trace, ordered by time/distance.
// Time is in seconds, Distance in meters, Speed in km/h. X/Y are the track
// coordinates of the car.
type TelemetryPoint struct {
	Time     float64 `json:"time"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}
