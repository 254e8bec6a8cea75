// Package basedata provides synthetic session data for tests.
package basedata

import (
	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
)

const SampleTotalLaps = 50

func SampleCircuit() model.CircuitInfo {
	return model.CircuitInfo{
		Name:     "testcircuit",
		Length:   1000,
		Rotation: 0,
		Corners: []model.Corner{
			{Number: 1, Distance: 150},
			{Number: 2, Distance: 400},
			{Number: 3, Distance: 700},
		},
	}
}

// StintLaps builds consecutive laps of one stint. Lap numbers start at
// firstLap, tire life starts at 1.
func StintLaps(
	stint, firstLap int, compound model.TireCompound, times []float64,
) []model.Lap {
	ret := make([]model.Lap, len(times))
	for i, t := range times {
		ret[i] = model.Lap{
			Number:      firstLap + i,
			LapTime:     t,
			Stint:       stint,
			Compound:    compound,
			TireLife:    float64(i + 1),
			TrackStatus: "1",
		}
	}
	return ret
}

// RampTelemetry builds a telemetry trace with linearly increasing distance
// and speed.
func RampTelemetry(samples int, dt, dDist, startSpeed, dSpeed float64) []model.TelemetryPoint {
	ret := make([]model.TelemetryPoint, samples)
	for i := range ret {
		ret[i] = model.TelemetryPoint{
			Time:     float64(i) * dt,
			Distance: float64(i) * dDist,
			Speed:    startSpeed + float64(i)*dSpeed,
			X:        float64(i) * dDist,
			Y:        float64(i) * dDist * 2,
		}
	}
	return ret
}

// SampleSession returns a two driver session with one stint each and lap 1
// telemetry.
func SampleSession() *session.Session {
	sess := session.New("testsession", SampleTotalLaps, SampleCircuit())
	sess.AddDriver("AAA", "#ff0000", StintLaps(1, 1, model.CompoundSoft,
		[]float64{92.1, 91.8, 91.9, 92.0, 91.7, 91.9, 92.2, 92.0, 91.8, 91.9}))
	sess.AddDriver("BBB", "#0000ff", StintLaps(1, 1, model.CompoundMedium,
		[]float64{92.5, 92.3, 92.6, 92.4, 92.2, 92.5, 92.7, 92.3, 92.4, 92.6}))
	sess.AddTelemetry("AAA", 1, RampTelemetry(11, 1, 100, 0, 25))
	sess.AddTelemetry("BBB", 1, RampTelemetry(11, 1, 100, 0, 20))
	return sess
}
