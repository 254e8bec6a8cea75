package accel

import (
	"errors"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1analysis-go/log"
	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
)

var ErrTargetUnreachable = errors.New("target speed not reached")

const (
	lowTarget  = 100.0 // km/h
	highTarget = 200.0 // km/h
)

// TimeToSpeed estimates when the telemetry trace first reaches the target
// speed (km/h) by linear interpolation between the first sample exceeding the
// target and its predecessor. The result is rounded to 2 decimals.
func TimeToSpeed(points []model.TelemetryPoint, target float64) (float64, error) {
	idx := slices.IndexFunc(points, func(p model.TelemetryPoint) bool {
		return p.Speed > target
	})
	if idx == -1 {
		return 0, ErrTargetUnreachable
	}
	if idx == 0 {
		// already above target at the first sample
		return round2(points[0].Time), nil
	}
	prev := points[idx-1]
	cur := points[idx]
	frac := (target - prev.Speed) / (cur.Speed - prev.Speed)
	return round2(prev.Time + frac*(cur.Time-prev.Time)), nil
}

// ComputeTable computes the 0-100 and 100-200 km/h times per driver from the
// lap 1 telemetry. A driver whose telemetry never reaches a target (or who
// has no lap 1 telemetry) gets NaN for both values; the batch continues.
// An unknown driver is a caller error and aborts the computation.
func ComputeTable(sess *session.Session, drivers []string) ([]model.AccelRow, error) {
	l := log.Default().Named("accel")
	ret := make([]model.AccelRow, 0, len(drivers))
	for _, driver := range drivers {
		points, err := sess.LapTelemetry(driver, 1)
		if err != nil {
			if errors.Is(err, session.ErrUnknownDriver) {
				return nil, err
			}
			l.Warn("no lap 1 telemetry", log.String("driver", driver))
			ret = append(ret, naRow(driver))
			continue
		}
		row, err := driverRow(driver, points)
		if err != nil {
			l.Warn("target speed not reached",
				log.String("driver", driver), log.ErrorField(err))
			ret = append(ret, naRow(driver))
			continue
		}
		ret = append(ret, row)
	}
	return ret, nil
}

func driverRow(driver string, points []model.TelemetryPoint) (model.AccelRow, error) {
	toLow, err := TimeToSpeed(points, lowTarget)
	if err != nil {
		return model.AccelRow{}, err
	}
	toHigh, err := TimeToSpeed(points, highTarget)
	if err != nil {
		return model.AccelRow{}, err
	}
	return model.AccelRow{
		Driver:              driver,
		ZeroToHundred:       toLow,
		HundredToTwoHundred: round2(toHigh - toLow),
	}, nil
}

func naRow(driver string) model.AccelRow {
	return model.AccelRow{
		Driver:              driver,
		ZeroToHundred:       math.NaN(),
		HundredToTwoHundred: math.NaN(),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
