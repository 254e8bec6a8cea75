package corner

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
)

// DefaultWindowMeters is the half-width of the distance window around a
// corner in which telemetry samples count as cornering samples.
const DefaultWindowMeters = 10.0

var ErrUnknownCorner = errors.New("unknown corner number")

type comparator struct {
	windowMeters float64
}

type Option func(c *comparator)

func WithWindow(meters float64) Option {
	return func(c *comparator) {
		c.windowMeters = meters
	}
}

// Compare computes the top speed and the per-category average cornering
// speed of each driver over the fastest lap. A category groups corner
// numbers (e.g. by speed range); its value is the mean over the pooled
// samples of all its corners, rounded to whole km/h. A category without any
// sample in its windows is nil in the result. Corner numbers missing from
// the circuit metadata are a caller error.
//
//nolint:whitespace // readability
func Compare(
	sess *session.Session,
	drivers []string,
	categories map[string][]int,
	opts ...Option,
) ([]model.CornerRow, error) {
	c := &comparator{windowMeters: DefaultWindowMeters}
	for _, opt := range opts {
		opt(c)
	}
	circuit := sess.CircuitInfo()
	names := lo.Keys(categories)
	slices.Sort(names)

	ret := make([]model.CornerRow, 0, len(drivers))
	for _, driver := range drivers {
		points, err := sess.FastestLapTelemetry(driver)
		if err != nil {
			return nil, err
		}
		row := model.CornerRow{
			Driver:     driver,
			TopSpeed:   round0(topSpeed(points)),
			Categories: make(map[string]*float64, len(names)),
		}
		for _, name := range names {
			avg, err := c.categoryAverage(circuit, points, categories[name])
			if err != nil {
				return nil, err
			}
			row.Categories[name] = avg
		}
		ret = append(ret, row)
	}
	return ret, nil
}

//nolint:whitespace // readability
func (c *comparator) categoryAverage(
	circuit model.CircuitInfo,
	points []model.TelemetryPoint,
	corners []int,
) (*float64, error) {
	samples := make([]float64, 0)
	for _, number := range corners {
		dist, ok := circuit.CornerDistance(number)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCorner, number)
		}
		for i := range points {
			if math.Abs(points[i].Distance-dist) <= c.windowMeters {
				samples = append(samples, points[i].Speed)
			}
		}
	}
	if len(samples) == 0 {
		return nil, nil
	}
	avg := round0(stat.Mean(samples, nil))
	return &avg, nil
}

func topSpeed(points []model.TelemetryPoint) float64 {
	ret := 0.0
	for i := range points {
		if points[i].Speed > ret {
			ret = points[i].Speed
		}
	}
	return ret
}

func round0(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}
