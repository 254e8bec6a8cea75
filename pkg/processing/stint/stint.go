package stint

import (
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/mpapenbr/f1analysis-go/log"
	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/processing/fuel"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
)

const (
	// DefaultMinStintLaps is the minimum number of qualifying laps a stint
	// needs before it is modeled.
	DefaultMinStintLaps = 10
	// DefaultQuicklapThreshold classifies a lap as "quick" when its time is
	// within this factor of the driver's personal best.
	DefaultQuicklapThreshold = 1.07
)

type Modeler struct {
	minStintLaps      int
	quicklapThreshold float64
	fuelLoadKg        float64
	fuelEffect        float64
	l                 *log.Logger
}

type Option func(m *Modeler)

func WithMinStintLaps(n int) Option {
	return func(m *Modeler) {
		m.minStintLaps = n
	}
}

func WithQuicklapThreshold(threshold float64) Option {
	return func(m *Modeler) {
		m.quicklapThreshold = threshold
	}
}

func WithFuelLoad(kg float64) Option {
	return func(m *Modeler) {
		m.fuelLoadKg = kg
	}
}

func WithFuelEffect(secPerKgLap float64) Option {
	return func(m *Modeler) {
		m.fuelEffect = secPerKgLap
	}
}

func NewModeler(opts ...Option) *Modeler {
	m := &Modeler{
		minStintLaps:      DefaultMinStintLaps,
		quicklapThreshold: DefaultQuicklapThreshold,
		fuelLoadKg:        fuel.DefaultFuelLoadKg,
		fuelEffect:        fuel.DefaultEffectSecPerKgLap,
		l:                 log.Default().Named("stint"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FitModels fits a tire degradation model per stint for each driver:
// an OLS regression of fuel corrected lap time on tire age, grouped by
// compound. Only quick laps under green flag count; pit in/out laps are
// excluded before fitting. Stints with fewer than the minimum qualifying
// laps and stints whose fit is degenerate are skipped.
//
// Every requested driver is present in the result; drivers without a
// qualifying stint map to an empty (non-nil) slice.
func FitModels(
	sess *session.Session, drivers []string, opts ...Option,
) (map[string][]model.StintModel, error) {
	m := NewModeler(opts...)
	corrector, err := fuel.NewCorrector(sess.TotalLaps(),
		fuel.WithFuelLoad(m.fuelLoadKg), fuel.WithEffect(m.fuelEffect))
	if err != nil {
		return nil, err
	}
	ret := make(map[string][]model.StintModel, len(drivers))
	for _, driver := range drivers {
		laps, err := sess.Laps(driver)
		if err != nil {
			return nil, err
		}
		ret[driver] = m.fitDriver(driver, laps, corrector)
	}
	return ret, nil
}

func (m *Modeler) fitDriver(
	driver string, laps []model.Lap, corrector *fuel.Corrector,
) []model.StintModel {
	qualifying := lo.Filter(Quicklaps(laps, m.quicklapThreshold),
		func(l model.Lap, _ int) bool { return l.GreenFlag() })
	byStint := lo.GroupBy(qualifying, func(l model.Lap) int { return l.Stint })
	stints := lo.Keys(byStint)
	slices.Sort(stints)

	ret := make([]model.StintModel, 0, len(stints))
	for _, stintNo := range stints {
		stintLaps := byStint[stintNo]
		if len(stintLaps) < m.minStintLaps {
			continue
		}
		fitted, ok := m.fitStint(driver, stintNo, stintLaps, corrector)
		if ok {
			ret = append(ret, fitted)
		}
	}
	return ret
}

//nolint:whitespace // readability
func (m *Modeler) fitStint(
	driver string, stintNo int, stintLaps []model.Lap, corrector *fuel.Corrector,
) (model.StintModel, bool) {
	racing := lo.Filter(stintLaps, func(l model.Lap, _ int) bool {
		return !l.InLap() && !l.OutLap()
	})
	if len(racing) < 2 {
		m.l.Warn("stint skipped, not enough racing laps",
			log.String("driver", driver), log.Int("stint", stintNo))
		return model.StintModel{}, false
	}
	entries := lo.Map(racing, func(l model.Lap, _ int) fuel.LapTimeEntry {
		return fuel.LapTimeEntry{Lap: l.Number, Time: l.LapTime}
	})
	tireAge := lo.Map(racing, func(l model.Lap, _ int) float64 { return l.TireLife })
	corrected := corrector.Corrected(entries)

	if len(lo.Uniq(tireAge)) < 2 {
		m.l.Warn("stint skipped, degenerate tire age data",
			log.String("driver", driver), log.Int("stint", stintNo))
		return model.StintModel{}, false
	}
	intercept, slope := stat.LinearRegression(tireAge, corrected, nil, false)
	if !finite(intercept) || !finite(slope) {
		m.l.Warn("stint skipped, regression failed",
			log.String("driver", driver), log.Int("stint", stintNo))
		return model.StintModel{}, false
	}
	return model.StintModel{
		Stint:          stintNo,
		Compound:       racing[0].Compound,
		Intercept:      intercept,
		SlopeSecPerLap: slope,
		R2:             stat.RSquared(tireAge, corrected, nil, intercept, slope),
		Laps:           len(racing),
	}, true
}

// Quicklaps keeps the timed laps within threshold x the personal best,
// mirroring the upstream library's quicklap classification.
func Quicklaps(laps []model.Lap, threshold float64) []model.Lap {
	timed := lo.Filter(laps, func(l model.Lap, _ int) bool { return l.HasTime() })
	if len(timed) == 0 {
		return nil
	}
	best := lo.MinBy(timed, func(a, b model.Lap) bool {
		return a.LapTime < b.LapTime
	}).LapTime
	return lo.Filter(timed, func(l model.Lap, _ int) bool {
		return l.LapTime <= threshold*best
	})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
