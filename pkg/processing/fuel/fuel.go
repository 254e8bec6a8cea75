package fuel

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// DefaultFuelLoadKg is the maximum race fuel allowance.
	DefaultFuelLoadKg = 110.0
	// DefaultEffectSecPerKgLap is the commonly used laptime cost per kg of
	// fuel carried over one lap.
	DefaultEffectSecPerKgLap = 0.03
)

var ErrInvalidInput = errors.New("invalid input")

// LapTimeEntry is one (lap number, lap time) pair of a stint.
type LapTimeEntry struct {
	Lap  int
	Time float64 // seconds
}

// Corrector removes the fuel burn-off effect from lap times. It assumes a
// constant burn rate over the race and a constant laptime cost per kg.
type Corrector struct {
	totalLaps         int
	fuelLoadKg        float64
	effectSecPerKgLap float64
}

type Option func(c *Corrector)

func WithFuelLoad(kg float64) Option {
	return func(c *Corrector) {
		c.fuelLoadKg = kg
	}
}

func WithEffect(secPerKgLap float64) Option {
	return func(c *Corrector) {
		c.effectSecPerKgLap = secPerKgLap
	}
}

func NewCorrector(totalLaps int, opts ...Option) (*Corrector, error) {
	if totalLaps <= 0 {
		return nil, errors.Join(ErrInvalidInput,
			errors.New("total laps must be positive"))
	}
	c := &Corrector{
		totalLaps:         totalLaps,
		fuelLoadKg:        DefaultFuelLoadKg,
		effectSecPerKgLap: DefaultEffectSecPerKgLap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Corrected returns the fuel corrected lap times in entry order, rounded to
// 2 decimals. Laps early in the race carry more fuel, so they get the larger
// correction subtracted.
func (c *Corrector) Corrected(entries []LapTimeEntry) []float64 {
	burnPerLap := c.fuelLoadKg / float64(c.totalLaps)
	ret := make([]float64, len(entries))
	for i, e := range entries {
		correction := float64(c.totalLaps-e.Lap) * burnPerLap * c.effectSecPerKgLap
		ret[i] = round2(e.Time - correction)
	}
	return ret
}

// CorrectedLapTimes is the one-shot variant of Corrector.
func CorrectedLapTimes(
	entries []LapTimeEntry, totalLaps int, fuelLoadKg, effectSecPerKgLap float64,
) ([]float64, error) {
	c, err := NewCorrector(totalLaps,
		WithFuelLoad(fuelLoadKg), WithEffect(effectSecPerKgLap))
	if err != nil {
		return nil, err
	}
	return c.Corrected(entries), nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
