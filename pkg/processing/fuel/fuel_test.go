//nolint:lll,funlen // ok for tests
package fuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrector_Corrected(t *testing.T) {
	// 50 laps, 100kg -> 2kg burned per lap, 0.03s/kg/lap
	c, err := NewCorrector(50, WithFuelLoad(100), WithEffect(0.03))
	require.NoError(t, err)

	entries := []LapTimeEntry{
		{Lap: 1, Time: 90.0},
		{Lap: 25, Time: 90.0},
		{Lap: 50, Time: 90.0},
	}
	got := c.Corrected(entries)
	require.Len(t, got, len(entries))
	// lap 1 carries 49 laps of fuel: (50-1)*2*0.03 = 2.94
	assert.Equal(t, 87.06, got[0])
	assert.Equal(t, 88.5, got[1])
	// final lap gets no correction
	assert.Equal(t, 90.0, got[2])
}

func TestCorrector_OutputNotLargerThanInput(t *testing.T) {
	c, err := NewCorrector(50)
	require.NoError(t, err)
	entries := []LapTimeEntry{}
	for lap := 1; lap < 50; lap++ {
		entries = append(entries, LapTimeEntry{Lap: lap, Time: 95.0})
	}
	got := c.Corrected(entries)
	require.Len(t, got, len(entries))
	for i, v := range got {
		assert.LessOrEqual(t, v, entries[i].Time, "lap %d", entries[i].Lap)
	}
}

func TestCorrector_Rounding(t *testing.T) {
	// correction for lap 1: (3-1) * (10/3) * 0.03 = 0.2 (exact after rounding)
	c, err := NewCorrector(3, WithFuelLoad(10), WithEffect(0.03))
	require.NoError(t, err)
	got := c.Corrected([]LapTimeEntry{{Lap: 1, Time: 90.123456}})
	assert.Equal(t, 89.92, got[0])
}

func TestNewCorrector_InvalidTotalLaps(t *testing.T) {
	_, err := NewCorrector(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewCorrector(-5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCorrectedLapTimes(t *testing.T) {
	got, err := CorrectedLapTimes(
		[]LapTimeEntry{{Lap: 10, Time: 80.0}}, 10, 100, 0.03)
	require.NoError(t, err)
	assert.Equal(t, []float64{80.0}, got)
}
