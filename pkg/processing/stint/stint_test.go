//nolint:funlen,lll // ok for tests
package stint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/processing/fuel"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
	"github.com/mpapenbr/f1analysis-go/testsupport/basedata"
)

const (
	testTotalLaps = 20
	testFuelLoad  = 100.0 // -> 5kg burned per lap
	testEffect    = 0.03
)

// degradationLaps builds a 10 lap stint whose fuel corrected lap time is
// exactly 80 + 0.1 * tireAge: raw = 82.4 - 0.05 * tireAge
// (correction per lap is (20-lapNo) * 5 * 0.03 with lapNo = tireAge + 4).
func degradationLaps() []model.Lap {
	times := make([]float64, 10)
	for i := range times {
		age := float64(i + 1)
		times[i] = 82.4 - 0.05*age
	}
	return basedata.StintLaps(1, 5, model.CompoundSoft, times)
}

func newTestSession() *session.Session {
	return session.New("test", testTotalLaps, basedata.SampleCircuit())
}

func fitOpts() []Option {
	return []Option{WithFuelLoad(testFuelLoad), WithFuelEffect(testEffect)}
}

func TestFitModels_RecoversLinearDegradation(t *testing.T) {
	sess := newTestSession()
	sess.AddDriver("DEG", "#ff0000", degradationLaps())

	models, err := FitModels(sess, []string{"DEG"}, fitOpts()...)
	require.NoError(t, err)
	require.Len(t, models["DEG"], 1)

	m := models["DEG"][0]
	assert.Equal(t, 1, m.Stint)
	assert.Equal(t, model.CompoundSoft, m.Compound)
	assert.Equal(t, 10, m.Laps)
	assert.InDelta(t, 80.0, m.Intercept, 1e-9)
	assert.InDelta(t, 0.1, m.SlopeSecPerLap, 1e-9)
	assert.InDelta(t, 1.0, m.R2, 1e-9)
}

func TestFitModels_MinStintLaps(t *testing.T) {
	sess := newTestSession()
	// 9 qualifying laps: excluded
	sess.AddDriver("NIN", "#ff0000", degradationLaps()[:9])
	// 10 qualifying laps: included
	sess.AddDriver("TEN", "#00ff00", degradationLaps())

	models, err := FitModels(sess, []string{"NIN", "TEN"}, fitOpts()...)
	require.NoError(t, err)

	// both drivers are present; no qualifying stint means empty non-nil slice
	require.Contains(t, models, "NIN")
	assert.NotNil(t, models["NIN"])
	assert.Empty(t, models["NIN"])
	assert.Len(t, models["TEN"], 1)
}

func TestFitModels_ExcludesPitLaps(t *testing.T) {
	pitTime := 1234.5
	times := make([]float64, 12)
	for i := range times {
		times[i] = 90.0 + 0.1*float64(i)
	}
	laps := basedata.StintLaps(1, 1, model.CompoundHard, times)
	laps[0].PitOutTime = &pitTime
	laps[len(laps)-1].PitInTime = &pitTime

	sess := newTestSession()
	sess.AddDriver("PIT", "#ff0000", laps)

	models, err := FitModels(sess, []string{"PIT"}, fitOpts()...)
	require.NoError(t, err)
	require.Len(t, models["PIT"], 1)
	// out-lap and in-lap are dropped before fitting
	assert.Equal(t, 10, models["PIT"][0].Laps)
}

func TestFitModels_DropsNonGreenLaps(t *testing.T) {
	times := make([]float64, 12)
	for i := range times {
		times[i] = 90.0 + 0.1*float64(i)
	}
	laps := basedata.StintLaps(1, 1, model.CompoundMedium, times)
	laps[3].TrackStatus = "2"  // yellow
	laps[7].TrackStatus = "14" // safety car phase

	sess := newTestSession()
	sess.AddDriver("YEL", "#ff0000", laps)

	models, err := FitModels(sess, []string{"YEL"}, fitOpts()...)
	require.NoError(t, err)
	require.Len(t, models["YEL"], 1)
	assert.Equal(t, 10, models["YEL"][0].Laps)
}

func TestFitModels_SkipsDegenerateStint(t *testing.T) {
	times := make([]float64, 10)
	for i := range times {
		times[i] = 90.0
	}
	laps := basedata.StintLaps(1, 1, model.CompoundSoft, times)
	for i := range laps {
		laps[i].TireLife = 5 // no tire age variation, nothing to fit
	}
	sess := newTestSession()
	sess.AddDriver("FLT", "#ff0000", laps)

	models, err := FitModels(sess, []string{"FLT"}, fitOpts()...)
	require.NoError(t, err)
	assert.Empty(t, models["FLT"])
}

func TestFitModels_UnknownDriver(t *testing.T) {
	sess := newTestSession()
	_, err := FitModels(sess, []string{"XXX"}, fitOpts()...)
	assert.ErrorIs(t, err, session.ErrUnknownDriver)
}

func TestFitModels_InvalidTotalLaps(t *testing.T) {
	sess := session.New("test", 0, basedata.SampleCircuit())
	sess.AddDriver("AAA", "#ff0000", degradationLaps())
	_, err := FitModels(sess, []string{"AAA"}, fitOpts()...)
	assert.ErrorIs(t, err, fuel.ErrInvalidInput)
}

func TestQuicklaps(t *testing.T) {
	laps := []model.Lap{
		{Number: 1, LapTime: 90.0},
		{Number: 2, LapTime: 96.2}, // just under 90 * 1.07 = 96.3
		{Number: 3, LapTime: 96.4}, // above the threshold
		{Number: 4, LapTime: 91.0, Deleted: true},
		{Number: 5, LapTime: 0},
	}
	got := Quicklaps(laps, DefaultQuicklapThreshold)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Number)
	assert.Equal(t, 2, got[1].Number)
}
