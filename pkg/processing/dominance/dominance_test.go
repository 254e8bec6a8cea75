//nolint:funlen // ok for tests
package dominance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
	"github.com/mpapenbr/f1analysis-go/testsupport/basedata"
)

// crossingSession builds two drivers whose speed curves cross at half the
// circuit: AAA starts faster and fades, BBB the other way around.
func crossingSession(length float64) *session.Session {
	circuit := basedata.SampleCircuit()
	circuit.Length = length
	sess := session.New("test", 50, circuit)
	lap := []model.Lap{{Number: 1, LapTime: 90, Stint: 1, TrackStatus: "1"}}

	sess.AddDriver("AAA", "#ff0000", lap)
	sess.AddTelemetry("AAA", 1, []model.TelemetryPoint{
		{Distance: 0, Speed: 100, X: 0, Y: 0},
		{Distance: length, Speed: 100 - length, X: length, Y: 2 * length},
	})
	sess.AddDriver("BBB", "#0000ff", lap)
	sess.AddTelemetry("BBB", 1, []model.TelemetryPoint{
		{Distance: 0, Speed: 100 - length, X: 0, Y: 0},
		{Distance: length, Speed: 100, X: length, Y: 2 * length},
	})
	return sess
}

func TestCompute_LengthContracts(t *testing.T) {
	sess := crossingSession(10)
	got, err := Compute(sess, []string{"AAA", "BBB"}, WithWindowSize(1))
	require.NoError(t, err)

	assert.Len(t, got.Points, 11)
	assert.Len(t, got.Segments, 10)
	assert.Len(t, got.Colors, 10)
	assert.Len(t, got.FastestAt, 11)
	// segments connect consecutive points
	for i := range got.Segments {
		assert.Equal(t, got.Points[i], got.Segments[i][0])
		assert.Equal(t, got.Points[i+1], got.Segments[i][1])
	}
}

func TestCompute_CrossoverAndTieBreak(t *testing.T) {
	// AAA: 100-i, BBB: 90+i on the grid; equal at i=5
	sess := crossingSession(10)
	got, err := Compute(sess, []string{"AAA", "BBB"}, WithWindowSize(1))
	require.NoError(t, err)

	want := []string{
		"AAA", "AAA", "AAA", "AAA", "AAA",
		"AAA", // tie resolves to the first driver in order
		"BBB", "BBB", "BBB", "BBB", "BBB",
	}
	assert.Empty(t, cmp.Diff(want, got.FastestAt))
	assert.Equal(t, "#ff0000", got.Colors[0])
	assert.Equal(t, "#0000ff", got.Colors[9])
}

func TestCompute_ZeroRotationRoundTrip(t *testing.T) {
	sess := crossingSession(10)
	got, err := Compute(sess, []string{"AAA", "BBB"},
		WithWindowSize(1), WithRotationDegrees(0))
	require.NoError(t, err)

	// both drivers share the geometry x=d, y=2d, so the averaged outline is
	// exactly that line
	for i, p := range got.Points {
		assert.InDelta(t, float64(i), p[0], 1e-9)
		assert.InDelta(t, 2*float64(i), p[1], 1e-9)
	}
}

func TestCompute_Smoothing(t *testing.T) {
	circuit := basedata.SampleCircuit()
	circuit.Length = 4
	sess := session.New("test", 50, circuit)
	lap := []model.Lap{{Number: 1, LapTime: 90, Stint: 1, TrackStatus: "1"}}
	sess.AddDriver("AAA", "#ff0000", lap)
	// one spike at d=2
	sess.AddTelemetry("AAA", 1, []model.TelemetryPoint{
		{Distance: 0, Speed: 100},
		{Distance: 1, Speed: 100},
		{Distance: 2, Speed: 200},
		{Distance: 3, Speed: 100},
		{Distance: 4, Speed: 100},
	})
	sess.AddDriver("BBB", "#0000ff", lap)
	// constant, slightly above the smoothed spike average
	sess.AddTelemetry("BBB", 1, []model.TelemetryPoint{
		{Distance: 0, Speed: 150},
		{Distance: 4, Speed: 150},
	})

	// window 5 keeps the smoothed AAA curve below 150 everywhere; without
	// smoothing AAA would win at the spike
	got, err := Compute(sess, []string{"AAA", "BBB"}, WithWindowSize(5))
	require.NoError(t, err)
	assert.Equal(t, "BBB", got.FastestAt[2])
}

func TestCompute_ColorMap(t *testing.T) {
	sess := crossingSession(10)
	got, err := Compute(sess, []string{"AAA", "BBB"},
		WithWindowSize(1),
		WithColorMap(map[string]string{"AAA": "red", "BBB": "blue"}))
	require.NoError(t, err)
	assert.Equal(t, "red", got.Colors[0])
	assert.Equal(t, "blue", got.Colors[9])
}

func TestCompute_MissingColor(t *testing.T) {
	sess := crossingSession(10)
	_, err := Compute(sess, []string{"AAA", "BBB"},
		WithColorMap(map[string]string{"AAA": "red"}))
	assert.ErrorIs(t, err, ErrMissingColor)
}

func TestCompute_UnknownDriver(t *testing.T) {
	sess := crossingSession(10)
	_, err := Compute(sess, []string{"AAA", "XXX"})
	assert.ErrorIs(t, err, session.ErrUnknownDriver)
}

func TestCompute_InvalidCircuitLength(t *testing.T) {
	circuit := basedata.SampleCircuit()
	circuit.Length = 0
	sess := session.New("test", 50, circuit)
	_, err := Compute(sess, []string{"AAA"})
	assert.ErrorIs(t, err, ErrInvalidCircuit)
}
