package dominance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
)

// DefaultWindowSize is the moving average window (in grid samples) applied
// to the interpolated speed curves before comparing drivers.
const DefaultWindowSize = 200

var (
	ErrMissingColor   = errors.New("no color for driver")
	ErrNotEnoughData  = errors.New("not enough telemetry data")
	ErrInvalidCircuit = errors.New("invalid circuit length")
)

type computer struct {
	windowSize    int
	circuitLength float64
	rotation      *float64
	colorMap      map[string]string
}

type Option func(c *computer)

func WithWindowSize(samples int) Option {
	return func(c *computer) {
		c.windowSize = samples
	}
}

// WithCircuitLength overrides the track length from the circuit metadata.
func WithCircuitLength(meters float64) Option {
	return func(c *computer) {
		c.circuitLength = meters
	}
}

// WithRotationDegrees overrides the map rotation from the circuit metadata.
func WithRotationDegrees(degrees float64) Option {
	return func(c *computer) {
		c.rotation = &degrees
	}
}

// WithColorMap assigns segment colors from the given map instead of the
// session's driver colors. Every requested driver must be present.
func WithColorMap(colors map[string]string) Option {
	return func(c *computer) {
		c.colorMap = colors
	}
}

type trace struct {
	x     []float64
	y     []float64
	speed []float64
}

// Compute determines which driver is fastest at each point of a uniform 1m
// distance grid around the circuit, based on the smoothed interpolated speed
// curves of the drivers' fastest laps. The returned points are the rotated
// point-wise average of all drivers' positions; segments connect consecutive
// points and each segment carries the color of the driver dominating its
// starting point. Ties go to the first driver in the given order.
func Compute(
	sess *session.Session, drivers []string, opts ...Option,
) (*model.DominanceResult, error) {
	circuit := sess.CircuitInfo()
	c := &computer{
		windowSize:    DefaultWindowSize,
		circuitLength: circuit.Length,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.circuitLength <= 0 {
		return nil, ErrInvalidCircuit
	}
	if len(drivers) == 0 {
		return nil, fmt.Errorf("%w: no drivers given", ErrNotEnoughData)
	}

	gridPoints := int(c.circuitLength) + 1
	grid := make([]float64, gridPoints)
	for i := range grid {
		grid[i] = float64(i)
	}

	colors, err := c.resolveColors(sess, drivers)
	if err != nil {
		return nil, err
	}

	traces := make([]trace, len(drivers))
	for i, driver := range drivers {
		points, err := sess.FastestLapTelemetry(driver)
		if err != nil {
			return nil, err
		}
		tr, err := interpolate(points, grid)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", driver, err)
		}
		tr.speed = movingAverage(tr.speed, c.windowSize)
		traces[i] = *tr
	}

	fastestAt := make([]string, gridPoints)
	colorAt := make([]string, gridPoints)
	for i := range grid {
		best := 0
		for d := 1; d < len(traces); d++ {
			if traces[d].speed[i] > traces[best].speed[i] {
				best = d
			}
		}
		fastestAt[i] = drivers[best]
		colorAt[i] = colors[drivers[best]]
	}

	rotation := circuit.Rotation
	if c.rotation != nil {
		rotation = *c.rotation
	}
	points := averagedOutline(traces, rotation)

	segments := make([][2][2]float64, gridPoints-1)
	segColors := make([]string, gridPoints-1)
	for i := 0; i < gridPoints-1; i++ {
		segments[i] = [2][2]float64{points[i], points[i+1]}
		segColors[i] = colorAt[i]
	}

	return &model.DominanceResult{
		Points:    points,
		Segments:  segments,
		FastestAt: fastestAt,
		Colors:    segColors,
	}, nil
}

func (c *computer) resolveColors(
	sess *session.Session, drivers []string,
) (map[string]string, error) {
	ret := make(map[string]string, len(drivers))
	for _, driver := range drivers {
		if c.colorMap != nil {
			color, ok := c.colorMap[driver]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingColor, driver)
			}
			ret[driver] = color
			continue
		}
		color, err := sess.DriverColor(driver)
		if err != nil {
			return nil, err
		}
		ret[driver] = color
	}
	return ret, nil
}

// interpolate maps the irregularly sampled telemetry onto the distance grid.
func interpolate(points []model.TelemetryPoint, grid []float64) (*trace, error) {
	dist := make([]float64, 0, len(points))
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	speed := make([]float64, 0, len(points))
	// interp requires strictly increasing x values
	for i := range points {
		if len(dist) > 0 && points[i].Distance <= dist[len(dist)-1] {
			continue
		}
		dist = append(dist, points[i].Distance)
		xs = append(xs, points[i].X)
		ys = append(ys, points[i].Y)
		speed = append(speed, points[i].Speed)
	}
	if len(dist) < 2 {
		return nil, ErrNotEnoughData
	}
	var px, py, pv interp.PiecewiseLinear
	if err := px.Fit(dist, xs); err != nil {
		return nil, err
	}
	if err := py.Fit(dist, ys); err != nil {
		return nil, err
	}
	if err := pv.Fit(dist, speed); err != nil {
		return nil, err
	}
	ret := &trace{
		x:     make([]float64, len(grid)),
		y:     make([]float64, len(grid)),
		speed: make([]float64, len(grid)),
	}
	for i, d := range grid {
		ret.x[i] = px.Predict(d)
		ret.y[i] = py.Predict(d)
		ret.speed[i] = pv.Predict(d)
	}
	return ret, nil
}

// movingAverage smooths vals with a centered window; the window shrinks at
// the array edges.
func movingAverage(vals []float64, window int) []float64 {
	if window <= 1 {
		return vals
	}
	half := window / 2
	prefix := make([]float64, len(vals)+1)
	for i := range vals {
		prefix[i+1] = prefix[i] + vals[i]
	}
	ret := make([]float64, len(vals))
	for i := range vals {
		lo := max(0, i-half)
		hi := min(len(vals), i+half+1)
		ret[i] = (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}
	return ret
}

// averagedOutline returns the point-wise average of all traces' positions,
// rotated by the given angle (degrees).
func averagedOutline(traces []trace, rotationDegrees float64) [][2]float64 {
	n := len(traces[0].x)
	theta := rotationDegrees * math.Pi / 180.0
	sin, cos := math.Sin(theta), math.Cos(theta)
	ret := make([][2]float64, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for t := range traces {
			sx += traces[t].x[i]
			sy += traces[t].y[i]
		}
		x := sx / float64(len(traces))
		y := sy / float64(len(traces))
		ret[i] = [2]float64{x*cos - y*sin, x*sin + y*cos}
	}
	return ret
}
