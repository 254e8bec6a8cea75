package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"

	"github.com/mpapenbr/f1analysis-go/pkg/model"
)

var (
	ErrUnknownDriver = errors.New("unknown driver")
	ErrNoTelemetry   = errors.New("no telemetry data")
)

// Session provides read-only access to the lap tables, telemetry traces and
// circuit metadata of one session export. It is the in-process boundary to
// the upstream telemetry library: an export file contains the already
// resolved session data, nothing is loaded lazily.
type Session struct {
	name      string
	totalLaps int
	circuit   model.CircuitInfo
	order     []string
	byDriver  map[string]*driverData
}

type driverData struct {
	Abbrev    string                 `json:"abbrev"`
	Color     string                 `json:"color"`
	Laps      []model.Lap            `json:"laps"`
	Telemetry []lapTelemetry         `json:"telemetry"`
	byLap     map[int][]model.TelemetryPoint
}

type lapTelemetry struct {
	Lap    int                    `json:"lap"`
	Points []model.TelemetryPoint `json:"points"`
}

//nolint:tagliatelle //matches the session export format
type fileData struct {
	Name      string            `json:"name"`
	TotalLaps int               `json:"totalLaps"`
	Circuit   model.CircuitInfo `json:"circuit"`
	Drivers   []driverData      `json:"drivers"`
}

// LoadFile reads a session export file (JSON).
func LoadFile(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session export: %w", err)
	}
	var data fileData
	if err := oj.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse session export: %w", err)
	}
	ret := New(data.Name, data.TotalLaps, data.Circuit)
	for i := range data.Drivers {
		d := data.Drivers[i]
		ret.AddDriver(d.Abbrev, d.Color, d.Laps)
		for _, t := range d.Telemetry {
			ret.AddTelemetry(d.Abbrev, t.Lap, t.Points)
		}
	}
	return ret, nil
}

// New creates an empty session. Used by LoadFile and by tests that build
// synthetic sessions.
func New(name string, totalLaps int, circuit model.CircuitInfo) *Session {
	return &Session{
		name:      name,
		totalLaps: totalLaps,
		circuit:   circuit,
		order:     make([]string, 0),
		byDriver:  make(map[string]*driverData),
	}
}

func (s *Session) AddDriver(abbrev, color string, laps []model.Lap) {
	if _, ok := s.byDriver[abbrev]; !ok {
		s.order = append(s.order, abbrev)
	}
	s.byDriver[abbrev] = &driverData{
		Abbrev: abbrev,
		Color:  color,
		Laps:   laps,
		byLap:  make(map[int][]model.TelemetryPoint),
	}
}

func (s *Session) AddTelemetry(abbrev string, lap int, points []model.TelemetryPoint) {
	if d, ok := s.byDriver[abbrev]; ok {
		d.byLap[lap] = points
	}
}

func (s *Session) Name() string { return s.name }

// TotalLaps returns the scheduled race distance in laps.
func (s *Session) TotalLaps() int { return s.totalLaps }

func (s *Session) CircuitInfo() model.CircuitInfo { return s.circuit }

// Drivers returns the driver abbreviations in export order.
func (s *Session) Drivers() []string {
	return append([]string{}, s.order...)
}

// Laps returns all laps of the given driver.
func (s *Session) Laps(driver string) ([]model.Lap, error) {
	d, ok := s.byDriver[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	return d.Laps, nil
}

// DriverColor returns the hex color assigned to the driver.
func (s *Session) DriverColor(driver string) (string, error) {
	d, ok := s.byDriver[driver]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	return d.Color, nil
}

// LapTelemetry returns the telemetry trace of one lap.
func (s *Session) LapTelemetry(driver string, lap int) ([]model.TelemetryPoint, error) {
	d, ok := s.byDriver[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	points, ok := d.byLap[lap]
	if !ok {
		return nil, fmt.Errorf("%w: %s lap %d", ErrNoTelemetry, driver, lap)
	}
	return points, nil
}

// LapRangeTelemetry returns the concatenated telemetry of the laps
// [from,to] (both inclusive).
func (s *Session) LapRangeTelemetry(driver string, from, to int) (
	[]model.TelemetryPoint, error,
) {
	ret := make([]model.TelemetryPoint, 0)
	for lap := from; lap <= to; lap++ {
		points, err := s.LapTelemetry(driver, lap)
		if err != nil {
			if errors.Is(err, ErrNoTelemetry) {
				continue
			}
			return nil, err
		}
		ret = append(ret, points...)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("%w: %s laps %d-%d", ErrNoTelemetry, driver, from, to)
	}
	return ret, nil
}

// FastestLapTelemetry returns the telemetry trace of the driver's fastest
// timed lap.
func (s *Session) FastestLapTelemetry(driver string) ([]model.TelemetryPoint, error) {
	d, ok := s.byDriver[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	timed := lo.Filter(d.Laps, func(l model.Lap, _ int) bool { return l.HasTime() })
	if len(timed) == 0 {
		return nil, fmt.Errorf("%w: %s has no timed lap", ErrNoTelemetry, driver)
	}
	fastest := lo.MinBy(timed, func(a, b model.Lap) bool { return a.LapTime < b.LapTime })
	return s.LapTelemetry(driver, fastest.Number)
}
