package model

type Corner struct {
	Number   int     `json:"number"`
	Distance float64 `json:"distance"` // distance along track in meters
}

//nolint:tagliatelle //matches the session export format
type CircuitInfo struct {
	Name     string   `json:"name"`
	Length   float64  `json:"length"`   // track length in meters
	Rotation float64  `json:"rotation"` // map rotation in degrees
	Corners  []Corner `json:"corners"`
}

// CornerDistance returns the track distance of the given corner number.
func (c CircuitInfo) CornerDistance(number int) (float64, bool) {
	for i := range c.Corners {
		if c.Corners[i].Number == number {
			return c.Corners[i].Distance, true
		}
	}
	return 0, false
}
