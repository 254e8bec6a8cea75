package model

type TireCompound string

const (
	CompoundSoft         TireCompound = "SOFT"
	CompoundMedium       TireCompound = "MEDIUM"
	CompoundHard         TireCompound = "HARD"
	CompoundIntermediate TireCompound = "INTERMEDIATE"
	CompoundWet          TireCompound = "WET"
	CompoundUnknown      TireCompound = "UNKNOWN"
)

// Lap is one entry of a driver's lap table as found in the session export.
// Times are in seconds. LapTime <= 0 means the lap has no valid time.
type Lap struct {
	Number         int          `json:"number"`
	LapTime        float64      `json:"lapTime"`
	Stint          int          `json:"stint"`
	Compound       TireCompound `json:"compound"`
	TireLife       float64      `json:"tireLife"`
	TrackStatus    string       `json:"trackStatus"`
	PitInTime      *float64     `json:"pitInTime,omitempty"`
	PitOutTime     *float64     `json:"pitOutTime,omitempty"`
	IsPersonalBest bool         `json:"isPersonalBest,omitempty"`
	Deleted        bool         `json:"deleted,omitempty"`
}

// InLap reports whether the driver entered the pit lane at the end of this lap.
func (l Lap) InLap() bool {
	return l.PitInTime != nil
}

// OutLap reports whether this lap started from the pit lane.
func (l Lap) OutLap() bool {
	return l.PitOutTime != nil
}

// HasTime reports whether the lap carries a usable lap time.
func (l Lap) HasTime() bool {
	return l.LapTime > 0 && !l.Deleted
}

// GreenFlag reports whether the whole lap ran under green flag conditions.
// TrackStatus contains the concatenated status codes of the lap ("1" is green).
func (l Lap) GreenFlag() bool {
	for _, c := range l.TrackStatus {
		if c != '1' {
			return false
		}
	}
	return true
}
