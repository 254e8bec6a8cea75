package model

// AccelRow holds the acceleration metrics of one driver.
// Values are NaN when the telemetry never reaches the target speed.
type AccelRow struct {
	Driver              string  `json:"driver"`
	ZeroToHundred       float64 `json:"0-100"`
	HundredToTwoHundred float64 `json:"100-200"`
}

// StintModel is the fitted tire degradation model of one stint:
// corrected lap time (s) = Intercept + SlopeSecPerLap * tireLife.
type StintModel struct {
	Stint          int          `json:"stint"`
	Compound       TireCompound `json:"compound"`
	Intercept      float64      `json:"intercept"`
	SlopeSecPerLap float64      `json:"slopeSecPerLap"`
	R2             float64      `json:"r2"`
	Laps           int          `json:"laps"` // laps used for the fit
}

// CornerRow holds the corner speed comparison of one driver. A category maps
// to nil when no telemetry sample fell into any of its corner windows.
type CornerRow struct {
	Driver     string              `json:"driver"`
	TopSpeed   float64             `json:"topSpeed"`
	Categories map[string]*float64 `json:"categories"`
}

// DominanceResult holds the renderable track dominance data.
// len(Segments) == len(Points)-1 == len(Colors).
type DominanceResult struct {
	Points    [][2]float64    `json:"points"`
	Segments  [][2][2]float64 `json:"segments"`
	FastestAt []string        `json:"fastestAt"`
	Colors    []string        `json:"colors"`
}
