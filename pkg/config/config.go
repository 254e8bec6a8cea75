package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	SessionFile  string  // path to the session export file (JSON)
	LogLevel     string  // sets the log level (zap log level values)
	OutputJSON   bool    // if true, results are printed as JSON instead of a table
	FuelLoadKg   float64 // initial fuel load in kg used for fuel correction
	FuelEffect   float64 // laptime effect in seconds per kg of fuel per lap
	RendererPath string  // path to an external renderer binary (empty: resolve from PATH)
)

// Config holds the configuration values which are used by the application
type Config struct {
	SessionFile  string
	RendererPath string
}
