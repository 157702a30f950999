package config

// LoggingConfig configures diagnostic logging. Terminal status text is not
// affected by these settings.
type LoggingConfig struct {
	Level     string `yaml:"level"`      // debug, info, warn, error
	Format    string `yaml:"format"`     // json, console
	File      string `yaml:"file"`       // log file, written only in debug mode
	DebugMode bool   `yaml:"debug_mode"` // Master toggle - false = no logging
}

// Enabled reports whether log output is written at all.
func (c *LoggingConfig) Enabled() bool {
	return c.DebugMode
}
