// Package config provides configuration management for zerolag.
package config

// Default configuration values for zerolag.
const (
	// DefaultMode is the scan mode used when none is specified.
	DefaultMode = "general"

	// DefaultOutputDir is the directory report files are written to.
	DefaultOutputDir = "reports"

	// DefaultTopProcesses is how many processes the collector keeps in
	// the top-processes table.
	DefaultTopProcesses = 10

	// DefaultCPUSampleMillis is the CPU load sampling window in
	// milliseconds. Longer windows read steadier but slow the scan.
	DefaultCPUSampleMillis = 600

	// DefaultStartupItemRows caps how many startup items the markdown
	// report lists before truncating.
	DefaultStartupItemRows = 20
)
