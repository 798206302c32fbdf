package main

import (
	"github.com/spf13/viper"

	"github.com/zerolag/zerolag/pkg/zerolag/logging"
)

// initLogging configures the logging system from the loaded config and
// CLI flags. In TUI mode console output is suppressed so the TUI owns
// the screen; otherwise --verbose raises the console level to debug.
func initLogging(tuiMode bool) error {
	level := viper.GetString("logging.level")
	if getVerbose() {
		level = "debug"
	}

	consoleLevel := ""
	if !tuiMode && !getQuiet() {
		consoleLevel = "warn"
		if getVerbose() {
			consoleLevel = "debug"
		}
	}

	return logging.Init(logging.Config{
		Level:        level,
		Path:         viper.GetString("logging.path"),
		Components:   viper.GetStringMapString("logging.components"),
		ConsoleLevel: consoleLevel,
		TUIMode:      tuiMode,
	})
}
