package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// init initializes the logging configuration for the application based on the DEBUG_HWALK environment variable.
func init() {
	zerolog.SetGlobalLevel(LogLevelFromEnv(os.Getenv("DEBUG_HWALK")))
}

// LogLevelFromEnv maps a DEBUG_HWALK value to a zerolog level.
// "off" or "0" disables logging, "full" enables debug output, anything else means info.
func LogLevelFromEnv(value string) zerolog.Level {
	debugMode := strings.TrimSpace(strings.ToLower(value))
	switch debugMode {
	case "off", "0":
		return zerolog.Disabled
	case "full":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
