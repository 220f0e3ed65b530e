// Package logtrace initializes structured logging for the application.
// It integrates with zerolog and controls the global log level.
package logtrace

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger with Unix timestamp format.
// Configures zerolog to output to stderr with timestamps. Debug-level
// transport logging is off unless enabled with SetDebug.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// SetDebug toggles debug-level logging, including per-request transport
// traces.
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// InitConsoleLogger switches the global logger to human-readable console
// output. Used by the CLI; services keep the JSON form.
func InitConsoleLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
