package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogEnvVar selects the diagnostic log level (DEBUG, INFO, WARN, ERROR).
const LogEnvVar = "VVRESULTS_LOG"

// newLogger builds the diagnostic logger. debug forces the debug level;
// otherwise the level comes from VVRESULTS_LOG and defaults to WARN.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := new(slog.LevelVar)

	switch strings.ToUpper(os.Getenv(LogEnvVar)) {
	case "DEBUG":
		level.Set(slog.LevelDebug)
	case "INFO":
		level.Set(slog.LevelInfo)
	case "ERROR":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelWarn)
	}
	if debug {
		level.Set(slog.LevelDebug)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
