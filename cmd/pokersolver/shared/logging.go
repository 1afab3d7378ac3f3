package shared

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger creates a logger writing to w at the named level. debug forces
// debug level regardless of the name.
func SetupLogger(w io.Writer, level string, debug bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "pokersolver",
	}), nil
}
