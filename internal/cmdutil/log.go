// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger returns the console logger shared by the CLI binaries. quiet drops
// everything; machine-readable output always goes to stdout, never through
// the logger.
func Logger(w io.Writer, quiet bool) zerolog.Logger {
	lg := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	if quiet {
		return lg.Level(zerolog.Disabled)
	}
	return lg
}
