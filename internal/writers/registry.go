// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"fisher-yates-core/dist"

	"github.com/cynthiateeters/fisher-yates/pkg/api"
)

// Writer registries (format → handler). Output packages register themselves
// in init() blocks; the app layers dispatch by flag value.
var (
	ReportWriters  = map[string]func(w io.Writer, rep *dist.Report) error{}
	ShuffleWriters = map[string]func(w io.Writer, res api.ShuffleResultV1) error{}
)

// Register helpers (idempotent, last wins).
func RegisterReport(format string, fn func(io.Writer, *dist.Report) error) {
	ReportWriters[format] = fn
}

func RegisterShuffle(format string, fn func(io.Writer, api.ShuffleResultV1) error) {
	ShuffleWriters[format] = fn
}

// Dispatch helpers used by the app layers.
func WriteReport(format string, w io.Writer, rep *dist.Report) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, rep)
}

func WriteShuffle(format string, w io.Writer, res api.ShuffleResultV1) error {
	fn, ok := ShuffleWriters[format]
	if !ok {
		return fmt.Errorf("unknown shuffle format %q (no writer registered)", format)
	}
	return fn(w, res)
}
