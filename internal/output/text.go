// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"fisher-yates-core/dist"

	"github.com/cynthiateeters/fisher-yates/internal/writers"
	"github.com/cynthiateeters/fisher-yates/pkg/api"
)

func init() {
	writers.RegisterReport(FormatTSV, WriteReportTSV)
	writers.RegisterShuffle(FormatText, WriteShuffleText)
}

// WriteReportTSV prints one line per permutation bucket.
func WriteReportTSV(w io.Writer, rep *dist.Report) error {
	if _, err := fmt.Fprintln(w, "permutation\tcount\tpercent"); err != nil {
		return err
	}
	for _, row := range rep.Rows() {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%.3f\n", row.Key, row.Count, row.Percent); err != nil {
			return err
		}
	}
	return nil
}

// WriteShuffleText prints the permuted items, one per line.
func WriteShuffleText(w io.Writer, res api.ShuffleResultV1) error {
	for _, item := range res.Items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
