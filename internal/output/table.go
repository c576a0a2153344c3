// internal/output/table.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"fisher-yates-core/dist"

	"github.com/cynthiateeters/fisher-yates/internal/writers"
)

func init() {
	writers.RegisterReport(FormatTable, WriteReportTable)
}

// WriteReportTable renders the aligned human-readable report: one row per
// permutation plus the derived statistics underneath.
func WriteReportTable(w io.Writer, rep *dist.Report) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Permutation", "Count", "Percent"})
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	tbl.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, row := range rep.Rows() {
		tbl.Append([]string{
			row.Key,
			strconv.FormatInt(row.Count, 10),
			fmt.Sprintf("%.3f%%", row.Percent),
		})
	}
	tbl.Render()

	_, err := fmt.Fprintf(w,
		"trials=%d distinct=%d mean=%.2f stddev=%.2f ideal-stddev=%.2f\n",
		rep.Trials, len(rep.Counts), rep.Mean, rep.StdDev, rep.IdealStdDev,
	)
	return err
}
