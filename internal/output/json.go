// internal/output/json.go
package output

import (
	"io"

	json "github.com/goccy/go-json"

	"fisher-yates-core/dist"

	"github.com/cynthiateeters/fisher-yates/internal/writers"
	"github.com/cynthiateeters/fisher-yates/pkg/api"
)

func init() {
	writers.RegisterReport(FormatJSON, WriteReportJSON)
	writers.RegisterShuffle(FormatJSON, WriteShuffleJSON)
}

// ToAPIReport converts a domain report to the stable wire schema (v1).
func ToAPIReport(rep *dist.Report) api.ReportV1 {
	v := api.ReportV1{
		Trials:      rep.Trials,
		Distinct:    len(rep.Counts),
		Mean:        rep.Mean,
		Variance:    rep.Variance,
		StdDev:      rep.StdDev,
		IdealStdDev: rep.IdealStdDev,
		Rows:        make([]api.ReportRowV1, 0, len(rep.Counts)),
	}
	for _, row := range rep.Rows() {
		v.Rows = append(v.Rows, api.ReportRowV1{
			Permutation: row.Key,
			Count:       row.Count,
			Percent:     row.Percent,
		})
	}
	return v
}

// WriteReportJSON writes a single pretty-indented v1 report document.
func WriteReportJSON(w io.Writer, rep *dist.Report) error {
	return encodePretty(w, ToAPIReport(rep))
}

// WriteShuffleJSON writes a single pretty-indented v1 shuffle result.
func WriteShuffleJSON(w io.Writer, res api.ShuffleResultV1) error {
	return encodePretty(w, res)
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
