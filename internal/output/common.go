// internal/output/common.go
package output

// Report formats accepted by --output on shufflecheck.
const (
	FormatTable = "table"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
)

// Shuffle formats accepted by --output on shuffle.
const (
	FormatText = "text"
)
