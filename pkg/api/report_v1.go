// pkg/api/report_v1.go
package api

// ReportRowV1 is one permutation bucket of a verification run.
type ReportRowV1 struct {
	Permutation string  `json:"permutation"`
	Count       int64   `json:"count"`
	Percent     float64 `json:"percent"`
}

// ReportV1 is the stable JSON schema for distribution reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Trials      int64         `json:"trials"`
	Distinct    int           `json:"distinct"`
	Mean        float64       `json:"mean"`
	Variance    float64       `json:"variance"`
	StdDev      float64       `json:"stddev"`
	IdealStdDev float64       `json:"ideal_stddev"`
	Rows        []ReportRowV1 `json:"rows"`
}

// ShuffleResultV1 is the stable schema for a single shuffle run.
type ShuffleResultV1 struct {
	Seed  int64    `json:"seed"`
	Items []string `json:"items"`
}
