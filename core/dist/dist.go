// Package dist certifies shuffle uniformity. It runs a shuffle function over
// many trials on a fixed input, buckets results by canonical permutation key,
// and derives the distribution statistics that make bias visible.
package dist

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrInvalidTrials is returned when a verification is requested with fewer
// than one trial.
var ErrInvalidTrials = errors.New("trials must be >= 1")

// KeyFunc maps a sequence to its canonical bucket key.
type KeyFunc[T any] func([]T) string

// Key is the default canonical key: element values joined with '|' in order.
// Two sequences with identical element order always produce identical keys.
func Key[T any](seq []T) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "|")
}

// Tally accumulates per-permutation counts. Tallies from independent trial
// batches merge by additive union, so partial tallies stay valid under early
// termination.
type Tally struct {
	counts map[string]int64
	trials int64
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int64)}
}

// Add records one trial outcome.
func (t *Tally) Add(key string) { t.AddN(key, 1) }

// AddN records n trial outcomes for key.
func (t *Tally) AddN(key string, n int64) {
	t.counts[key] += n
	t.trials += n
}

// Merge folds other into t.
func (t *Tally) Merge(other *Tally) {
	for k, n := range other.counts {
		t.AddN(k, n)
	}
}

// Trials reports the number of outcomes recorded so far.
func (t *Tally) Trials() int64 { return t.trials }

// Report is an immutable snapshot of a finished verification run.
type Report struct {
	Counts map[string]int64
	Trials int64

	Mean        float64 // trials / distinct keys observed
	Variance    float64 // population variance of counts across observed keys
	StdDev      float64
	IdealStdDev float64 // expected stddev of a count under a uniform multinomial
}

// Row is one line of a human-readable report.
type Row struct {
	Key     string
	Count   int64
	Percent float64
}

// Rows returns the counts as rows sorted by key.
func (r *Report) Rows() []Row {
	rows := make([]Row, 0, len(r.Counts))
	for k, c := range r.Counts {
		pct := 0.0
		if r.Trials > 0 {
			pct = 100 * float64(c) / float64(r.Trials)
		}
		rows = append(rows, Row{Key: k, Count: c, Percent: pct})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// Finalize snapshots the tally into a Report with derived statistics.
//
// With k observed keys and mean m = trials/k, a perfectly uniform multinomial
// gives each count variance m*(1-1/k), so IdealStdDev = sqrt(m*(1-1/k)); an
// unbiased shuffle's observed StdDev converges to it, a biased one diverges.
func (t *Tally) Finalize() *Report {
	rep := &Report{
		Counts: make(map[string]int64, len(t.counts)),
		Trials: t.trials,
	}
	for k, c := range t.counts {
		rep.Counts[k] = c
	}
	k := float64(len(t.counts))
	if k == 0 {
		return rep
	}
	mean := float64(t.trials) / k
	var ss float64
	for _, c := range t.counts {
		d := float64(c) - mean
		ss += d * d
	}
	rep.Mean = mean
	rep.Variance = ss / k
	rep.StdDev = math.Sqrt(rep.Variance)
	rep.IdealStdDev = math.Sqrt(mean * (1 - 1/k))
	return rep
}

// Verify runs fn over base exactly trials times and tabulates the outcomes
// under the default canonical key. base is never mutated (fn must honor the
// same contract).
func Verify[T any](base []T, trials int, fn func([]T) ([]T, error)) (*Report, error) {
	return VerifyKeyed(base, trials, fn, Key[T])
}

// VerifyKeyed is Verify with a caller-supplied canonical key.
func VerifyKeyed[T any](base []T, trials int, fn func([]T) ([]T, error), key KeyFunc[T]) (*Report, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	t := NewTally()
	for n := 0; n < trials; n++ {
		out, err := fn(base)
		if err != nil {
			return nil, err
		}
		t.Add(key(out))
	}
	return t.Finalize(), nil
}
