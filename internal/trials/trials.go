// internal/trials/trials.go
package trials

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"fisher-yates-core/dist"
	"fisher-yates-core/rng"
	"fisher-yates-core/shuffle"
)

// Algorithm selects the permutation procedure under test.
type Algorithm string

const (
	// AlgFisherYates is the unbiased engine.
	AlgFisherYates Algorithm = "fisher-yates"
	// AlgNaive is the deliberately biased full-range-draw variant, kept so
	// the verifier has a known-bad subject to expose.
	AlgNaive Algorithm = "naive"
)

// Valid reports whether a is a known algorithm name.
func (a Algorithm) Valid() bool {
	return a == AlgFisherYates || a == AlgNaive
}

// Config controls a verification run.
type Config struct {
	Trials    int
	Threads   int   // worker goroutines; 0 = all CPUs
	Seed      int64 // base seed; 0 = wall clock. Worker w gets Seed+w.
	Algorithm Algorithm
	OnTrial   func() // called after every completed trial; must be goroutine-safe
}

// Run executes cfg.Trials independent shuffles of base across a worker pool
// and tabulates the outcomes. Trial batches are independent, so per-worker
// tallies merge by additive union.
//
// On cancellation Run returns the context error together with a report over
// the trials that did complete; the partial report is valid on its own.
func Run(ctx context.Context, cfg Config, base []string) (*dist.Report, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("%w: got %d", dist.ErrInvalidTrials, cfg.Trials)
	}
	if !cfg.Algorithm.Valid() {
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > cfg.Trials {
		threads = cfg.Trials
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	counts := xsync.NewMapOf[string, *xsync.Counter]()

	g, gctx := errgroup.WithContext(ctx)
	per := cfg.Trials / threads
	rem := cfg.Trials % threads
	for w := 0; w < threads; w++ {
		n := per
		if w < rem {
			n++
		}
		src := rng.NewMath(seed + int64(w))
		g.Go(func() error {
			fn, err := shuffleFunc(cfg.Algorithm, src)
			if err != nil {
				return err
			}
			for t := 0; t < n; t++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				out, err := fn(base)
				if err != nil {
					return err
				}
				c, _ := counts.LoadOrCompute(dist.Key(out), func() *xsync.Counter {
					return xsync.NewCounter()
				})
				c.Inc()
				if cfg.OnTrial != nil {
					cfg.OnTrial()
				}
			}
			return nil
		})
	}
	err := g.Wait()

	tally := dist.NewTally()
	counts.Range(func(k string, c *xsync.Counter) bool {
		tally.AddN(k, c.Value())
		return true
	})
	return tally.Finalize(), err
}

func shuffleFunc(alg Algorithm, src rng.Source) (func([]string) ([]string, error), error) {
	switch alg {
	case AlgFisherYates:
		return shuffle.New[string](src).Shuffle, nil
	case AlgNaive:
		return func(in []string) ([]string, error) { return naive(src, in) }, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", alg)
	}
}
