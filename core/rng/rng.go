// Package rng provides the injectable index source consumed by the shuffle
// engine. It is the only place nondeterminism enters the core: swap it for a
// Script to make every shuffle fully reproducible.
package rng

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidBound is returned when a Source is asked for an index over an
// empty or negative range.
var ErrInvalidBound = errors.New("bound must be >= 1")

// Source yields a uniformly distributed index in [0, bound).
// Implementations must return 0 when bound == 1 and must never clamp an
// invalid bound silently.
type Source interface {
	Next(bound int) (int, error)
}

// checkBound validates the half-open range contract shared by all sources.
func checkBound(bound int) error {
	if bound < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}
	return nil
}

// Math is a Source backed by math/rand. It is seedable and deliberately not
// cryptographic; the engine's uniformity guarantee holds for any uniform
// backend injected here.
type Math struct {
	r *rand.Rand
}

// NewMath returns a Math source with a fixed seed.
func NewMath(seed int64) *Math {
	return &Math{r: rand.New(rand.NewSource(seed))}
}

// NewMathAuto returns a Math source seeded from the wall clock.
func NewMathAuto() *Math {
	return NewMath(time.Now().UnixNano())
}

func (m *Math) Next(bound int) (int, error) {
	if err := checkBound(bound); err != nil {
		return 0, err
	}
	return m.r.Intn(bound), nil
}

// Func adapts a plain Intn-style function to the Source interface.
type Func func(bound int) int

func (f Func) Next(bound int) (int, error) {
	if err := checkBound(bound); err != nil {
		return 0, err
	}
	return f(bound), nil
}
