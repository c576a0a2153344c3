// Package shuffle implements the unbiased in-place permutation algorithm
// (modern Fisher-Yates) over a slice of any element type.
//
// The engine never mutates the caller's slice: it works on an independent
// copy, optionally built with an element-level clone for composite types.
// Randomness is injected through rng.Source, so the engine is deterministic
// under a scripted source.
package shuffle

import (
	"fisher-yates-core/rng"
)

// Engine shuffles slices of T using an injected index source.
type Engine[T any] struct {
	src   rng.Source
	obs   Observer[T]
	clone func(T) T
}

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithObserver attaches an observer notified synchronously at every swap
// step, including degenerate i == j steps. The engine never retains state for
// the observer; any pacing or rendering is the observer's own concern.
func WithObserver[T any](obs Observer[T]) Option[T] {
	return func(e *Engine[T]) { e.obs = obs }
}

// WithClone supplies an element-level deep copy for composite T, so the
// output (and observer snapshots) never alias sub-structure of the input.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(e *Engine[T]) { e.clone = fn }
}

// New creates an Engine drawing indexes from src.
func New[T any](src rng.Source, opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{src: src}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Shuffle returns a uniformly random permutation of in, leaving in untouched.
//
// Positions are finalized from the end: at each i the swap target j is drawn
// from the shrinking range [0, i], which gives exactly n! equally likely
// execution paths for n distinct elements. Drawing from the full range
// instead would bias the result and is never done here.
func (e *Engine[T]) Shuffle(in []T) ([]T, error) {
	out := e.copyOf(in)
	for i := len(out) - 1; i >= 1; i-- {
		j, err := e.src.Next(i + 1)
		if err != nil {
			return nil, err
		}
		var before []T
		if e.obs != nil {
			before = e.copyOf(out)
		}
		out[i], out[j] = out[j], out[i]
		if e.obs != nil {
			e.obs.Step(StepEvent[T]{Index: i, Chosen: j, Before: before})
		}
	}
	return out, nil
}

func (e *Engine[T]) copyOf(in []T) []T {
	out := make([]T, len(in))
	if e.clone != nil {
		for i, v := range in {
			out[i] = e.clone(v)
		}
		return out
	}
	copy(out, in)
	return out
}

// Slice is a one-shot convenience: shuffle in with src, no observer.
func Slice[T any](src rng.Source, in []T) ([]T, error) {
	return New[T](src).Shuffle(in)
}
