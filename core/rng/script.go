package rng

import "fmt"

// Script replays a fixed sequence of draws. It exists so shuffle outputs can
// be asserted exactly in tests: given the same draws, the engine produces the
// same permutation every time.
type Script struct {
	draws []int
	pos   int
}

// NewScript returns a Script that yields the given draws in order.
func NewScript(draws ...int) *Script {
	return &Script{draws: draws}
}

func (s *Script) Next(bound int) (int, error) {
	if err := checkBound(bound); err != nil {
		return 0, err
	}
	if s.pos >= len(s.draws) {
		return 0, fmt.Errorf("script exhausted after %d draws", len(s.draws))
	}
	d := s.draws[s.pos]
	s.pos++
	if d < 0 || d >= bound {
		return 0, fmt.Errorf("scripted draw %d out of range [0,%d)", d, bound)
	}
	return d, nil
}

// Remaining reports how many scripted draws are left.
func (s *Script) Remaining() int { return len(s.draws) - s.pos }
