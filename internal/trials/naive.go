package trials

import "fisher-yates-core/rng"

// naive draws the swap target from the full range on every iteration instead
// of the shrinking [0, i]. That breaks the bijection between draw sequences
// and permutations (n^(n-1) paths onto n! outcomes), so some permutations
// come up measurably more often than others.
func naive(src rng.Source, in []string) ([]string, error) {
	out := make([]string, len(in))
	copy(out, in)
	for i := len(out) - 1; i >= 1; i-- {
		j, err := src.Next(len(out))
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
