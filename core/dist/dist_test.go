package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fisher-yates-core/rng"
	"fisher-yates-core/shuffle"
)

func TestInvalidTrials(t *testing.T) {
	identity := func(in []int) ([]int, error) { return in, nil }
	for _, trials := range []int{0, -1} {
		_, err := Verify([]int{1, 2, 3}, trials, identity)
		assert.ErrorIs(t, err, ErrInvalidTrials, "trials %d", trials)
	}
}

func TestKeyCanonical(t *testing.T) {
	assert.Equal(t, "1|2|3", Key([]int{1, 2, 3}))
	assert.Equal(t, "a|b", Key([]string{"a", "b"}))
	assert.Equal(t, "", Key([]string{}))

	// Same element order, different construction, same key.
	a := []string{"x", "y", "z"}
	b := append([]string{"x"}, "y", "z")
	assert.Equal(t, Key(a), Key(b))
}

func TestSingleOutcome(t *testing.T) {
	rotate := func(in []int) ([]int, error) {
		out := append([]int(nil), in[1:]...)
		return append(out, in[0]), nil
	}

	rep, err := Verify([]int{1, 2, 3}, 500, rotate)
	require.NoError(t, err)

	assert.Equal(t, int64(500), rep.Trials)
	assert.Equal(t, map[string]int64{"2|3|1": 500}, rep.Counts)
	assert.Equal(t, 500.0, rep.Mean)
	assert.Equal(t, 0.0, rep.StdDev)
	assert.Equal(t, 0.0, rep.IdealStdDev) // k == 1: no spread is expected either
}

func TestVerifyDoesNotMutateBase(t *testing.T) {
	base := []int{1, 2, 3, 4}
	eng := shuffle.New[int](rng.NewMath(5))
	_, err := Verify(base, 100, eng.Shuffle)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, base)
}

func TestUniformShuffleLooksUniform(t *testing.T) {
	const trials = 60000
	eng := shuffle.New[int](rng.NewMath(42))

	rep, err := Verify([]int{1, 2, 3}, trials, eng.Shuffle)
	require.NoError(t, err)

	require.Len(t, rep.Counts, 6)
	assert.Equal(t, int64(trials), rep.Trials)

	var sum int64
	for _, row := range rep.Rows() {
		sum += row.Count
		// Each share close to 1/6 = 16.7%.
		assert.InDelta(t, 100.0/6, row.Percent, 1.0, "key %s", row.Key)
	}
	assert.Equal(t, int64(trials), sum)

	// Observed spread in the same regime as the multinomial ideal.
	assert.InDelta(t, trials/6.0, rep.Mean, 0.01)
	assert.Less(t, rep.StdDev, 3*rep.IdealStdDev)
	ideal := math.Sqrt((trials / 6.0) * (1 - 1.0/6))
	assert.InDelta(t, ideal, rep.IdealStdDev, 1e-9)
}

// A shuffle drawing its swap target from the full range on every iteration is
// the classic biased variant; the verifier must expose it.
func TestBiasedShuffleIsExposed(t *testing.T) {
	const trials = 60000
	src := rng.NewMath(42)
	biased := func(in []int) ([]int, error) {
		out := append([]int(nil), in...)
		for i := len(out) - 1; i >= 1; i-- {
			j, err := src.Next(len(out))
			if err != nil {
				return nil, err
			}
			out[i], out[j] = out[j], out[i]
		}
		return out, nil
	}

	rep, err := Verify([]int{1, 2, 3}, trials, biased)
	require.NoError(t, err)
	require.Len(t, rep.Counts, 6)

	var minPct, maxPct = 100.0, 0.0
	for _, row := range rep.Rows() {
		if row.Percent < minPct {
			minPct = row.Percent
		}
		if row.Percent > maxPct {
			maxPct = row.Percent
		}
	}

	// Theoretical shares for n=3 are 4/27 vs 5/27 (14.8% vs 18.5%).
	assert.Greater(t, maxPct-minPct, 2.0)
	assert.Greater(t, rep.StdDev, 3*rep.IdealStdDev)
}

func TestTallyMergeIsAdditiveUnion(t *testing.T) {
	a, b := NewTally(), NewTally()
	a.Add("x|y")
	a.Add("x|y")
	a.Add("y|x")
	b.Add("x|y")
	b.AddN("z", 5)

	a.Merge(b)
	assert.Equal(t, int64(8), a.Trials())

	rep := a.Finalize()
	assert.Equal(t, map[string]int64{"x|y": 3, "y|x": 1, "z": 5}, rep.Counts)
}

func TestPartialTallyIsValid(t *testing.T) {
	tl := NewTally()
	tl.Add("a|b")
	tl.Add("b|a")
	tl.Add("a|b")

	rep := tl.Finalize()
	assert.Equal(t, int64(3), rep.Trials)
	assert.Equal(t, 1.5, rep.Mean)
	assert.InDelta(t, 0.5, rep.StdDev, 1e-9)
}

func TestEmptyTallyFinalize(t *testing.T) {
	rep := NewTally().Finalize()
	assert.Zero(t, rep.Trials)
	assert.Empty(t, rep.Counts)
	assert.Zero(t, rep.Mean)
	assert.Zero(t, rep.IdealStdDev)
}

func TestVerifyKeyedCustomKey(t *testing.T) {
	eng := shuffle.New[int](rng.NewMath(9))
	// Bucket only by the first element.
	rep, err := VerifyKeyed([]int{1, 2, 3}, 3000, eng.Shuffle, func(s []int) string {
		return Key(s[:1])
	})
	require.NoError(t, err)
	assert.Len(t, rep.Counts, 3)
}

func TestVerifyPropagatesShuffleError(t *testing.T) {
	eng := shuffle.New[int](rng.NewScript(0)) // runs dry mid-trial
	_, err := Verify([]int{1, 2, 3}, 10, eng.Shuffle)
	assert.ErrorContains(t, err, "exhausted")
}
