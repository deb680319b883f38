package window_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sivalab/sival/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveStats is the O(n·k) reference used to validate the deque version.
func naiveStats(series []float64, k int) []window.Stat {
	if len(series) == 0 || k <= 0 || k > len(series) {
		return nil
	}
	out := make([]window.Stat, 0, len(series)-k+1)
	for i := 0; i+k <= len(series); i++ {
		mn, mx, sum := math.Inf(1), math.Inf(-1), 0.0
		for _, v := range series[i : i+k] {
			mn = math.Min(mn, v)
			mx = math.Max(mx, v)
			sum += v
		}
		out = append(out, window.Stat{Min: mn, Avg: sum / float64(k), Max: mx})
	}
	return out
}

// TestStats_Canonical pins the worked example from the latency exercise.
func TestStats_Canonical(t *testing.T) {
	stats, err := window.Stats([]float64{5, 1, 3, 4, 6}, 3)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, window.Stat{Min: 1, Avg: 3, Max: 5}, stats[0])
	assert.Equal(t, window.Stat{Min: 1, Avg: 8.0 / 3.0, Max: 4}, stats[1])
	assert.Equal(t, window.Stat{Min: 3, Avg: 13.0 / 3.0, Max: 6}, stats[2])
}

// TestStats_Errors covers empty input and out-of-range window sizes.
func TestStats_Errors(t *testing.T) {
	_, err := window.Stats(nil, 3)
	assert.ErrorIs(t, err, window.ErrEmptySeries)

	_, err = window.Stats([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, window.ErrBadWindow)

	_, err = window.Stats([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, window.ErrBadWindow, "k larger than the series")

	_, err = window.Stats([]float64{1, 2}, 1, window.WithOnWindow(nil))
	assert.ErrorIs(t, err, window.ErrOptionViolation)
}

// TestStats_WindowOfOne degenerates to the identity on all three fields.
func TestStats_WindowOfOne(t *testing.T) {
	in := []float64{2.5, -1, 7}
	stats, err := window.Stats(in, 1)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	for i, v := range in {
		assert.Equal(t, window.Stat{Min: v, Avg: v, Max: v}, stats[i])
	}
}

// TestStats_FullWindow covers k == len(series).
func TestStats_FullWindow(t *testing.T) {
	stats, err := window.Stats([]float64{4, 2, 8, 6}, 4)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, window.Stat{Min: 2, Avg: 5, Max: 8}, stats[0])
}

// TestStats_MonotonicInputs checks strictly rising and falling series,
// the worst cases for one deque each.
func TestStats_MonotonicInputs(t *testing.T) {
	rising := []float64{1, 2, 3, 4, 5, 6}
	assert.Equal(t, naiveStats(rising, 3), mustStats(t, rising, 3))

	falling := []float64{9, 7, 5, 3, 1}
	assert.Equal(t, naiveStats(falling, 2), mustStats(t, falling, 2))
}

// TestStats_AgainstNaive cross-checks random series against the reference.
func TestStats_AgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(200)
		series := make([]float64, n)
		for i := range series {
			series[i] = math.Round(rng.Float64()*1000) / 4 // quarter-unit grid keeps sums exact
		}
		k := 1 + rng.Intn(n)
		got := mustStats(t, series, k)
		want := naiveStats(series, k)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].Min, got[i].Min, "min at window %d", i)
			assert.Equal(t, want[i].Max, got[i].Max, "max at window %d", i)
			assert.InDelta(t, want[i].Avg, got[i].Avg, 1e-9, "avg at window %d", i)
		}
	}
}

// TestStats_OnWindowHook counts and orders hook invocations.
func TestStats_OnWindowHook(t *testing.T) {
	var seen []int
	_, err := window.Stats([]float64{1, 2, 3, 4}, 2, window.WithOnWindow(func(i int, _ window.Stat) {
		seen = append(seen, i)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func mustStats(t *testing.T, series []float64, k int) []window.Stat {
	t.Helper()
	stats, err := window.Stats(series, k)
	require.NoError(t, err)
	return stats
}
