package window

import "fmt"

// Stats computes min/avg/max for each sliding window of size k over series.
//
// Algorithm outline:
//  1. Two deques of indices: minIdx non-decreasing by value, maxIdx
//     non-increasing. The front of each is the current window's extreme.
//  2. For each index i, evict dominated tails, push i, drop fronts that
//     fell out of the window, and maintain a running sum.
//  3. From i = k-1 on, emit Stat{front of minIdx, sum/k, front of maxIdx}.
//
// Complexity: O(n) time, O(k) memory.
func Stats(series []float64, k int, opts ...Option) ([]Stat, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if k <= 0 || k > len(series) {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrBadWindow, k, len(series))
	}

	out := make([]Stat, 0, len(series)-k+1)
	minIdx := make([]int, 0, k)
	maxIdx := make([]int, 0, k)
	sum := 0.0

	for i, v := range series {
		sum += v

		// Evict tail indices whose values can never be the window minimum.
		for len(minIdx) > 0 && series[minIdx[len(minIdx)-1]] >= v {
			minIdx = minIdx[:len(minIdx)-1]
		}
		minIdx = append(minIdx, i)

		for len(maxIdx) > 0 && series[maxIdx[len(maxIdx)-1]] <= v {
			maxIdx = maxIdx[:len(maxIdx)-1]
		}
		maxIdx = append(maxIdx, i)

		// Drop fronts that slid out of the window.
		if minIdx[0] <= i-k {
			minIdx = minIdx[1:]
		}
		if maxIdx[0] <= i-k {
			maxIdx = maxIdx[1:]
		}

		if i < k-1 {
			continue
		}
		if i >= k {
			sum -= series[i-k]
		}
		s := Stat{
			Min: series[minIdx[0]],
			Avg: sum / float64(k),
			Max: series[maxIdx[0]],
		}
		o.OnWindow(len(out), s)
		out = append(out, s)
	}
	return out, nil
}
