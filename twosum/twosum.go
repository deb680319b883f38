package twosum

import (
	"errors"
	"sort"
)

var (
	// ErrNoPair indicates no pair of values reaches the target.
	ErrNoPair = errors.New("twosum: no pair sums to target")
	// ErrShortInput indicates fewer than two input values.
	ErrShortInput = errors.New("twosum: need at least two values")
)

// Indices returns the first pair of indices (i, j), i < j, whose values sum
// to target. Single pass with a value→index map of already-seen elements:
// when the complement of the current value was seen before, that earlier
// index pairs with the current one. Solves duplicate inputs such as
// ([3,3], 6) without special cases.
func Indices(nums []int, target int) (int, int, error) {
	if len(nums) < 2 {
		return 0, 0, ErrShortInput
	}
	seen := make(map[int]int, len(nums))
	for j, n := range nums {
		if i, ok := seen[target-n]; ok {
			return i, j, nil
		}
		// Keep the first occurrence, so the earliest valid pair wins.
		if _, ok := seen[n]; !ok {
			seen[n] = j
		}
	}
	return 0, 0, ErrNoPair
}

// AllPairs returns every distinct value pair summing to target, each pair in
// ascending order, pairs in the order their second element is encountered.
// Value pairs, not index pairs: duplicates contribute one entry.
func AllPairs(nums []int, target int) [][2]int {
	seen := make(map[int]bool, len(nums))
	emitted := make(map[[2]int]bool)
	var pairs [][2]int
	for _, n := range nums {
		c := target - n
		if seen[c] {
			p := [2]int{c, n}
			if p[0] > p[1] {
				p[0], p[1] = p[1], p[0]
			}
			if !emitted[p] {
				emitted[p] = true
				pairs = append(pairs, p)
			}
		}
		seen[n] = true
	}
	return pairs
}

// Closest returns the value pair whose sum is nearest to target, values in
// ascending order. Two-pointer sweep over a sorted copy; ties keep the first
// pair found. The input slice is not modified.
func Closest(nums []int, target int) (int, int, error) {
	if len(nums) < 2 {
		return 0, 0, ErrShortInput
	}
	sorted := make([]int, len(nums))
	copy(sorted, nums)
	sort.Ints(sorted)

	lo, hi := 0, len(sorted)-1
	bestLo, bestHi := sorted[lo], sorted[hi]
	bestDist := abs(bestLo + bestHi - target)
	for lo < hi {
		sum := sorted[lo] + sorted[hi]
		if d := abs(sum - target); d < bestDist {
			bestDist = d
			bestLo, bestHi = sorted[lo], sorted[hi]
		}
		switch {
		case sum < target:
			lo++
		case sum > target:
			hi--
		default:
			return sorted[lo], sorted[hi], nil
		}
	}
	return bestLo, bestHi, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
