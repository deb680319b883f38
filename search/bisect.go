package search

import "fmt"

// MinPassing bisects [lo, hi] down to precision and returns the smallest
// value for which pass holds, assuming pass is monotone (fail below some
// threshold, pass above). The canonical use is the minimum operating
// voltage of a rail: pass(v) runs the rig at v volts.
//
// Returns ErrNeverPasses when even hi fails, so a broken setup is not
// reported as a threshold.
func MinPassing(lo, hi, precision float64, pass func(float64) bool) (float64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: lo=%g hi=%g", ErrBadRange, lo, hi)
	}
	if precision <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrBadPrecision, precision)
	}
	if !pass(hi) {
		return 0, ErrNeverPasses
	}
	for hi-lo > precision {
		mid := lo + (hi-lo)/2
		if pass(mid) {
			hi = mid // passes here, threshold is at or below
		} else {
			lo = mid
		}
	}
	return hi, nil
}

// MaxStable bisects the integer range [lo, hi] and returns the largest value
// for which stable holds, assuming stable is monotone (stable up to some
// limit, unstable above). The canonical use is the maximum stable clock:
// stable(f) runs the stress pattern at f MHz.
func MaxStable(lo, hi int, stable func(int) bool) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: lo=%d hi=%d", ErrBadRange, lo, hi)
	}
	if !stable(lo) {
		return 0, ErrNeverPasses
	}
	for lo < hi {
		// Round the probe up so lo always advances.
		mid := lo + (hi-lo+1)/2
		if stable(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// IsolateFault returns the first address of the faulty region in [0, size),
// given faultIn(lo, hi) reporting whether [lo, hi] (inclusive) contains the
// fault. Halves the range on each probe, the walking-ones equivalent for a
// miscomparing DIMM: log2(size) probes instead of size.
func IsolateFault(size uint64, faultIn func(lo, hi uint64) bool) (uint64, error) {
	if size == 0 {
		return 0, fmt.Errorf("%w: size must be positive", ErrBadRange)
	}
	lo, hi := uint64(0), size-1
	if !faultIn(lo, hi) {
		return 0, ErrNeverPasses
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if faultIn(lo, mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}
