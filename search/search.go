package search

// Binary returns the index of target in the sorted slice arr.
// Standard halving with overflow-safe midpoint; O(log n).
func Binary(arr []int, target int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		o.OnProbe(lo, mid, hi)
		switch {
		case arr[mid] == target:
			return mid, nil
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, ErrNotFound
}

// FirstOccurrence returns the leftmost index of target in the sorted slice.
// On a match the search keeps narrowing leftward instead of returning, so
// the first of a run of equal values wins — the "first failing sample" in a
// sorted pass/fail sweep.
func FirstOccurrence(arr []int, target int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	lo, hi := 0, len(arr)-1
	found := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		o.OnProbe(lo, mid, hi)
		switch {
		case arr[mid] == target:
			found = mid
			hi = mid - 1
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	if found < 0 {
		return 0, ErrNotFound
	}
	return found, nil
}

// LastOccurrence returns the rightmost index of target in the sorted slice.
func LastOccurrence(arr []int, target int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	lo, hi := 0, len(arr)-1
	found := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		o.OnProbe(lo, mid, hi)
		switch {
		case arr[mid] == target:
			found = mid
			lo = mid + 1
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	if found < 0 {
		return 0, ErrNotFound
	}
	return found, nil
}

// Peak returns an index whose value is greater than both neighbors, assuming
// arr rises then falls (a characterization curve). For a monotone slice the
// matching endpoint is returned.
func Peak(arr []int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if len(arr) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := 0, len(arr)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		o.OnProbe(lo, mid, hi)
		if arr[mid] > arr[mid+1] {
			hi = mid // descending side: peak at mid or left of it
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}

// Rotated returns the index of target in a sorted slice rotated by an
// unknown offset. At each probe exactly one half is sorted; the target is
// either inside that half's bounds or in the other half.
func Rotated(arr []int, target int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		o.OnProbe(lo, mid, hi)
		if arr[mid] == target {
			return mid, nil
		}
		if arr[lo] <= arr[mid] { // left half sorted
			if arr[lo] <= target && target < arr[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else { // right half sorted
			if arr[mid] < target && target <= arr[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return 0, ErrNotFound
}
