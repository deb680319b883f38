package tlb

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a TLB built with fewer than one entry.
	ErrBadSize = errors.New("tlb: size must be positive")
	// ErrBadPageSize indicates a page size that is not a power of two.
	ErrBadPageSize = errors.New("tlb: page size must be a power of two")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("tlb: invalid option supplied")
)

// Result classifies one address translation.
type Result uint8

// Translation outcomes, from fastest to slowest path.
const (
	Hit Result = iota
	Miss
	PageFault
)

// String returns the trace label for the outcome.
func (r Result) String() string {
	switch r {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "page_fault"
	}
}

// Stats summarizes translation outcomes. Rates are percentages of total
// accesses; a fault also counts as a miss, so HitRate+MissRate is 100.
type Stats struct {
	Hits          uint64
	Misses        uint64
	PageFaults    uint64
	TotalAccesses uint64
	HitRate       float64
	MissRate      float64
	FaultRate     float64
}

// Option configures a TLB via functional arguments.
type Option func(*Options)

// Options holds tunable TLB parameters.
type Options struct {
	// PageSize is the translation granularity in bytes. Must be a power
	// of two.
	PageSize uint64

	err error
}

// DefaultOptions returns the standard 4 KiB page configuration.
func DefaultOptions() Options {
	return Options{PageSize: 4096}
}

// WithPageSize overrides the 4 KiB default, for huge-page or embedded
// configurations.
func WithPageSize(size uint64) Option {
	return func(o *Options) {
		if size == 0 || size&(size-1) != 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadPageSize, size)
			return
		}
		o.PageSize = size
	}
}
