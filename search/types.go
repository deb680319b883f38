package search

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the search variants.
var (
	// ErrNotFound indicates the target is absent from the slice.
	ErrNotFound = errors.New("search: target not found")
	// ErrEmptyInput indicates an empty input slice.
	ErrEmptyInput = errors.New("search: input must be non-empty")
	// ErrBadRange indicates an inverted or empty search range.
	ErrBadRange = errors.New("search: invalid range")
	// ErrBadPrecision indicates a non-positive bisection precision.
	ErrBadPrecision = errors.New("search: precision must be positive")
	// ErrNeverPasses indicates the predicate holds nowhere in the range.
	ErrNeverPasses = errors.New("search: predicate never passes in range")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds instrumentation hooks for the slice searches.
type Options struct {
	// OnProbe is called before each comparison with the current bounds and
	// the probed index.
	OnProbe func(lo, mid, hi int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op probe hook.
func DefaultOptions() Options {
	return Options{
		OnProbe: func(int, int, int) {},
	}
}

// WithOnProbe registers a hook observing every probe of the search.
func WithOnProbe(fn func(lo, mid, hi int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnProbe must not be nil", ErrOptionViolation)
			return
		}
		o.OnProbe = fn
	}
}

// buildOptions folds opts over the defaults and surfaces option errors.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
