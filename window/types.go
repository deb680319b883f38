package window

import (
	"errors"
	"fmt"
)

// Sentinel errors for sliding-window statistics.
var (
	// ErrEmptySeries indicates an empty input series.
	ErrEmptySeries = errors.New("window: series must be non-empty")
	// ErrBadWindow indicates a window size outside [1, len(series)].
	ErrBadWindow = errors.New("window: size must be in [1, len(series)]")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("window: invalid option supplied")
)

// Stat holds the extremes and mean of one window.
type Stat struct {
	Min float64
	Avg float64
	Max float64
}

// Option configures Stats via functional arguments.
type Option func(*Options)

// Options holds the tunable parts of a Stats run.
type Options struct {
	// OnWindow is called once per emitted window with its index and Stat.
	OnWindow func(i int, s Stat)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnWindow: func(int, Stat) {},
	}
}

// WithOnWindow registers a callback invoked for every emitted window.
func WithOnWindow(fn func(i int, s Stat)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnWindow must not be nil", ErrOptionViolation)
			return
		}
		o.OnWindow = fn
	}
}
