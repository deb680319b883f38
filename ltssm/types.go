package ltssm

import "errors"

var (
	// ErrBadRecord indicates a malformed trace row. Wrapped errors carry
	// the offending line number.
	ErrBadRecord = errors.New("ltssm: malformed trace record")
	// ErrEmptyTrace indicates a trace with a header but no events.
	ErrEmptyTrace = errors.New("ltssm: trace holds no events")
)

// State is an LTSSM state name as it appears in the trace.
type State = string

// The LTSSM states of the PCIe base specification.
const (
	Detect   State = "Detect"
	Polling  State = "Polling"
	Config   State = "Config"
	L0       State = "L0"
	Recovery State = "Recovery"
	L0s      State = "L0s"
	L1       State = "L1"
	L2       State = "L2"
	Disabled State = "Disabled"
	Loopback State = "Loopback"
	HotReset State = "HotReset"
)

// Event is one trace sample: when, which state, and the optional data
// column (speed markers such as "Gen3").
type Event struct {
	Timestamp float64
	State     State
	Data      string
}

// SpeedChange records a link speed transition observed in the trace.
type SpeedChange struct {
	Timestamp float64
	From      string
	To        string
}

// Analysis is the digest of one trace.
type Analysis struct {
	// FirstL0 is the timestamp of the first L0 entry, nil when the link
	// never trained.
	FirstL0 *float64
	// Retrains counts Recovery exits back into Config or Polling.
	Retrains int
	// LongestRecoveryDwell is the longest contiguous time spent in
	// Recovery, in milliseconds.
	LongestRecoveryDwell float64
	// TotalTime spans the first to the last sample.
	TotalTime float64
	// StateDwells total the time spent in each state.
	StateDwells map[State]float64
	// SpeedChanges lists link speed transitions in trace order.
	SpeedChanges []SpeedChange
}
