package ltssm

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// traceHeader is the required CSV header row.
var traceHeader = [3]string{"timestamp", "ltssm_state", "additional_data"}

// ParseFile reads and analyzes the trace at path.
func ParseFile(path string) (*Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ltssm: open trace: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a CSV trace from r and returns its analysis.
// Returns ErrBadRecord (wrapped with the line number) for malformed rows
// and ErrEmptyTrace when only the header is present.
func Parse(r io.Reader) (*Analysis, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyTrace
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadRecord, err)
	}
	for i, want := range traceHeader {
		if strings.TrimSpace(header[i]) != want {
			return nil, fmt.Errorf("%w: line 1: header column %d is %q, want %q",
				ErrBadRecord, i+1, header[i], want)
		}
	}

	var events []Event
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		ts, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad timestamp %q", ErrBadRecord, line, rec[0])
		}
		events = append(events, Event{
			Timestamp: ts,
			State:     strings.TrimSpace(rec[1]),
			Data:      strings.TrimSpace(rec[2]),
		})
	}
	if len(events) == 0 {
		return nil, ErrEmptyTrace
	}
	return analyze(events), nil
}

// analyze walks the event stream once and accumulates every metric.
func analyze(events []Event) *Analysis {
	a := &Analysis{StateDwells: make(map[State]float64)}

	var recoveryStart *float64
	speed := "Gen1"
	prev := events[0]

	for _, ev := range events[1:] {
		a.StateDwells[prev.State] += ev.Timestamp - prev.Timestamp

		if ev.State == L0 && a.FirstL0 == nil {
			ts := ev.Timestamp
			a.FirstL0 = &ts
		}

		if prev.State == Recovery && (ev.State == Config || ev.State == Polling) {
			a.Retrains++
		}

		// Recovery dwell runs open on the first Recovery sample and close
		// on the next non-Recovery one.
		if prev.State == Recovery {
			if recoveryStart == nil {
				ts := prev.Timestamp
				recoveryStart = &ts
			}
		} else if recoveryStart != nil {
			a.noteRecoveryDwell(prev.Timestamp - *recoveryStart)
			recoveryStart = nil
		}

		if strings.Contains(ev.Data, "Gen") && ev.Data != speed {
			a.SpeedChanges = append(a.SpeedChanges, SpeedChange{
				Timestamp: ev.Timestamp, From: speed, To: ev.Data,
			})
			speed = ev.Data
		}

		prev = ev
	}

	// A run still open at trace end is closed by the final sample.
	if recoveryStart != nil {
		a.noteRecoveryDwell(events[len(events)-1].Timestamp - *recoveryStart)
	}

	a.TotalTime = events[len(events)-1].Timestamp - events[0].Timestamp
	return a
}

func (a *Analysis) noteRecoveryDwell(dwell float64) {
	if dwell > a.LongestRecoveryDwell {
		a.LongestRecoveryDwell = dwell
	}
}
