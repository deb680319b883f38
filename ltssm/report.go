package ltssm

import (
	"fmt"
	"io"
	"sort"
)

// Format writes the human-readable trace report to w.
func (a *Analysis) Format(w io.Writer) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("=== LTSSM Trace Analysis ===\n")
	p("Total trace time: %.3f ms\n\n", a.TotalTime)

	if a.FirstL0 != nil {
		p("First time to L0: %.3f ms\n", *a.FirstL0)
	} else {
		p("Never reached L0 state\n")
	}
	p("Number of retrains: %d\n", a.Retrains)
	p("Longest Recovery dwell: %.3f ms\n\n", a.LongestRecoveryDwell)

	p("State dwell times:\n")
	states := make([]State, 0, len(a.StateDwells))
	for s := range a.StateDwells {
		states = append(states, s)
	}
	sort.Strings(states)
	for _, s := range states {
		dwell := a.StateDwells[s]
		var pct float64
		if a.TotalTime > 0 {
			pct = dwell / a.TotalTime * 100
		}
		p("  %-12s: %8.3f ms (%5.1f%%)\n", s, dwell, pct)
	}

	if len(a.SpeedChanges) > 0 {
		p("\nSpeed changes (%d):\n", len(a.SpeedChanges))
		for _, sc := range a.SpeedChanges {
			p("  %8.3f ms: %s -> %s\n", sc.Timestamp, sc.From, sc.To)
		}
	}
	return err
}

// sampleTrace is a canonical bring-up: training to L0, two retrains with
// speed bumps to Gen2 and Gen3, an L0s excursion and a final long Recovery.
var sampleTrace = []Event{
	{0.000, Detect, ""},
	{0.100, Polling, ""},
	{0.500, Config, "Gen1"},
	{2.000, L0, "Gen1"},
	{5.000, Recovery, ""},
	{5.200, Config, "Gen2"},
	{6.000, L0, "Gen2"},
	{10.000, L0s, ""},
	{10.050, L0, "Gen2"},
	{15.000, Recovery, ""},
	{15.800, Config, "Gen3"},
	{16.500, L0, "Gen3"},
	{20.000, Recovery, ""},
	{23.000, L0, "Gen3"},
}

// WriteSample writes the canonical sample trace as CSV, for tests and for
// trying the analyzer without captured hardware data.
func WriteSample(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s,%s,%s\n", traceHeader[0], traceHeader[1], traceHeader[2]); err != nil {
		return err
	}
	for _, ev := range sampleTrace {
		if _, err := fmt.Fprintf(w, "%.3f,%s,%s\n", ev.Timestamp, ev.State, ev.Data); err != nil {
			return err
		}
	}
	return nil
}
