package pipeline

import (
	"context"
	"fmt"
)

// Processor is the out-of-order machine. Not safe for concurrent use.
type Processor struct {
	robSize int

	rob      []*entry // program order, head commits first
	stations []*entry // issued, waiting for operands and a unit
	units    []*entry // nil slots are free

	regs [NumRegisters]int
	busy [NumRegisters]bool

	cycle     int
	issued    int
	completed int
	stalls    int
}

// New returns an idle machine with the given number of execution units and
// reorder-buffer capacity. Returns ErrBadConfig for non-positive values.
func New(units, robSize int) (*Processor, error) {
	if units < 1 || robSize < 1 {
		return nil, fmt.Errorf("%w: units=%d rob=%d", ErrBadConfig, units, robSize)
	}
	return &Processor{
		robSize: robSize,
		units:   make([]*entry, units),
	}, nil
}

// Issue places in into the machine in program order.
//
// The instruction is rejected with ErrROBFull when the reorder buffer is
// at capacity and with ErrWAWHazard when its destination already has a
// write in flight; both count as stalls, and the caller retries after a
// Step. On success the destination is marked busy and the instruction
// waits in a reservation station until its sources are idle and a unit
// frees up.
func (p *Processor) Issue(in Instruction) error {
	if err := p.checkRegisters(in); err != nil {
		return err
	}
	if len(p.rob) >= p.robSize {
		p.stalls++
		return fmt.Errorf("%w: %d entries", ErrROBFull, p.robSize)
	}
	if p.busy[in.Dest] {
		p.stalls++
		return fmt.Errorf("%w: R%d write in flight", ErrWAWHazard, in.Dest)
	}

	e := &entry{inst: in, issuedAt: p.cycle}
	p.rob = append(p.rob, e)
	p.stations = append(p.stations, e)
	p.busy[in.Dest] = true
	p.issued++
	return nil
}

// Step advances the machine one cycle: commit, retire, dispatch.
func (p *Processor) Step() {
	p.cycle++

	// Commit the completed head of the ROB, in program order. Writeback
	// happens here, so architectural state is updated sequentially no
	// matter how execution was ordered.
	for len(p.rob) > 0 && p.rob[0].completed {
		e := p.rob[0]
		p.rob = p.rob[1:]
		p.busy[e.inst.Dest] = false
		p.writeback(e.inst)
	}

	// Retire units whose latency has elapsed.
	for i, e := range p.units {
		if e == nil {
			continue
		}
		if p.cycle-e.dispatchedAt >= e.inst.Class.Latency() {
			e.completed = true
			e.completedAt = p.cycle
			p.completed++
			p.units[i] = nil
		}
	}

	// Dispatch ready stations to free units, oldest first.
	remaining := p.stations[:0]
	for _, e := range p.stations {
		if !p.sourcesReady(e.inst) {
			remaining = append(remaining, e)
			continue
		}
		unit := p.freeUnit()
		if unit < 0 {
			remaining = append(remaining, e)
			continue
		}
		e.dispatched = true
		e.dispatchedAt = p.cycle
		p.units[unit] = e
	}
	p.stations = remaining
}

// Run steps the machine until it drains, the cycle budget runs out, or ctx
// is cancelled. Returns ErrNotDrained when maxCycles elapse with work
// still in flight.
func (p *Processor) Run(ctx context.Context, maxCycles int) error {
	for i := 0; i < maxCycles; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.Drained() {
			return nil
		}
		p.Step()
	}
	if !p.Drained() {
		return fmt.Errorf("%w: %d cycles", ErrNotDrained, maxCycles)
	}
	return nil
}

// Drained reports whether nothing is left in flight.
func (p *Processor) Drained() bool {
	if len(p.rob) > 0 || len(p.stations) > 0 {
		return false
	}
	for _, e := range p.units {
		if e != nil {
			return false
		}
	}
	return true
}

// Register returns the architectural value of register n, or 0 for an
// out-of-range n.
func (p *Processor) Register(n int) int {
	if n < 0 || n >= NumRegisters {
		return 0
	}
	return p.regs[n]
}

// Stats returns the machine's progress counters.
func (p *Processor) Stats() Stats {
	return Stats{Cycle: p.cycle, Issued: p.issued, Completed: p.completed, Stalls: p.stalls}
}

// Audit checks the machine against the sequential result: every register
// in expected must hold its value, and nothing may be stuck in a
// reservation station or sitting uncommitted in the ROB.
func (p *Processor) Audit(expected map[int]int) []Violation {
	var out []Violation
	for reg, want := range expected {
		if reg < 0 || reg >= NumRegisters || p.regs[reg] != want {
			out = append(out, Violation{
				Kind:   "register",
				Detail: fmt.Sprintf("R%d: expected %d, got %d", reg, want, p.Register(reg)),
			})
		}
	}
	if n := len(p.stations); n > 0 {
		out = append(out, Violation{
			Kind:   "stuck",
			Detail: fmt.Sprintf("%d instructions stuck in reservation stations", n),
		})
	}
	if n := len(p.rob); n > 0 {
		out = append(out, Violation{
			Kind:   "uncommitted",
			Detail: fmt.Sprintf("%d instructions uncommitted in reorder buffer", n),
		})
	}
	return out
}

// writeback applies an instruction's architectural effect at commit.
func (p *Processor) writeback(in Instruction) {
	switch in.Class {
	case Load:
		p.regs[in.Dest] = in.Imm
	case ALU:
		sum := in.Imm
		for _, s := range in.Src {
			sum += p.regs[s]
		}
		p.regs[in.Dest] = sum
	}
}

func (p *Processor) sourcesReady(in Instruction) bool {
	for _, s := range in.Src {
		// A source equal to the own destination sees the instruction's
		// own busy flag; the WAW check guarantees no other writer.
		if s != in.Dest && p.busy[s] {
			return false
		}
	}
	return true
}

func (p *Processor) freeUnit() int {
	for i, e := range p.units {
		if e == nil {
			return i
		}
	}
	return -1
}

func (p *Processor) checkRegisters(in Instruction) error {
	if in.Dest < 0 || in.Dest >= NumRegisters {
		return fmt.Errorf("%w: dest R%d", ErrBadRegister, in.Dest)
	}
	for _, s := range in.Src {
		if s < 0 || s >= NumRegisters {
			return fmt.Errorf("%w: src R%d", ErrBadRegister, s)
		}
	}
	return nil
}
