// Package pipeline models a small out-of-order processor: bounded reorder
// buffer, reservation stations, parallel execution units and a 32-register
// file guarded by a busy scoreboard.
//
// What
//
//   - Issue places an instruction in program order, rejecting structural
//     (ROB full) and write-after-write hazards.
//   - Step advances one cycle in three phases: commit the completed head
//     of the reorder buffer in order, retire execution units whose latency
//     has elapsed, then dispatch ready reservation stations to free units.
//   - Run steps until the machine drains or a cycle budget expires.
//   - Audit compares the final register file against the sequential
//     result and flags stuck or uncommitted instructions.
//
// Why
//
//	Out-of-order machines reorder execution but must never reorder
//	architectural effects. The model keeps both views: instructions
//	execute whenever operands and a unit are free, yet writeback happens
//	strictly in program order at commit. A dependency bug shows up either
//	as a wrong final register or as a machine that never drains, and
//	Audit catches both.
//
// Latencies
//
//	ALU 1, Load 3, Store 1, Branch 1, Nop 1 cycles.
//
// Errors
//
//   - ErrBadConfig    — non-positive unit count or ROB size.
//   - ErrROBFull      — structural hazard, reorder buffer exhausted.
//   - ErrWAWHazard    — destination register already pending a write.
//   - ErrBadRegister  — register outside [0,32).
//   - ErrNotDrained   — Run's cycle budget expired with work in flight.
//
// Usage
//
//	p, _ := pipeline.New(2, 8)
//	_ = p.Issue(pipeline.Instruction{Class: pipeline.Load, Src: []int{0}, Dest: 1, Imm: 10})
//	_ = p.Issue(pipeline.Instruction{Class: pipeline.ALU, Src: []int{1}, Dest: 2, Imm: 5})
//	_ = p.Run(context.Background(), 20)
//	fmt.Println(p.Register(2)) // 15
package pipeline
