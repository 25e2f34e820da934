// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

import (
	"log/slog"

	"github.com/db47h/datapath/hwlib"
	"github.com/pkg/errors"
)

// Stats holds execution counters of a Machine.
//
type Stats struct {
	Cycles       uint64 // rising edges seen
	Instructions uint64 // valid opcodes executed
	Invalid      uint64 // undefined opcodes executed
}

// Machine is a minimal fetch/execute loop: on each step, it fetches the
// opcode addressed by the program counter, feeds it to the ALU and then
// updates the program counter, all with the same clock level.
//
// The memory is shared between the program counter and the ALU: programs and
// data live in the same address space.
//
type Machine struct {
	PC    ProgramCounter
	ALU   *ALU
	Mem   *Memory
	Clock *Clock

	// Strict makes Run stop at the first undefined opcode.
	Strict bool
	// Logger receives a debug record for every executed instruction and a
	// warning for undefined opcodes. If nil, nothing is logged.
	Logger *slog.Logger

	clk   Edge
	stats Stats
}

// NewMachine returns a new machine working on mem. Its clock runs two steps
// per cycle.
//
func NewMachine(mem *Memory) *Machine {
	return &Machine{
		ALU:   NewALU(),
		Mem:   mem,
		Clock: NewClock(2),
	}
}

var discard = slog.New(slog.DiscardHandler)

func (m *Machine) log() *slog.Logger {
	if m.Logger == nil {
		return discard
	}
	return m.Logger
}

// Preload loads a and b into the ALU operand registers. Only the low 4 bits
// are kept. The registers are driven through a complete low, high, low clock
// sequence so that they are ready to latch again on the next rising edge.
//
func (m *Machine) Preload(a, b uint8) {
	ba, bb := hwlib.ToBits(a), hwlib.ToBits(b)
	for _, clk := range []bool{false, true, false} {
		m.ALU.LoadA(ba, clk)
		m.ALU.LoadB(bb, clk)
	}
}

// Step advances the machine by one step with the given clock level. Callers
// driving the machine by hand must alternate clock levels for anything to
// happen.
//
// On a rising edge, Step returns an error wrapping ErrOpcode if the fetched
// opcode is undefined. The machine state stays consistent and it is safe to
// keep stepping.
//
func (m *Machine) Step(clk bool) error {
	at := m.PC.Get()
	op := Opcode(m.PC.Read(m.Mem))
	err := m.ALU.Execute(op, clk, m.Mem)
	m.PC.Update(clk)

	if !m.clk.Rising(clk) {
		return nil
	}
	m.stats.Cycles++
	if err != nil {
		m.stats.Invalid++
		m.log().Warn("undefined opcode", "pc", at, "opcode", uint8(op))
		return errors.Wrapf(err, "at pc %04x", at)
	}
	m.stats.Instructions++
	m.log().Debug("execute",
		"pc", at,
		"op", op.String(),
		"a", hwlib.FromBits(m.ALU.RegA()),
		"b", hwlib.FromBits(m.ALU.RegB()),
		"result", hwlib.FromBits(m.ALU.Result()))
	return nil
}

// stepUntil runs the machine clock until its level is level. It returns the
// first error reported by Step.
//
func (m *Machine) stepUntil(level bool) error {
	var err error
	for {
		clk := m.Clock.Next()
		if e := m.Step(clk); e != nil && err == nil {
			err = e
		}
		if clk == level {
			return err
		}
	}
}

// Tick runs the simulation until the rising edge of the clock, executing
// the current instruction.
//
func (m *Machine) Tick() error { return m.stepUntil(true) }

// Tock runs the simulation until the falling edge of the clock.
//
func (m *Machine) Tock() error { return m.stepUntil(false) }

// TickTock runs the simulation for a whole clock cycle.
//
func (m *Machine) TickTock() error {
	err := m.Tick()
	if e := m.Tock(); e != nil && err == nil {
		err = e
	}
	return err
}

// Run runs the machine for the given number of clock cycles. Undefined opcodes
// are skipped unless m.Strict is set, in which case Run stops and returns the
// error.
//
func (m *Machine) Run(cycles int) (Stats, error) {
	for i := 0; i < cycles; i++ {
		if err := m.TickTock(); err != nil && m.Strict {
			return m.stats, err
		}
	}
	return m.stats, nil
}

// Stats returns the execution counters.
//
func (m *Machine) Stats() Stats { return m.stats }
