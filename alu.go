// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

import (
	"github.com/db47h/datapath/hwlib"
	"github.com/pkg/errors"
)

// ALU is a 4 bits arithmetic logic unit with two operand registers and a
// result register.
//
// Combinational logic is evaluated on every call to Execute, but the result
// register only changes on a rising clock edge, like any other register.
//
type ALU struct {
	a, b   *Register
	result *Register
	clk    Edge // gates LOAD and STORE
}

// NewALU returns a new ALU with cleared registers.
//
func NewALU() *ALU {
	return &ALU{
		a:      NewRegister(hwlib.Nibble),
		b:      NewRegister(hwlib.Nibble),
		result: NewRegister(hwlib.Nibble),
	}
}

// LoadA loads data into register A on a rising edge of clk.
//
func (u *ALU) LoadA(data []bool, clk bool) { u.a.Load(data, clk) }

// LoadB loads data into register B on a rising edge of clk.
//
func (u *ALU) LoadB(data []bool, clk bool) { u.b.Load(data, clk) }

// Execute runs op on the current contents of registers A and B and loads the
// outcome into the result register with clk.
//
//	AND, OR, XOR: bitwise gate on A and B.
//	ADD: 4 bits ripple addition; the carry out is discarded.
//	LOAD: A = mem[B], low 4 bits only, on a rising edge of clk.
//	STORE: mem[B] = A, on a rising edge of clk.
//
// LOAD and STORE see the same edge: the one between the previous call to
// Execute and this one, regardless of how LoadA and LoadB were clocked.
//
// LOAD and STORE leave the result register unchanged. So does an undefined
// opcode, in which case Execute also returns an error wrapping ErrOpcode. This
// error is informational: the ALU state remains consistent and the caller may
// keep driving it.
//
// mem may be nil, in which case LOAD reads 0 and STORE is a no-op.
//
func (u *ALU) Execute(op Opcode, clk bool, mem *Memory) error {
	a, b := u.a.Output(), u.b.Output()
	edge := u.clk.Rising(clk)
	var (
		res []bool
		err error
	)

	switch op {
	case OpAND:
		res = hwlib.Bitwise(hwlib.And, a, b)
	case OpOR:
		res = hwlib.Bitwise(hwlib.Or, a, b)
	case OpXOR:
		res = hwlib.Bitwise(hwlib.Xor, a, b)
	case OpADD:
		res, _ = hwlib.RippleAdd(a, b)
	case OpLOAD:
		if edge {
			u.a.Set(hwlib.ToBits(mem.Read(addr(b))))
		}
	case OpSTORE:
		if edge {
			mem.Write(addr(b), byte(hwlib.Uint64(a)))
		}
	default:
		err = errors.Wrapf(ErrOpcode, "execute %v", op)
	}

	if res == nil {
		// re-latch the current value so that the result register keeps
		// tracking the clock.
		res = u.result.Output()
	}
	u.result.Load(res, clk)
	return err
}

// Result returns the contents of the result register.
//
func (u *ALU) Result() []bool { return u.result.Output() }

// RegA returns the contents of register A.
//
func (u *ALU) RegA() []bool { return u.a.Output() }

// RegB returns the contents of register B.
//
func (u *ALU) RegB() []bool { return u.b.Output() }

func addr(bits []bool) uint16 {
	return uint16(hwlib.Uint64(bits))
}
