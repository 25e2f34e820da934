// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

import "github.com/db47h/datapath/hwlib"

// Register is a fixed width array of DFFs loaded in parallel.
//
type Register struct {
	cells []DFF
}

// NewRegister returns a cleared register of the given width in bits. A
// negative width yields a zero width register.
//
func NewRegister(bits int) *Register {
	if bits < 0 {
		bits = 0
	}
	return &Register{cells: make([]DFF, bits)}
}

// Width returns the register width in bits.
//
func (r *Register) Width() int { return len(r.cells) }

// Load forwards data[i] and clk to cell i. All cells see the same clock level
// so either every cell latches or none does.
//
// Cells past the end of data load false, and bits of data past the register
// width are ignored.
//
func (r *Register) Load(data []bool, clk bool) {
	for i := range r.cells {
		r.cells[i].Update(i < len(data) && data[i], clk)
	}
}

// Set overwrites the contents of all cells, bypassing their clock inputs. It is
// meant for devices that own the register and gate writes on their own edge.
// Width mismatches are handled as in Load.
//
func (r *Register) Set(data []bool) {
	for i := range r.cells {
		r.cells[i].state = i < len(data) && data[i]
	}
}

// Output returns the state of all cells. Bit 0 is lsb.
//
func (r *Register) Output() []bool {
	out := make([]bool, len(r.cells))
	for i := range r.cells {
		out[i] = r.cells[i].Output()
	}
	return out
}

// Uint64 returns the register contents as an unsigned integer.
//
func (r *Register) Uint64() uint64 {
	return hwlib.Uint64(r.Output())
}
