// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

import "fmt"

// ProgramCounter is a 16 bits counter that increments on every rising clock
// edge. It addresses an externally owned Memory.
//
// The zero value is a counter at address 0 with a low clock.
//
type ProgramCounter struct {
	value uint16
	clk   Edge
}

// Update increments the counter on a rising edge of clk. The counter wraps
// from 0xffff back to 0.
//
func (pc *ProgramCounter) Update(clk bool) {
	if pc.clk.Rising(clk) {
		pc.value++
	}
}

// Set loads addr into the counter. It is not gated by the clock and does not
// affect edge detection.
//
func (pc *ProgramCounter) Set(addr uint16) { pc.value = addr }

// Get returns the current address.
//
func (pc *ProgramCounter) Get() uint16 { return pc.value }

// Read returns the byte at the current address in m.
//
func (pc *ProgramCounter) Read(m *Memory) byte { return m.Read(pc.value) }

func (pc *ProgramCounter) String() string {
	return fmt.Sprintf("%04x", pc.value)
}
