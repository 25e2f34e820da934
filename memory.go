// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

import "github.com/pkg/errors"

// MaxMemory is the size of the 16 bits address space.
//
const MaxMemory = 1 << 16

// ErrAddress is returned by the checked Memory operations when an address
// falls outside of the memory.
//
var ErrAddress = errors.New("address out of range")

// Memory is a byte addressable store shared by the ProgramCounter and the
// ALU. Its size is fixed at creation.
//
// Out of range accesses never fail: reads return 0 and writes are dropped.
// Callers that need feedback should check addresses with Contains or use
// Load.
//
// A nil *Memory behaves like a zero length memory.
//
type Memory struct {
	data []byte
}

// NewMemory returns a zeroed memory of the given size in bytes. The size is
// clamped to [0, MaxMemory].
//
func NewMemory(size int) *Memory {
	if size < 0 {
		size = 0
	}
	if size > MaxMemory {
		size = MaxMemory
	}
	return &Memory{data: make([]byte, size)}
}

// Len returns the memory size in bytes.
//
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// Contains returns true if addr is a valid address.
//
func (m *Memory) Contains(addr uint16) bool {
	return int(addr) < m.Len()
}

// Read returns the byte at addr, or 0 if addr is out of range.
//
func (m *Memory) Read(addr uint16) byte {
	if !m.Contains(addr) {
		return 0
	}
	return m.data[addr]
}

// Write stores v at addr. Writes to out of range addresses are silently
// dropped.
//
func (m *Memory) Write(addr uint16, v byte) {
	if m.Contains(addr) {
		m.data[addr] = v
	}
}

// Load copies p into memory starting at address start. Unlike Write, it
// reports an error wrapping ErrAddress if p does not fit, in which case the
// memory is left untouched.
//
func (m *Memory) Load(start uint16, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if end := int(start) + len(p); end > m.Len() {
		return errors.Wrapf(ErrAddress, "load of %d bytes at %04x (memory size %d)", len(p), start, m.Len())
	}
	copy(m.data[start:], p)
	return nil
}

// Bytes returns a copy of the memory contents.
//
func (m *Memory) Bytes() []byte {
	out := make([]byte, m.Len())
	if m != nil {
		copy(out, m.data)
	}
	return out
}
