// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// An Opcode selects the ALU operation. Values are stable: programs stored in
// Memory refer to operations by these numbers.
//
type Opcode uint8

// ALU opcodes.
//
const (
	OpAND   Opcode = iota // result = a & b
	OpOR                  // result = a | b
	OpXOR                 // result = a ^ b
	OpADD                 // result = (a + b) & 0xf
	OpLOAD                // a = mem[b]
	OpSTORE               // mem[b] = a
	opCount
)

// ErrOpcode is returned when the ALU is asked to execute an opcode outside of
// the defined set.
//
var ErrOpcode = errors.New("invalid opcode")

var opNames = [...]string{
	OpAND:   "AND",
	OpOR:    "OR",
	OpXOR:   "XOR",
	OpADD:   "ADD",
	OpLOAD:  "LOAD",
	OpSTORE: "STORE",
}

// Valid returns true if op is a defined opcode.
//
func (op Opcode) Valid() bool { return op < opCount }

func (op Opcode) String() string {
	if op.Valid() {
		return opNames[op]
	}
	return "Opcode(" + strconv.Itoa(int(op)) + ")"
}

// ParseOpcode returns the opcode for the given mnemonic (case insensitive) or
// decimal number. Numbers outside of the defined set are accepted so that
// programs can exercise invalid opcodes; mnemonics must be known.
//
func ParseOpcode(s string) (Opcode, error) {
	s = strings.TrimSpace(s)
	for i, n := range opNames {
		if strings.EqualFold(s, n) {
			return Opcode(i), nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrOpcode, "parse %q", s)
	}
	return Opcode(v), nil
}
