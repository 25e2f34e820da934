// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the combinational building blocks of the datapath:
// logic gates, multiplexers, adders and bit vector helpers.
//
// All functions in this package are pure. Bit vectors are []bool slices with
// bit 0 as the least significant bit.
//
package hwlib

// Nibble is the width in bits of the ALU data path.
//
const Nibble = 4

// A Gate is a two input boolean function.
//
type Gate func(a, b bool) bool

// Not returns the complement of in.
//
//	Function: out = !in
//
func Not(in bool) bool { return !in }

// And returns a AND b.
//
//	Function: out = a && b
//
func And(a, b bool) bool { return a && b }

// Nand returns a NAND b.
//
//	Function: out = !(a && b)
//
func Nand(a, b bool) bool { return !(a && b) }

// Or returns a OR b.
//
//	Function: out = a || b
//
func Or(a, b bool) bool { return a || b }

// Nor returns a NOR b.
//
//	Function: out = !(a || b)
//
func Nor(a, b bool) bool { return !(a || b) }

// Xor returns a XOR b.
//
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b bool) bool { return a && !b || !a && b }

// Xnor returns a XNOR b.
//
//	Function: out = a && b || !a && !b
//
func Xnor(a, b bool) bool { return a && b || !a && !b }

// Bitwise applies g to each pair of bits of a and b. The returned slice has
// the length of the shorter input.
//
//	Function: for i := range out { out[i] = g(a[i], b[i]) }
//
func Bitwise(g Gate, a, b []bool) []bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = g(a[i], b[i])
	}
	return out
}

// NotN returns the complement of every bit in in.
//
func NotN(in []bool) []bool {
	out := make([]bool, len(in))
	for i, v := range in {
		out[i] = !v
	}
	return out
}
