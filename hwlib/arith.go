// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// HalfAdder adds two bits.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b bool) (s, c bool) {
	return Xor(a, b), And(a, b)
}

// FullAdder adds three bits. It is built from two half adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(a, b, cin bool) (s, cout bool) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, Or(c0, c1)
}

// RippleAdd adds two bit vectors by chaining full adders from the least
// significant bit up. The sum has the length of the shorter input and any
// overflow is reported in c.
//
//	Inputs: a[bits], b[bits]
//	Outputs: sum[bits], c
//
func RippleAdd(a, b []bool) (sum []bool, c bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum = make([]bool, n)
	for i := range sum {
		sum[i], c = FullAdder(a[i], b[i], c)
	}
	return sum, c
}
