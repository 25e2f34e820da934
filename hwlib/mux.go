// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// Mux returns a multiplexer output.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel bool) bool {
	if sel {
		return b
	}
	return a
}

// DMux returns the outputs of a demultiplexer.
//
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel bool) (a, b bool) {
	if sel {
		return false, in
	}
	return in, false
}

// MuxN selects bus a or bus b. The returned slice has the length of the
// shorter input.
//
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func MuxN(a, b []bool, sel bool) []bool {
	return Bitwise(func(x, y bool) bool { return Mux(x, y, sel) }, a, b)
}
