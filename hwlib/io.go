// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// Uint64 returns the bits as an uint64. Bit 0 is lsb. Bits past the 64th are
// ignored.
//
func Uint64(bits []bool) uint64 {
	var out uint64
	for bit, v := range bits {
		if v && bit < 64 {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetUint64 sets the bits to the given uint64 value. Bits of v that do not fit
// in len(bits) are dropped.
//
func SetUint64(bits []bool, v uint64) {
	for bit := range bits {
		bits[bit] = bit < 64 && v&(1<<uint(bit)) != 0
	}
}

// BitsN returns the n low bits of v.
//
func BitsN(v uint64, n int) []bool {
	if n < 0 {
		n = 0
	}
	b := make([]bool, n)
	SetUint64(b, v)
	return b
}

// ToBits converts v to a Nibble wide bit vector. Only the low 4 bits of v are
// kept.
//
func ToBits(v uint8) []bool {
	return BitsN(uint64(v), Nibble)
}

// FromBits converts a bit vector to a byte. Only the first Nibble bits are
// used.
//
func FromBits(bits []bool) uint8 {
	if len(bits) > Nibble {
		bits = bits[:Nibble]
	}
	return uint8(Uint64(bits))
}

// ParseBits converts a pattern like "0101" or "_-_-" to a bit vector. '1' and
// '-' are high bits, '0' and '_' are low bits. Any other character is
// ignored, so that patterns like "01 01 01" can be used.
//
func ParseBits(pattern string) []bool {
	var out []bool
	for _, r := range pattern {
		switch r {
		case '1', '-':
			out = append(out, true)
		case '0', '_':
			out = append(out, false)
		}
	}
	return out
}
