// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"
	"testing/quick"

	hl "github.com/db47h/datapath/hwlib"
)

func TestMux(t *testing.T) {
	// a, b, sel ordered from msb to lsb
	exp := []bool{false, false, false, true, true, false, true, true}
	for i, e := range exp {
		a, b, sel := i&4 != 0, i&2 != 0, i&1 != 0
		if out := hl.Mux(a, b, sel); out != e {
			t.Errorf("MUX a=%v, b=%v, sel=%v: expected %v, got %v", a, b, sel, e, out)
		}
	}
}

func TestDMux(t *testing.T) {
	f := func(in, sel bool) bool {
		a, b := hl.DMux(in, sel)
		if sel {
			return !a && b == in
		}
		return a == in && !b
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestMuxN(t *testing.T) {
	f := func(x, y uint8, sel bool) bool {
		out := hl.Uint64(hl.MuxN(hl.BitsN(uint64(x), 8), hl.BitsN(uint64(y), 8), sel))
		if sel {
			return out == uint64(y)
		}
		return out == uint64(x)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
