// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"testing"

	"github.com/db47h/datapath"
	"github.com/db47h/datapath/hwlib"
	"github.com/db47h/datapath/hwtest"
)

// latch is a behavioral model of an edge triggered register.
type latch struct {
	prev bool
	out  uint64
}

func (l *latch) Step(in uint64, clk bool) {
	if clk && !l.prev {
		l.out = in
	}
	l.prev = clk
}

func (l *latch) Output() uint64 { return l.out }

func TestCompareDevices(t *testing.T) {
	r := datapath.NewRegister(8)
	reg := hwtest.DeviceFuncs{
		StepFn:   func(in uint64, clk bool) { r.Load(hwlib.BitsN(in, 8), clk) },
		OutputFn: r.Uint64,
	}
	hwtest.CompareDevices(t, 8, 1000, &latch{}, reg)
}

func TestClocks(t *testing.T) {
	c := hwtest.Clocks("01 _- x")
	exp := []bool{false, true, false, true}
	if len(c) != len(exp) {
		t.Fatalf("expected %d levels, got %d", len(exp), len(c))
	}
	for i := range exp {
		if c[i] != exp[i] {
			t.Fatalf("level %d: expected %v, got %v", i, exp[i], c[i])
		}
	}
}
