// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing clocked components.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/datapath/hwlib"
)

// A Device is a clocked component under test.
//
type Device interface {
	// Step drives the device inputs with in and its clock with clk.
	Step(in uint64, clk bool)
	// Output returns the current device outputs.
	Output() uint64
}

// DeviceFuncs adapts a pair of functions to the Device interface.
//
type DeviceFuncs struct {
	StepFn   func(in uint64, clk bool)
	OutputFn func() uint64
}

// Step implements Device.
//
func (d DeviceFuncs) Step(in uint64, clk bool) { d.StepFn(in, clk) }

// Output implements Device.
//
func (d DeviceFuncs) Output() uint64 { return d.OutputFn() }

// Clocks converts a clock pattern to a sequence of clock levels. See
// hwlib.ParseBits for the pattern syntax.
//
func Clocks(pattern string) []bool { return hwlib.ParseBits(pattern) }

// CompareDevices takes two devices and compares their outputs given the same
// inputs and clock levels.
//
// Both devices are first cleared with a few cycles of all zero inputs, then
// driven with all ones, then with steps random inputs of the given width in
// bits and random clock levels. Outputs are compared after every step.
//
func CompareDevices(t testing.TB, bits int, steps int, d1, d2 Device) {
	t.Helper()

	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))
	mask := uint64(1)<<uint(bits) - 1
	if bits >= 64 {
		mask = ^uint64(0)
	}

	var trace strings.Builder
	step := func(in uint64, clk bool) {
		t.Helper()
		d1.Step(in, clk)
		d2.Step(in, clk)
		fmt.Fprintf(&trace, " %x/%d", in, b2i(clk))
		if o1, o2 := d1.Output(), d2.Output(); o1 != o2 {
			t.Fatalf("seed %d: outputs differ after steps%s\nExpected %#x\nGot %#x", seed, trace.String(), o1, o2)
		}
	}

	start := time.Now()

	// try all 0
	for _, clk := range Clocks("0101") {
		step(0, clk)
	}
	// try all 1
	for _, clk := range Clocks("0101") {
		step(mask, clk)
	}

	for i := 0; i < steps; i++ {
		step(rnd.Uint64()&mask, rnd.Int63()&(1<<62) != 0)
	}

	t.Logf("%d steps in %v", steps+8, time.Since(start))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
