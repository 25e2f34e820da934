// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

// Clock generates the square wave clock signal driving a Machine.
//
// A clock cycle is made of a fixed number of simulation steps: the signal is
// low during the first half of the cycle and high during the second half.
// The rising edge is therefore in the middle of a cycle.
//
type Clock struct {
	tpc  uint // steps per cycle
	tick uint
}

// NewClock returns a new clock with a low signal.
//
// stepsPerCycle indicates how many simulation steps make up one clock cycle.
// It is rounded up to the next power of two and is at least 2.
//
func NewClock(stepsPerCycle uint) *Clock {
	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	return &Clock{tpc: stepsPerCycle}
}

// Level returns the current level of the clock signal.
//
func (c *Clock) Level() bool {
	return c.tick&(c.tpc-1) >= c.tpc/2
}

// Next advances the clock by one step and returns the new level.
//
func (c *Clock) Next() bool {
	c.tick++
	return c.Level()
}

// Sequence advances the clock by n steps and returns the levels seen.
//
func (c *Clock) Sequence(n int) []bool {
	if n < 0 {
		n = 0
	}
	s := make([]bool, n)
	for i := range s {
		s[i] = c.Next()
	}
	return s
}

// Steps returns the value of the step counter.
//
func (c *Clock) Steps() uint { return c.tick }

// SPC returns the stepsPerCycle value.
//
func (c *Clock) SPC() uint { return c.tpc }

// Cycles returns the number of rising edges since the clock was created.
//
func (c *Clock) Cycles() uint {
	return (c.tick + c.tpc/2) / c.tpc
}

// AtTick returns true if the current step is a rising edge.
//
func (c *Clock) AtTick() bool {
	return c.tick&(c.tpc-1) == c.tpc/2
}

// AtTock returns true if the current step is a falling edge.
//
func (c *Clock) AtTock() bool {
	return c.tick > 0 && c.tick&(c.tpc-1) == 0
}
