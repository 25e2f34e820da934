// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath

// Edge is a rising edge detector. It remembers the clock level seen by the
// previous call to Rising.
//
// The zero value is ready to use and behaves as if the clock was low.
//
type Edge struct {
	prev bool
}

// Rising reports whether clk is high while the previously observed level was
// low. The given level is always recorded for the next call.
//
func (e *Edge) Rising(clk bool) bool {
	r := clk && !e.prev
	e.prev = clk
	return r
}

// Prev returns the last observed clock level.
//
func (e *Edge) Prev() bool { return e.prev }

// DFF is a clocked data flip flop, the single bit storage cell every other
// sequential component is built from.
//
//	Inputs: in, clk
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
// The zero value is a cleared flip flop.
//
type DFF struct {
	state bool
	clk   Edge
}

// Update samples data on a rising edge of clk.
//
func (d *DFF) Update(data, clk bool) {
	if d.clk.Rising(clk) {
		d.state = data
	}
}

// Output returns the stored bit.
//
func (d *DFF) Output() bool { return d.state }

// DLatch is a level sensitive latch: it is transparent while enable is high
// and holds its state while enable is low.
//
type DLatch struct {
	state bool
}

// Update copies data into the latch if enable is set.
//
func (l *DLatch) Update(data, enable bool) {
	if enable {
		l.state = data
	}
}

// Output returns the stored bit.
//
func (l *DLatch) Output() bool { return l.state }
