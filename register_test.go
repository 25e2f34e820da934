// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package datapath_test

import (
	"testing"

	dp "github.com/db47h/datapath"
	"github.com/db47h/datapath/hwlib"
	"github.com/db47h/datapath/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := dp.NewRegister(4)
	require.Equal(t, 4, r.Width())
	assert.Equal(t, []bool{false, false, false, false}, r.Output())

	r.Load(hwlib.ToBits(0xa), true)
	assert.Equal(t, uint64(0xa), r.Uint64())

	// no edge
	r.Load(hwlib.ToBits(0x5), true)
	assert.Equal(t, uint64(0xa), r.Uint64())
	r.Load(hwlib.ToBits(0x5), false)
	assert.Equal(t, uint64(0xa), r.Uint64())

	r.Load(hwlib.ToBits(0x5), true)
	assert.Equal(t, uint64(0x5), r.Uint64())

	// reads are idempotent
	assert.Equal(t, r.Output(), r.Output())
}

func TestRegister_Set(t *testing.T) {
	r := dp.NewRegister(4)
	r.Load(hwlib.ToBits(0x3), true)
	r.Set(hwlib.ToBits(0x9))
	assert.Equal(t, uint64(0x9), r.Uint64())
	r.Set([]bool{true})
	assert.Equal(t, uint64(0x1), r.Uint64())

	// the cells kept their clock history: high, so no edge yet
	r.Load(hwlib.ToBits(0x6), true)
	assert.Equal(t, uint64(0x1), r.Uint64())
	r.Load(hwlib.ToBits(0x6), false)
	r.Load(hwlib.ToBits(0x6), true)
	assert.Equal(t, uint64(0x6), r.Uint64())
}

func TestRegister_truncate(t *testing.T) {
	r := dp.NewRegister(4)
	r.Load([]bool{true, true, true, true, true, true}, true)
	assert.Equal(t, uint64(0xf), r.Uint64())

	r.Load(nil, false)
	r.Load([]bool{true}, true)
	assert.Equal(t, uint64(1), r.Uint64(), "missing bits must load false")

	assert.Equal(t, 0, dp.NewRegister(-3).Width())
}

func TestRegister_output_copy(t *testing.T) {
	r := dp.NewRegister(4)
	r.Load(hwlib.ToBits(0xf), true)
	out := r.Output()
	out[0] = false
	assert.Equal(t, uint64(0xf), r.Uint64())
}

// a register behaves exactly like independent flip flops.
func TestRegister_vs_DFF(t *testing.T) {
	const bits = 8
	r := dp.NewRegister(bits)
	var cells [bits]dp.DFF

	reg := hwtest.DeviceFuncs{
		StepFn:   func(in uint64, clk bool) { r.Load(hwlib.BitsN(in, bits), clk) },
		OutputFn: r.Uint64,
	}
	dffs := hwtest.DeviceFuncs{
		StepFn: func(in uint64, clk bool) {
			for i := range cells {
				cells[i].Update(in&(1<<uint(i)) != 0, clk)
			}
		},
		OutputFn: func() uint64 {
			var out uint64
			for i := range cells {
				if cells[i].Output() {
					out |= 1 << uint(i)
				}
			}
			return out
		},
	}
	hwtest.CompareDevices(t, bits, 1000, dffs, reg)
}
