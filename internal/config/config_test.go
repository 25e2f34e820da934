// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/datapath"
	"github.com/db47h/datapath/hwlib"
	"github.com/db47h/datapath/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	m, err := c.NewMachine(nil)
	require.NoError(t, err)
	_, err = m.Run(c.Cycles)
	require.NoError(t, err)
	assert.Equal(t, uint8(13), hwlib.FromBits(m.ALU.Result()))
}

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(`
memory_size: 32
program: [LOAD, add, 5]
data:
  12: 4
a: 9
b: 12
cycles: 3
strict: true
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 32, c.MemorySize)
	assert.Equal(t, []string{"LOAD", "add", "5"}, c.Program)
	assert.Equal(t, map[uint16]uint8{12: 4}, c.Data)
	assert.True(t, c.Strict)
	assert.Equal(t, uint(2), c.StepsPerCycle, "missing fields keep their default")

	ops, err := c.Opcodes()
	require.NoError(t, err)
	assert.Equal(t, []datapath.Opcode{datapath.OpLOAD, datapath.OpADD, datapath.OpSTORE}, ops)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	m, err := c.NewMachine(nil)
	require.NoError(t, err)
	s, err := m.Run(c.Cycles)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.Instructions)
	// LOAD 4, ADD 4+12, STORE 4 at 12
	assert.Equal(t, byte(4), m.Mem.Read(12))
	assert.Equal(t, uint8(0), hwlib.FromBits(m.ALU.Result()))
}

func TestParse_cycles(t *testing.T) {
	td := []struct {
		in  string
		exp int
	}{
		{"program: [OR, AND]", 2},
		{"program: []", 0},
		{"program: [OR, AND]\ncycles: 5", 5},
		{"cycles: 0", 0},
		{"a: 1", 4},
	}
	for _, d := range td {
		c, err := config.Parse([]byte(d.in))
		require.NoError(t, err, d.in)
		assert.Equal(t, d.exp, c.Cycles, d.in)
	}
}

func TestNewMachine_invalid(t *testing.T) {
	c := config.Default()
	c.Program = []string{"AND", "NOP"}
	_, err := c.NewMachine(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, datapath.ErrOpcode))

	c = config.Default()
	c.MemorySize = 0
	_, err = c.NewMachine(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	td := []struct {
		name string
		in   string
	}{
		{"memory", "memory_size: 0"},
		{"memory_max", "memory_size: 70000"},
		{"fit", "memory_size: 2\nprogram: [AND, OR, XOR]"},
		{"opcode", "program: [NOP]"},
		{"data", "memory_size: 16\ndata: {16: 1}"},
		{"cycles", "cycles: -1"},
		{"level", "log_level: loud"},
		{"yaml", "program: {"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := config.Parse([]byte(d.in))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("program: [NOP]"))
	assert.True(t, errors.Is(err, datapath.ErrOpcode))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("program: [XOR]\ncycles: 1\n"), 0o644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"XOR"}, c.Program)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
