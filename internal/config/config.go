// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the description of a machine run: memory size,
// program, initial data and run length.
//
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/datapath"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a machine and how long to run it.
//
// Example:
//
//	memory_size: 256
//	program: [LOAD, ADD, STORE]
//	data:
//	  12: 4
//	a: 0
//	b: 12
//	cycles: 3
//
type Config struct {
	MemorySize    int              `yaml:"memory_size"`
	Program       []string         `yaml:"program"` // opcode mnemonics or numbers, loaded at address 0
	Data          map[uint16]uint8 `yaml:"data"`    // address: value
	A             uint8            `yaml:"a"`
	B             uint8            `yaml:"b"`
	Cycles        int              `yaml:"cycles"`
	StepsPerCycle uint             `yaml:"steps_per_cycle"`
	Strict        bool             `yaml:"strict"`
	LogLevel      string           `yaml:"log_level"`
}

// Default returns the default configuration: the AND, OR, XOR, ADD sweep
// over A=10 and B=3.
//
func Default() *Config {
	return &Config{
		MemorySize:    256,
		Program:       []string{"AND", "OR", "XOR", "ADD"},
		A:             10,
		B:             3,
		Cycles:        4,
		StepsPerCycle: 2,
		LogLevel:      "info",
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their default value.
//
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(b)
}

// Parse parses a YAML configuration on top of the defaults and validates it.
// A configuration that sets a program but no cycle count runs the program
// once.
//
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	var set struct {
		Program *[]string `yaml:"program"`
		Cycles  *int      `yaml:"cycles"`
	}
	if err := yaml.Unmarshal(b, &set); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if set.Program != nil && set.Cycles == nil {
		c.Cycles = len(c.Program)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for consistency.
//
func (c *Config) Validate() error {
	_, err := c.validate()
	return err
}

// validate checks the configuration and returns the parsed program.
func (c *Config) validate() ([]datapath.Opcode, error) {
	if c.MemorySize <= 0 || c.MemorySize > datapath.MaxMemory {
		return nil, errors.Errorf("memory_size %d out of range [1, %d]", c.MemorySize, datapath.MaxMemory)
	}
	if len(c.Program) > c.MemorySize {
		return nil, errors.Errorf("program of %d bytes does not fit in %d bytes of memory", len(c.Program), c.MemorySize)
	}
	ops, err := c.Opcodes()
	if err != nil {
		return nil, err
	}
	for addr := range c.Data {
		if int(addr) >= c.MemorySize {
			return nil, errors.Wrapf(datapath.ErrAddress, "data at %04x", addr)
		}
	}
	if c.Cycles < 0 {
		return nil, errors.Errorf("negative cycle count %d", c.Cycles)
	}
	if _, err := c.Level(); err != nil {
		return nil, err
	}
	return ops, nil
}

// Opcodes returns the program as opcodes.
//
func (c *Config) Opcodes() ([]datapath.Opcode, error) {
	ops := make([]datapath.Opcode, len(c.Program))
	for i, s := range c.Program {
		op, err := datapath.ParseOpcode(s)
		if err != nil {
			return nil, errors.Wrapf(err, "program[%d]", i)
		}
		ops[i] = op
	}
	return ops, nil
}

// Level returns the configured log level.
//
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return l, errors.Wrap(err, "log_level")
	}
	return l, nil
}

// NewMachine builds a machine from the configuration: memory is allocated and
// filled with the program and data, and the operand registers are preloaded.
//
func (c *Config) NewMachine(logger *slog.Logger) (*datapath.Machine, error) {
	ops, err := c.validate()
	if err != nil {
		return nil, err
	}
	p := make([]byte, len(ops))
	for i, op := range ops {
		p[i] = byte(op)
	}
	mem := datapath.NewMemory(c.MemorySize)
	if err := mem.Load(0, p); err != nil {
		return nil, errors.Wrap(err, "load program")
	}
	for addr, v := range c.Data {
		mem.Write(addr, v)
	}

	m := datapath.NewMachine(mem)
	m.Clock = datapath.NewClock(c.StepsPerCycle)
	m.Strict = c.Strict
	m.Logger = logger
	m.Preload(c.A, c.B)
	return m, nil
}
