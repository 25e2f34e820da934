// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/datapath"
	"github.com/db47h/datapath/hwlib"
	"github.com/db47h/datapath/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runOptions struct {
	config  string
	program []string
	a, b    uint8
	cycles  int
	memory  int
	spc     uint
	strict  bool
}

func newRunCmd(level *string) *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a program and print a trace of every clock cycle",
		Long: `Run loads a program at address 0, preloads the ALU operand registers and
runs the machine for the given number of clock cycles.

Without a configuration file, the program is the AND, OR, XOR, ADD sweep over
A=10 and B=3. Flags override configuration file values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			if *level != "" {
				c.LogLevel = *level
			}
			return run(cmd.OutOrStdout(), c)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "YAML configuration `file`")
	f.StringSliceVarP(&o.program, "program", "p", nil, "comma separated opcodes (mnemonics or numbers)")
	f.Uint8VarP(&o.a, "a", "a", 0, "initial value of register A")
	f.Uint8VarP(&o.b, "b", "b", 0, "initial value of register B")
	f.IntVarP(&o.cycles, "cycles", "n", 0, "number of clock cycles to run")
	f.IntVar(&o.memory, "memory", 0, "memory size in bytes")
	f.UintVar(&o.spc, "spc", 0, "simulation steps per clock cycle")
	f.BoolVar(&o.strict, "strict", false, "stop at the first undefined opcode")
	return cmd
}

// load returns the configuration file, or the defaults, with flag overrides
// applied.
//
func (o *runOptions) load(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if o.config != "" {
		var err error
		if c, err = config.Load(o.config); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	if f.Changed("program") {
		c.Program = o.program
		if !f.Changed("cycles") {
			c.Cycles = len(o.program)
		}
	}
	if f.Changed("a") {
		c.A = o.a
	}
	if f.Changed("b") {
		c.B = o.b
	}
	if f.Changed("cycles") {
		c.Cycles = o.cycles
	}
	if f.Changed("memory") {
		c.MemorySize = o.memory
	}
	if f.Changed("spc") {
		c.StepsPerCycle = o.spc
	}
	if f.Changed("strict") {
		c.Strict = o.strict
	}
	return c, nil
}

func run(w io.Writer, c *config.Config) error {
	level, err := c.Level()
	if err != nil {
		return err
	}
	m, err := c.NewMachine(newLogger(level))
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	st := newStyler(w)
	fmt.Fprintln(w, st.header(fmt.Sprintf("%-6s %-6s %-12s %4s %4s %6s", "cycle", "pc", "op", "A", "B", "result")))
	for i := 0; i < c.Cycles; i++ {
		at := m.PC.Get()
		op := datapath.Opcode(m.PC.Read(m.Mem))
		err := m.TickTock()
		line := fmt.Sprintf("%-6d %-6s %-12v %04b %04b %6d", i, fmt.Sprintf("%04x", at), op,
			hwlib.FromBits(m.ALU.RegA()), hwlib.FromBits(m.ALU.RegB()), hwlib.FromBits(m.ALU.Result()))
		if err != nil {
			fmt.Fprintln(w, st.warn(line+"  (undefined)"))
			if c.Strict {
				return err
			}
			continue
		}
		fmt.Fprintln(w, line)
	}

	s := m.Stats()
	fmt.Fprintf(w, "%d cycles, %d instructions, %d undefined\n", s.Cycles, s.Instructions, s.Invalid)
	return nil
}
