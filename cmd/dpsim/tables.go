// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/db47h/datapath"
	"github.com/db47h/datapath/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var bools = []bool{false, true}

func newAddersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adders",
		Short: "Print the half adder, full adder and 4 bits adder tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return adders(cmd.OutOrStdout())
		},
	}
}

func adders(w io.Writer) error {
	st := newStyler(w)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, st.title("half adder"))
	fmt.Fprintln(tw, "a\tb\tsum\tcarry")
	for _, a := range bools {
		for _, b := range bools {
			s, c := hwlib.HalfAdder(a, b)
			fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", a, b, s, c)
		}
	}

	fmt.Fprintln(tw, "\n"+st.title("full adder"))
	fmt.Fprintln(tw, "a\tb\tcin\tsum\tcout")
	for _, a := range bools {
		for _, b := range bools {
			for _, cin := range bools {
				s, c := hwlib.FullAdder(a, b, cin)
				fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\n", a, b, cin, s, c)
			}
		}
	}

	fmt.Fprintln(tw, "\n"+st.title("4 bits adder"))
	fmt.Fprintln(tw, "a\tb\tsum\tcarry")
	for _, p := range [][2]uint8{{0x5, 0x3}, {0xa, 0x5}, {0xf, 0x1}} {
		sum, c := hwlib.RippleAdd(hwlib.ToBits(p[0]), hwlib.ToBits(p[1]))
		fmt.Fprintf(tw, "%04b\t%04b\t%04b\t%v\n", p[0], p[1], hwlib.FromBits(sum), c)
	}
	return tw.Flush()
}

func newDFFCmd() *cobra.Command {
	var clock, data string
	cmd := &cobra.Command{
		Use:   "dff",
		Short: "Print the output of a D flip flop for a clock and data sequence",
		Long: `Dff feeds a D flip flop with a clock and a data sequence and prints its output
after every step. Sequences are strings of 0 and 1 (or _ and -).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dff(cmd.OutOrStdout(), hwlib.ParseBits(clock), hwlib.ParseBits(data))
		},
	}
	cmd.Flags().StringVar(&clock, "clock", "010101", "clock sequence")
	cmd.Flags().StringVar(&data, "data", "110011", "data sequence")
	return cmd
}

func dff(w io.Writer, clock, data []bool) error {
	if len(clock) != len(data) {
		return errors.Errorf("clock and data sequences differ in length (%d != %d)", len(clock), len(data))
	}
	st := newStyler(w)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, st.title("D flip flop"))
	fmt.Fprintln(tw, "clock\tdata\toutput")
	var d datapath.DFF
	for i, clk := range clock {
		d.Update(data[i], clk)
		fmt.Fprintf(tw, "%v\t%v\t%v\n", clk, data[i], d.Output())
	}
	return tw.Flush()
}
