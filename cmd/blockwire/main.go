package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blockwire/blockwire/pkg/report"
	"github.com/blockwire/blockwire/pkg/sim"
	"github.com/blockwire/blockwire/pkg/verify"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blockwire",
		Short: "Digital-logic circuit simulator — build, evaluate, and verify composed blocks",
	}

	rootCmd.AddCommand(buildCmd(), evalCmd(), verifyCmd(), ramCmd(), traceCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <name> [params...]",
		Short: "Construct a named artifact and print its input/output widths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			b, err := sim.Build(args[0], params...)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d -> %d\n", args[0], b.In(), b.Out())
			return nil
		},
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <name> [params...] <bits>",
		Short: "Pure-evaluate a named artifact on a bit-vector argument",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			bitArg := args[len(args)-1]
			params, err := parseInts(args[1 : len(args)-1])
			if err != nil {
				return err
			}
			b, err := sim.Build(name, params...)
			if err != nil {
				return err
			}
			in, err := parseBitString(bitArg)
			if err != nil {
				return err
			}
			if len(in) != b.In() {
				return fmt.Errorf("eval: %s expects %d input bits, got %d", name, b.In(), len(in))
			}
			out := b.Eval(in)
			fmt.Printf("%s(%s) = %s\n", name, bitArg, formatBitString(out))
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	var workers int
	var samples int
	var output string
	var checkpoint string

	cmd := &cobra.Command{
		Use:   "verify <name> [params...]",
		Short: "Run an exhaustive or sampled correctness sweep over a named artifact",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			sweep, err := verify.SweepFor(args[0], params, samples)
			if err != nil {
				return err
			}
			summary, err := verify.NewWorkerPool(workers).RunCheckpointed(sweep, checkpoint)
			if err != nil {
				return err
			}
			printSummary(summary)
			if output != "" {
				if err := report.WriteJSON(output, summary); err != nil {
					return err
				}
				fmt.Printf("written to %s\n", output)
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d/%d cases failed", summary.Failed, summary.Cases)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of workers (0 = NumCPU)")
	cmd.Flags().IntVar(&samples, "samples", 0, "Sample count for sweeps too large to enumerate (0 = default)")
	cmd.Flags().StringVar(&output, "output", "", "Write the JSON summary to this path")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "Checkpoint file: resumes from it if present, kept up to date until the sweep finishes, removed on success")
	return cmd
}

func ramCmd() *cobra.Command {
	var addrWidth, dataWidth int
	cmd := &cobra.Command{
		Use:   "ram",
		Short: "Write-then-read verification sweep over a Memory<a,b> instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := verify.RAM(addrWidth, dataWidth)
			printSummary(summary)
			if summary.Failed > 0 {
				return fmt.Errorf("%d/%d addresses failed", summary.Failed, summary.Cases)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&addrWidth, "addr", 4, "Address width in bits (2^addr rows)")
	cmd.Flags().IntVar(&dataWidth, "data", 8, "Data width in bits")
	return cmd
}

func traceCmd() *cobra.Command {
	var ticks int
	var bitArg string
	cmd := &cobra.Command{
		Use:   "trace <name> [params...]",
		Short: "Step a stateful artifact for N ticks, printing each tick's clock/output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			b, err := sim.Build(args[0], params...)
			if err != nil {
				return err
			}
			traced := sim.NewTrace(args[0], b)
			in, err := parseBitString(bitArg)
			if err != nil {
				return err
			}
			if len(in) != 0 && len(in) != traced.In() {
				return fmt.Errorf("trace: %s expects %d input bits per tick, got %d", args[0], traced.In(), len(in))
			}
			driver := sim.NewClocked(traced)
			log := driver.Run(ticks, func(i int, clockHigh bool) []bool { return in })
			for _, t := range log {
				fmt.Printf("tick %3d: clock=%-5v rising=%-5v out=%s\n", t.N, t.Clock, t.Rising, formatBitString(t.Output))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 10, "Number of clock ticks to drive")
	cmd.Flags().StringVar(&bitArg, "in", "", "Fixed input bit-vector held for every tick (empty for a 0-input artifact such as clock)")
	return cmd
}

func printSummary(s report.Summary) {
	fmt.Printf("%s: %d/%d passed\n", s.Artifact, s.Cases-s.Failed, s.Cases)
	for i, m := range s.Mismatches {
		if i >= 20 {
			fmt.Printf("  ... %d more\n", len(s.Mismatches)-20)
			break
		}
		fmt.Printf("  FAIL in=%s got=%s want=%s\n", formatBitString(m.Input), formatBitString(m.Got), formatBitString(m.Expected))
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer parameter %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseBitString converts a string of '0'/'1' characters into a bit
// vector in the order written: bits[0] corresponds to the string's first
// character, so a little-endian number is written least-significant bit
// first.
func parseBitString(s string) ([]bool, error) {
	out := make([]bool, len(s))
	for i, c := range s {
		switch c {
		case '0':
			out[i] = false
		case '1':
			out[i] = true
		default:
			return nil, fmt.Errorf("invalid bit character %q in %q (want only 0/1)", c, s)
		}
	}
	return out, nil
}

func formatBitString(bs []bool) string {
	out := make([]byte, len(bs))
	for i, b := range bs {
		if b {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
