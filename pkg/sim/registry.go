// Package sim provides a named-artifact registry, a logging Trace wrapper,
// and a clocked driver for stepping stateful circuits, supplementing
// spec.md's core algebra with the demo-harness features of
// original_source/src/main.rs (spec.md §1 scopes the harness itself out of
// core scope; SPEC_FULL.md §5 brings its behaviors back as CLI features).
package sim

import (
	"fmt"

	"github.com/blockwire/blockwire/pkg/arith"
	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/decoder"
	"github.com/blockwire/blockwire/pkg/gate"
	"github.com/blockwire/blockwire/pkg/memory"
)

// artifact describes one buildable circuit: its registry name, how many
// integer parameters it takes, and how to build it.
type artifact struct {
	name   string
	params int
	build  func(p []int) block.Block
}

var registry = []artifact{
	{"nand", 1, func(p []int) block.Block { return gate.Nand(p[0]) }},
	{"xor", 1, func(p []int) block.Block { return gate.Xor(p[0]) }},
	{"half-adder", 0, func(p []int) block.Block { return arith.HalfAdder() }},
	{"full-adder", 0, func(p []int) block.Block { return arith.FullAdder() }},
	{"eight-bit-adder", 0, func(p []int) block.Block { return arith.EightBitAdder() }},
	{"n-byte-adder", 1, func(p []int) block.Block { return arith.NByteAdder(p[0]) }},
	{"eight-bit-subtractor", 0, func(p []int) block.Block { return arith.EightBitSubtractor() }},
	{"comparator", 0, func(p []int) block.Block { return arith.Comparator() }},
	{"eight-bit-comparator", 0, func(p []int) block.Block { return arith.EightBitComparator() }},
	{"eight-bit-multiplier", 0, func(p []int) block.Block { return arith.EightBitMultiplier() }},
	{"bit-decoder", 1, func(p []int) block.Block { return decoder.BitDecoder(p[0]) }},
	{"memory-cell", 0, func(p []int) block.Block { return memory.Cell() }},
	{"register", 1, func(p []int) block.Block { return memory.Register(p[0]) }},
	{"ram", 2, func(p []int) block.Block { return memory.RAM(p[0], p[1]) }},
	{"clock", 0, func(p []int) block.Block { return gate.NewClock() }},
	{"rising-edge", 0, func(p []int) block.Block { return gate.NewRisingEdge() }},
	{"sr-latch", 0, func(p []int) block.Block { return gate.NewSRLatch() }},
}

// Names returns every registered artifact name, in registration order.
func Names() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.name
	}
	return out
}

// Build constructs the named artifact, supplying params as its integer
// arguments (e.g. width for bit-decoder/register, (a,b) for ram).
func Build(name string, params ...int) (block.Block, error) {
	for _, a := range registry {
		if a.name != name {
			continue
		}
		if len(params) != a.params {
			return nil, fmt.Errorf("sim.Build: %q takes %d param(s), got %d", name, a.params, len(params))
		}
		return a.build(params), nil
	}
	return nil, fmt.Errorf("sim.Build: unknown artifact %q", name)
}
