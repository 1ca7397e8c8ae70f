package arith

import (
	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/gate"
)

// EightBitMultiplier is (16->16): computes a*b mod 65536 via
// recur<16,8,0,8> over the bits of a, MSB first (spec §4.5). Input is the
// contiguous pair (b0..b7, a0..a7): b is the value added on each step, a's
// bits select which steps add it.
//
// Each step rotates the 16-bit running product right by one bit and adds
// in b masked by the current bit of a, zero-extended into the low byte —
// the same add-shift-right construction as
// original_source/src/calculator.rs's one_bit_multiplier, though the
// per-step mask (b if a_i else 0) is produced here by a flat AND network
// rather than the original's branch/unzip preprocessing; both compute the
// same 64-bit mask vector.
func EightBitMultiplier() block.Block {
	mask := maskNetwork()                                              // 16 -> 64
	withInitialState := block.NewParallelShaped(gate.Const(16, false), mask) // 16 -> 80
	step := block.NewRecurrent(16, 8, 0, 8, oneBitMultiplierStep)
	return block.NewSerial(withInitialState, step)
}

// maskNetwork is 16->64: input (b0..b7, a0..a7), output 8 groups of 8 bits,
// group i consumed at recurrence step i. Group i is b bitwise-ANDed with a
// broadcast copy of a's bit (7-i): the accumulator in oneBitMultiplierStep
// rotates right and adds before shifting in the next group, so a must be
// folded in most-significant-bit first even though the recurrence itself
// steps forward.
func maskNetwork() block.Block {
	table := make([]int, 2*64)
	for p := 0; p < 64; p++ {
		i, k := p/8, p%8
		table[2*p] = 8 + (7 - i) // a_(7-i), at input offset 8
		table[2*p+1] = k         // b_k, at input offset 0
	}
	route := block.NewWiring(16, table)
	reduce := block.NewParallelUniform(64, func() block.Block { return gate.And(2) })
	return block.NewSerial(route, reduce)
}

// oneBitMultiplierStep is the recur<16,8,0,8> inner cell: shape 24->16,
// input (h0..h15, x0..x7), output the next 16-bit hidden state.
func oneBitMultiplierStep() block.Block {
	shifter := block.RotateRight(16, 1)
	identity8 := block.NewWiring(8, []int{0, 1, 2, 3, 4, 5, 6, 7})
	paddedX := block.NewParallelShaped(identity8, gate.Const(8, false)) // 8 -> 16
	allInput := block.NewParallelShaped(shifter, paddedX)               // 24 -> 32
	adder := NByteAdder(2)                                              // 32 -> 16
	return block.NewSerial(allInput, adder)
}
