// Package arith builds the constructed arithmetic artifacts of spec §4.5 —
// half/full adder, 8-bit ripple-carry adder, N-byte adder, subtractor,
// comparators, and the 8-bit multiplier — as compositions of pkg/block and
// pkg/gate, grounded on original_source/src/calculator.rs.
package arith

import (
	"fmt"

	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/gate"
)

// HalfAdder is (2->2): (sum, carry) = (XOR(a,b), AND(a,b)).
func HalfAdder() block.Block {
	dup := block.NewWiring(2, []int{0, 1, 0, 1})
	combine := block.NewParallelShaped(gate.Xor(2), gate.And(2))
	return block.NewSerial(dup, combine)
}

// FullAdder is (3->2): input (c_in, a, b), output (sum, c_out). Built from
// two half adders and an OR of the two carries, matching
// original_source/src/calculator.rs's three-layer construction.
func FullAdder() block.Block {
	layer1 := block.NewParallelShaped(gate.Buffer(), HalfAdder())
	layer2 := block.NewParallelShaped(HalfAdder(), gate.Buffer())
	layer3 := block.NewParallelShaped(gate.Buffer(), gate.Or(2))
	return block.Chain(layer1, layer2, layer3)
}

// EightBitAdder is EightBitFullAdder (17->9): input
// (c_in, a0,b0,a1,b1,...,a7,b7), output (s0...s7, c_out). Implemented as
// recur<1,2,1,8>(FullAdder) directly on its already-interleaved input, per
// the external wire format in spec §6.
func EightBitAdder() block.Block {
	return block.NewRecurrent(1, 2, 1, 8, FullAdder)
}

// NByteAdder is recur<1,16,8,N>(EightBitAdder) with initial carry false and
// the final carry discarded: (16N -> 8N), computing (a+b) mod 256^N. Input
// is the contiguous (a, b) operand pair; ZipWithChunk<8> regroups it into N
// byte-pairs (a_byte_i, b_byte_i), and each pair is then bit-interleaved
// into the (a0,b0,...,a7,b7) layout EightBitAdder reads.
func NByteAdder(n int) block.Block {
	if n <= 0 {
		panic(fmt.Sprintf("arith.NByteAdder: n must be positive, got %d", n))
	}
	interleave := block.NewSerial(
		block.ZipWithChunk(16*n, 8),
		block.NewParallelUniform(n, func() block.Block { return block.Unzip(16, 8) }),
	)
	withCarry := block.NewParallelShaped(gate.Const(1, false), interleave)
	adder := block.NewRecurrent(1, 16, 8, n, EightBitAdder)
	dropCarry := identityWiring(8*n+1, 8*n)
	return block.Chain(withCarry, adder, dropCarry)
}

// identityWiring returns the n->m wiring that reads input positions
// [0, m) unchanged, dropping any trailing bits. Used to discard a final
// carry-out that the caller doesn't want.
func identityWiring(n, m int) block.Block {
	t := make([]int, m)
	for i := range t {
		t[i] = i
	}
	return block.NewWiring(n, t)
}

// EightBitSubtractor is (16->8): two's-complement subtraction a-b via
// a + NOT(b) + 1, carry-out dropped. Input is the contiguous pair
// (a0..a7, b0..b7); 0 <= b <= a < 256 is assumed (spec §8).
func EightBitSubtractor() block.Block {
	notB := block.NewParallelUniform(8, gate.Not)
	passA := block.NewParallelUniform(8, gate.Buffer)
	invert := block.NewParallelShaped(passA, notB) // (a, NOT b), contiguous
	interleave := block.Unzip(16, 8)                // -> (a0,notb0,a1,notb1,...)
	plusOne := block.NewParallelShaped(gate.Const(1, true), block.NewSerial(invert, interleave))
	adder := EightBitAdder()
	dropCarry := identityWiring(9, 8)
	return block.Chain(plusOne, adder, dropCarry)
}
