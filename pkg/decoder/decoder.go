// Package decoder implements the address decoder (spec §4.5), grounded on
// original_source/src/decoder.rs.
package decoder

import (
	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/gate"
)

// BitDecoder builds BitDecoder<n> (n -> 2^n): output bit i is true iff the
// input encodes the little-endian integer i. Each input bit is fanned into
// a true rail and a negated rail; each of the 2^n outputs ANDs together the
// n rails selected by that output's bit pattern.
func BitDecoder(n int) block.Block {
	if n <= 0 {
		panic("decoder.BitDecoder: n must be positive")
	}
	width := 1 << uint(n)

	branch := block.NewParallelUniform(n, func() block.Block { return gate.Branch(2) }) // n -> 2n
	rails := block.NewParallelUniform(n, func() block.Block {
		return block.NewParallelShaped(gate.Buffer(), gate.Not())
	}) // 2n -> 2n: [true_0,not_0,true_1,not_1,...]

	table := make([]int, n*width)
	for o := 0; o < width; o++ {
		for i := 0; i < n; i++ {
			bitSet := (o>>uint(i))&1 != 0
			src := 2 * i
			if !bitSet {
				src++
			}
			table[o*n+i] = src
		}
	}
	route := block.NewWiring(2*n, table)
	reduce := block.NewParallelUniform(width, func() block.Block { return gate.And(n) })

	return block.Chain(branch, rails, route, reduce)
}
