package memory

import (
	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/decoder"
	"github.com/blockwire/blockwire/pkg/gate"
)

// RAM builds Memory<a,b> (a+b+2 -> b): inputs
// (read, write, addr0...addr_{a-1}, data0...data_{b-1}). The address
// decodes to one of 2^a rows; only the selected row's read/write gates are
// active, and row outputs are OR-reduced bitwise (spec §4.5).
func RAM(a, b int) block.Block {
	if a <= 0 || b <= 0 {
		panic("memory.RAM: a and b must be positive")
	}
	rows := 1 << uint(a)

	// (read, write, addr..., data...) -> (read, write, decoded[0..rows), data...)
	decodeAddr := block.NewParallelShaped(
		block.NewParallelShaped(gate.Buffer(), gate.Buffer()),
		block.NewParallelShaped(decoder.BitDecoder(a), block.NewParallelUniform(b, gate.Buffer)),
	)
	afterDecode := 2 + rows + b

	// Gather, per row r, (read, decoded_r, write, decoded_r, data...).
	rowWidth := 4 + b
	gatherTable := make([]int, rows*rowWidth)
	for r := 0; r < rows; r++ {
		base := r * rowWidth
		gatherTable[base+0] = 0
		gatherTable[base+1] = 2 + r
		gatherTable[base+2] = 1
		gatherTable[base+3] = 2 + r
		for k := 0; k < b; k++ {
			gatherTable[base+4+k] = 2 + rows + k
		}
	}
	gatherRows := block.NewWiring(afterDecode, gatherTable)

	preRow := block.NewParallelShaped(
		block.NewParallelShaped(gate.And(2), gate.And(2)),
		block.NewParallelUniform(b, gate.Buffer),
	) // (4+b) -> (2+b): (read_r, write_r, data...)
	preRows := block.NewParallelUniform(rows, func() block.Block { return preRow })

	cells := block.NewParallelUniform(rows, func() block.Block { return Register(b) })

	// Gather each data-bit position across all rows for OR-reduction.
	orTable := make([]int, b*rows)
	for k := 0; k < b; k++ {
		for r := 0; r < rows; r++ {
			orTable[k*rows+r] = r*b + k
		}
	}
	gatherForOr := block.NewWiring(rows*b, orTable)
	reduce := block.NewParallelUniform(b, func() block.Block { return gate.Or(rows) })

	return block.Chain(decodeAddr, gatherRows, preRows, cells, gatherForOr, reduce)
}
