package memory

import (
	"github.com/blockwire/blockwire/pkg/block"
)

// Register builds MemoryByte<n> (n+2 -> n): inputs (read, write,
// d0...d_{n-1}), broadcasting read and write to n memory cells, one per
// data bit.
func Register(n int) block.Block {
	if n <= 0 {
		panic("memory.Register: n must be positive")
	}
	table := make([]int, 3*n)
	for j := 0; j < n; j++ {
		table[3*j] = 0     // read
		table[3*j+1] = 1   // write
		table[3*j+2] = 2 + j // data bit j
	}
	route := block.NewWiring(n+2, table)
	cells := block.NewParallelUniform(n, Cell)
	return block.NewSerial(route, cells)
}
