// Package memory implements the SR-latch-backed memory cell, the N-bit
// register, and the RAM (spec §4.5), grounded on
// original_source/src/memory.rs.
package memory

import (
	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/gate"
)

// Cell builds a 1-bit memory cell (3->1): inputs (read, write, data). If
// write, the latch is set to data via set = data&write, reset = !data&write
// driving an SR latch; output is read & Q.
func Cell() block.Block {
	// (read, write, data) -> (read, write, data, write, data): duplicate
	// (write, data) so one copy can build reset and the other set.
	dup := block.NewWiring(3, []int{0, 1, 2, 1, 2})

	rGate := block.NewSerial(block.NewParallelShaped(gate.Not(), gate.Buffer()), gate.And(2)) // (data,write) -> !data & write
	sGate := gate.And(2)                                                                       // (data,write) -> data & write — reordered below

	// After dup: (read, write, data, write, data). Feed (data,write) to
	// rGate and (write,data) to sGate to get (reset, set).
	reorder := block.NewWiring(5, []int{0, 2, 1, 3, 4})
	rs := block.NewParallelShaped(gate.Buffer(), block.NewParallelShaped(rGate, sGate))
	// rs: in=1+2+2=5, out=1+1+1=3: (read, reset, set)

	latchStage := block.NewParallelShaped(gate.Buffer(), gate.NewSRLatch())
	// latchStage: in=1+2=3, out=1+2=3: (read, Q, notQ)

	dropNotQ := block.NewWiring(3, []int{0, 1})
	final := gate.And(2)

	return block.Chain(dup, reorder, rs, latchStage, dropNotQ, final)
}
