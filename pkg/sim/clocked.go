package sim

import (
	"github.com/golang/glog"

	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/gate"
)

// Tick is one step of a Clocked run: the clock and rising-edge signals for
// that step, alongside the driven block's output.
type Tick struct {
	N       int
	Clock   bool
	Rising  bool
	Output  []bool
}

// Clocked drives a stateful Block for a fixed number of ticks, tracking an
// auxiliary Clock/RisingEdge pair alongside it so callers (the CLI's trace
// subcommand) can report which ticks are rising edges without the driven
// block needing to expose that itself.
type Clocked struct {
	Block block.Block
	clock *gate.Clock
	edge  *gate.RisingEdge
}

// NewClocked builds a driver for b.
func NewClocked(b block.Block) *Clocked {
	return &Clocked{Block: b, clock: gate.NewClock(), edge: gate.NewRisingEdge()}
}

// Run steps the driven block n times. inputs(i, clockHigh) supplies the
// block's input for tick i, given the auxiliary clock's value at that
// tick; it is called after the clock has ticked but before the block is
// evaluated, so callers can gate writes on rising edges.
func (c *Clocked) Run(n int, inputs func(i int, clockHigh bool) []bool) []Tick {
	ticks := make([]Tick, n)
	for i := 0; i < n; i++ {
		cs := c.clock.EvalState(nil)[0]
		rising := c.edge.EvalState([]bool{cs})[0]
		in := inputs(i, cs)
		out := c.Block.EvalState(in)
		ticks[i] = Tick{N: i, Clock: cs, Rising: rising, Output: out}
		glog.V(2).Infof("tick %d: clock=%v rising=%v in=%s out=%s", i, cs, rising, formatBits(in), formatBits(out))
	}
	return ticks
}
