package gate

import "github.com/blockwire/blockwire/pkg/block"

// Clock is CLOCK: 0->1, stateful. Pure-eval always returns false;
// state-eval toggles an internal bit, initially false, and returns the new
// value.
type Clock struct {
	s bool
}

// NewClock builds a CLOCK primitive with initial state false.
func NewClock() *Clock { return &Clock{} }

func (*Clock) In() int  { return 0 }
func (*Clock) Out() int { return 1 }

func (c *Clock) Eval(in []bool) []bool {
	if len(in) != 0 {
		panic("gate.Clock: expected 0 inputs")
	}
	return []bool{false}
}

func (c *Clock) EvalState(in []bool) []bool {
	if len(in) != 0 {
		panic("gate.Clock: expected 0 inputs")
	}
	c.s = !c.s
	return []bool{c.s}
}

// RisingEdge is RISING_EDGE: 1->1, stateful. Pure-eval always returns
// false; state-eval outputs true only on a false->true transition of its
// input, then records the input as the new previous value. Initial
// previous is true.
type RisingEdge struct {
	prev bool
}

// NewRisingEdge builds a RISING_EDGE primitive with initial prev = true.
func NewRisingEdge() *RisingEdge { return &RisingEdge{prev: true} }

func (*RisingEdge) In() int  { return 1 }
func (*RisingEdge) Out() int { return 1 }

func (r *RisingEdge) Eval(in []bool) []bool {
	return []bool{false}
}

func (r *RisingEdge) EvalState(in []bool) []bool {
	out := !r.prev && in[0]
	r.prev = in[0]
	return []bool{out}
}

// SRLatch is SR_LATCH: 2->2, stateful. Modeled as two cross-coupled NAND
// gates with active-high R and S. State-eval iterates the combinational
// update eight times, which is enough to settle any input combination
// except the forbidden R=S=true case, which is left undefined (spec §4.3,
// §7).
type SRLatch struct {
	c1, c2 bool // line caches: c1 is Q, c2 is not-Q
}

// NewSRLatch builds an SR_LATCH primitive reset to (Q, notQ) = (false,
// true). Starting both caches false is the latch's invalid state — with
// R=S=false ("hold") it oscillates between (false,false) and (true,true)
// forever instead of settling — so construction seeds a valid resting
// state instead.
func NewSRLatch() *SRLatch { return &SRLatch{c1: false, c2: true} }

func nand2(a, b bool) bool { return !(a && b) }

func (*SRLatch) In() int  { return 2 }
func (*SRLatch) Out() int { return 2 }

func (l *SRLatch) Eval(in []bool) []bool {
	r, s := in[0], in[1]
	q1 := nand2(!s, l.c2)
	q2 := nand2(!r, l.c1)
	return []bool{q1, q2}
}

func (l *SRLatch) EvalState(in []bool) []bool {
	r, s := in[0], in[1]
	for i := 0; i < 8; i++ {
		q1 := nand2(!s, l.c2)
		q2 := nand2(!r, l.c1)
		l.c1, l.c2 = q1, q2
	}
	return []bool{l.c1, l.c2}
}

var _ block.Block = (*Clock)(nil)
var _ block.Block = (*RisingEdge)(nil)
var _ block.Block = (*SRLatch)(nil)
