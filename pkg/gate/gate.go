// Package gate implements the primitive blocks (spec §4.3) and the
// constructed NAND/XOR gates (spec §4.5) on top of package block.
package gate

import (
	"fmt"

	"github.com/blockwire/blockwire/pkg/block"
)

// and is AND_k: k->1, conjunction of inputs (empty input is true).
type and struct{ k int }

// And builds AND_k.
func And(k int) block.Block { return &and{k: k} }

func (a *and) In() int  { return a.k }
func (a *and) Out() int { return 1 }
func (a *and) Eval(in []bool) []bool {
	out := true
	for _, v := range in {
		out = out && v
	}
	return []bool{out}
}
func (a *and) EvalState(in []bool) []bool { return a.Eval(in) }

// or is OR_k: k->1, disjunction of inputs (empty input is false).
type or struct{ k int }

// Or builds OR_k.
func Or(k int) block.Block { return &or{k: k} }

func (o *or) In() int  { return o.k }
func (o *or) Out() int { return 1 }
func (o *or) Eval(in []bool) []bool {
	out := false
	for _, v := range in {
		out = out || v
	}
	return []bool{out}
}
func (o *or) EvalState(in []bool) []bool { return o.Eval(in) }

// not is NOT: 1->1.
type not struct{}

// Not builds NOT.
func Not() block.Block { return not{} }

func (not) In() int  { return 1 }
func (not) Out() int { return 1 }
func (not) Eval(in []bool) []bool {
	return []bool{!in[0]}
}
func (n not) EvalState(in []bool) []bool { return n.Eval(in) }

// buffer is BUFFER: 1->1, identity.
type buffer struct{}

// Buffer builds BUFFER.
func Buffer() block.Block { return &buffer{} }

func (buffer) In() int  { return 1 }
func (buffer) Out() int { return 1 }
func (buffer) Eval(in []bool) []bool {
	return []bool{in[0]}
}
func (b buffer) EvalState(in []bool) []bool { return b.Eval(in) }

// branch is BRANCH_k: 1->k, fan-out.
type branch struct{ k int }

// Branch builds BRANCH_k.
func Branch(k int) block.Block { return &branch{k: k} }

func (b *branch) In() int  { return 1 }
func (b *branch) Out() int { return b.k }
func (b *branch) Eval(in []bool) []bool {
	out := make([]bool, b.k)
	for i := range out {
		out[i] = in[0]
	}
	return out
}
func (b *branch) EvalState(in []bool) []bool { return b.Eval(in) }

// constGate is CONST_{W,v}: 0->W, every bit v.
type constGate struct {
	w int
	v bool
}

// Const builds CONST_{w,v}.
func Const(w int, v bool) block.Block { return &constGate{w: w, v: v} }

func (c *constGate) In() int  { return 0 }
func (c *constGate) Out() int { return c.w }
func (c *constGate) Eval(in []bool) []bool {
	if len(in) != 0 {
		panic(fmt.Sprintf("gate.Const: expected 0 inputs, got %d", len(in)))
	}
	out := make([]bool, c.w)
	for i := range out {
		out[i] = c.v
	}
	return out
}
func (c *constGate) EvalState(in []bool) []bool { return c.Eval(in) }

// Nand is NOT . AND_k, a constructed artifact (spec §4.5) rather than a
// raw primitive, but small enough to live alongside the primitives.
func Nand(k int) block.Block {
	return block.NewSerial(And(k), Not())
}

// Xor is OR over all inputs AND-ed with NAND over all inputs: true iff at
// least one input is true and at least one is false.
func Xor(k int) block.Block {
	// Wiring's table form duplicates the k inputs into two k-wide copies,
	// one feeding OR_k and one feeding NAND_k.
	table := make([]int, 2*k)
	for i := 0; i < k; i++ {
		table[i] = i
		table[k+i] = i
	}
	dup := block.NewWiring(k, table)
	both := block.NewParallelShaped(Or(k), Nand(k))
	return block.NewSerial(dup, block.NewSerial(both, And(2)))
}
