package block

import "fmt"

// parallelUniform runs N copies of the same shape side by side: input is
// split into N contiguous slices of width I, output is the concatenation of
// the N per-slice results in order.
type parallelUniform struct {
	copies []Block
	in, out int
}

// NewParallelUniform builds par_n(mk) by instantiating n independent copies
// via mk. Each copy is called exactly once, so the copies returned by mk
// must not alias internal state with one another.
func NewParallelUniform(n int, mk func() Block) Block {
	if n <= 0 {
		panic("block.NewParallelUniform: n must be positive")
	}
	copies := make([]Block, n)
	for i := range copies {
		copies[i] = mk()
	}
	i0, o0 := copies[0].In(), copies[0].Out()
	for i, c := range copies {
		if c.In() != i0 || c.Out() != o0 {
			panic(fmt.Sprintf("block.NewParallelUniform: copy %d has shape %d->%d, want %d->%d", i, c.In(), c.Out(), i0, o0))
		}
	}
	return &parallelUniform{copies: copies, in: i0, out: o0}
}

// NewParallelList is NewParallelUniform generalized to a caller-supplied
// list of already-built blocks, each required to share the same shape.
// Useful when the N siblings aren't N copies of one constructor (e.g. a
// bank of same-shape gates of different kinds placed side by side).
func NewParallelList(blocks ...Block) Block {
	if len(blocks) == 0 {
		panic("block.NewParallelList: no blocks given")
	}
	i0, o0 := blocks[0].In(), blocks[0].Out()
	for i, b := range blocks {
		if b.In() != i0 || b.Out() != o0 {
			panic(fmt.Sprintf("block.NewParallelList: block %d has shape %d->%d, want %d->%d", i, b.In(), b.Out(), i0, o0))
		}
	}
	cp := make([]Block, len(blocks))
	copy(cp, blocks)
	return &parallelUniform{copies: cp, in: i0, out: o0}
}

func (p *parallelUniform) In() int  { return p.in * len(p.copies) }
func (p *parallelUniform) Out() int { return p.out * len(p.copies) }

func (p *parallelUniform) Eval(in []bool) []bool {
	checkLen(in, p.In(), "parallelUniform.Eval")
	out := make([]bool, 0, p.Out())
	for i, c := range p.copies {
		slice := in[i*p.in : (i+1)*p.in]
		out = append(out, c.Eval(slice)...)
	}
	return out
}

func (p *parallelUniform) EvalState(in []bool) []bool {
	checkLen(in, p.In(), "parallelUniform.EvalState")
	out := make([]bool, 0, p.Out())
	for i, c := range p.copies {
		slice := in[i*p.in : (i+1)*p.in]
		out = append(out, c.EvalState(slice)...)
	}
	return out
}

// parallelShaped is A ⊕ B: input splits at A.In(), outputs concatenate with
// A first.
type parallelShaped struct {
	a, b Block
}

// NewParallelShaped composes two blocks of possibly different shape side by
// side.
func NewParallelShaped(a, b Block) Block {
	return &parallelShaped{a: a, b: b}
}

func (p *parallelShaped) In() int  { return p.a.In() + p.b.In() }
func (p *parallelShaped) Out() int { return p.a.Out() + p.b.Out() }

func (p *parallelShaped) Eval(in []bool) []bool {
	checkLen(in, p.In(), "parallelShaped.Eval")
	ao := p.a.Eval(in[:p.a.In()])
	bo := p.b.Eval(in[p.a.In():])
	out := make([]bool, 0, p.Out())
	out = append(out, ao...)
	out = append(out, bo...)
	return out
}

func (p *parallelShaped) EvalState(in []bool) []bool {
	checkLen(in, p.In(), "parallelShaped.EvalState")
	ao := p.a.EvalState(in[:p.a.In()])
	bo := p.b.EvalState(in[p.a.In():])
	out := make([]bool, 0, p.Out())
	out = append(out, ao...)
	out = append(out, bo...)
	return out
}
