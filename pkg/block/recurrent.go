package block

import "fmt"

// recurrent threads a hidden state of width S through N instances of an
// (S+I)->(O+S) block, built independently by mk. Given (h, x0, ..., xN-1),
// step i feeds (h_i, x_i) to instance i and obtains (y_i, h_{i+1}); the
// combined output is (y0, ..., yN-1, h_N).
type recurrent struct {
	s, i, o, n int
	instances  []Block
}

// NewRecurrent builds recur<S,I,O,N>(mk). Each call to mk must return a
// block of shape (S+I)->(O+S); mk is called n times to build independent
// instances.
func NewRecurrent(s, i, o, n int, mk func() Block) Block {
	if n <= 0 {
		panic("block.NewRecurrent: n must be positive")
	}
	instances := make([]Block, n)
	wantIn, wantOut := s+i, o+s
	for k := range instances {
		b := mk()
		if b.In() != wantIn || b.Out() != wantOut {
			panic(fmt.Sprintf("block.NewRecurrent: instance %d has shape %d->%d, want %d->%d", k, b.In(), b.Out(), wantIn, wantOut))
		}
		instances[k] = b
	}
	return &recurrent{s: s, i: i, o: o, n: n, instances: instances}
}

func (r *recurrent) In() int  { return r.s + r.n*r.i }
func (r *recurrent) Out() int { return r.n*r.o + r.s }

func (r *recurrent) step(in []bool, stateful bool) []bool {
	checkLen(in, r.In(), "recurrent.Eval")
	h := in[:r.s]
	ys := make([]bool, 0, r.n*r.o)
	for k := 0; k < r.n; k++ {
		x := in[r.s+k*r.i : r.s+(k+1)*r.i]
		stepIn := make([]bool, 0, r.s+r.i)
		stepIn = append(stepIn, h...)
		stepIn = append(stepIn, x...)
		var stepOut []bool
		if stateful {
			stepOut = r.instances[k].EvalState(stepIn)
		} else {
			stepOut = r.instances[k].Eval(stepIn)
		}
		ys = append(ys, stepOut[:r.o]...)
		h = stepOut[r.o:]
	}
	out := make([]bool, 0, r.Out())
	out = append(out, ys...)
	out = append(out, h...)
	return out
}

func (r *recurrent) Eval(in []bool) []bool      { return r.step(in, false) }
func (r *recurrent) EvalState(in []bool) []bool { return r.step(in, true) }
