package block

import "fmt"

// serial is A;B: A's output feeds B's input. Constructed with NewSerial,
// which rejects a width mismatch at construction rather than at eval time.
type serial struct {
	a, b Block
}

// NewSerial composes a followed by b. Panics if a.Out() != b.In().
func NewSerial(a, b Block) Block {
	if a.Out() != b.In() {
		panic(fmt.Sprintf("block.NewSerial: producer width %d != consumer width %d", a.Out(), b.In()))
	}
	return &serial{a: a, b: b}
}

func (s *serial) In() int  { return s.a.In() }
func (s *serial) Out() int { return s.b.Out() }

func (s *serial) Eval(in []bool) []bool {
	checkLen(in, s.In(), "serial.Eval")
	return s.b.Eval(s.a.Eval(in))
}

func (s *serial) EvalState(in []bool) []bool {
	checkLen(in, s.In(), "serial.EvalState")
	return s.b.EvalState(s.a.EvalState(in))
}

// Chain composes a sequence of blocks left to right via NewSerial. Useful
// for building multi-layer constructions (e.g. the full adder) without
// nesting NewSerial calls by hand.
func Chain(bs ...Block) Block {
	if len(bs) == 0 {
		panic("block.Chain: no blocks given")
	}
	out := bs[0]
	for _, b := range bs[1:] {
		out = NewSerial(out, b)
	}
	return out
}
