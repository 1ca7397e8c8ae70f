package block

import "testing"

// constTrue is a trivial 0->1 block used only by these tests.
type constTrue struct{}

func (constTrue) In() int                  { return 0 }
func (constTrue) Out() int                 { return 1 }
func (constTrue) Eval(in []bool) []bool      { return []bool{true} }
func (constTrue) EvalState(in []bool) []bool { return []bool{true} }

type inv struct{}

func (inv) In() int                  { return 1 }
func (inv) Out() int                 { return 1 }
func (inv) Eval(in []bool) []bool      { return []bool{!in[0]} }
func (inv) EvalState(in []bool) []bool { return []bool{!in[0]} }

func TestSerial(t *testing.T) {
	s := NewSerial(constTrue{}, inv{})
	got := s.Eval(nil)
	if len(got) != 1 || got[0] != false {
		t.Errorf("Serial(const-true, not).Eval() = %v, want [false]", got)
	}
}

func TestSerialShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSerial with mismatched shapes should panic")
		}
	}()
	NewSerial(constTrue{}, NewParallelUniform(2, func() Block { return inv{} }))
}

func TestChain(t *testing.T) {
	c := Chain(constTrue{}, inv{}, inv{})
	got := c.Eval(nil)
	if len(got) != 1 || got[0] != true {
		t.Errorf("Chain(const-true, not, not).Eval() = %v, want [true]", got)
	}
}

func TestParallelUniform(t *testing.T) {
	p := NewParallelUniform(3, func() Block { return inv{} })
	got := p.Eval([]bool{true, false, true})
	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParallelUniform.Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParallelShaped(t *testing.T) {
	p := NewParallelShaped(inv{}, NewParallelUniform(2, func() Block { return inv{} }))
	got := p.Eval([]bool{true, false, true})
	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParallelShaped.Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParallelShapedDoesNotAliasFirstResult(t *testing.T) {
	// a's Eval returns a slice with spare capacity; ParallelShaped must not
	// grow into it when appending b's output.
	a := &capacitySlice{}
	p := NewParallelShaped(a, inv{})
	first := p.Eval([]bool{true, true})
	second := p.Eval([]bool{true, false})
	if first[0] != true || first[1] != false {
		t.Errorf("first call result mutated by second call: got %v", first)
	}
	_ = second
}

// capacitySlice is a 1->1 block whose Eval return value has spare backing
// capacity, to exercise the aliasing hazard in parallelShaped.
type capacitySlice struct{}

func (capacitySlice) In() int  { return 1 }
func (capacitySlice) Out() int { return 1 }
func (capacitySlice) Eval(in []bool) []bool {
	buf := make([]bool, 1, 4)
	buf[0] = in[0]
	return buf
}
func (c capacitySlice) EvalState(in []bool) []bool { return c.Eval(in) }

func TestWiringRoute(t *testing.T) {
	w := NewWiring(3, []int{2, 0, 0, 1})
	got := w.Eval([]bool{true, false, true})
	want := []bool{true, true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Wiring.Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWrapperTruncates(t *testing.T) {
	w := Wrapper(5, 3)
	if w.In() != 5 || w.Out() != 3 {
		t.Fatalf("Wrapper(5,3).In()/Out() = %d/%d, want 5/3", w.In(), w.Out())
	}
	got := w.Eval([]bool{true, false, true, false, true})
	want := []bool{true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Wrapper(5,3).Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWrapperPads(t *testing.T) {
	w := Wrapper(2, 4)
	if w.In() != 2 || w.Out() != 4 {
		t.Fatalf("Wrapper(2,4).In()/Out() = %d/%d, want 2/4", w.In(), w.Out())
	}
	// Wrapper only guarantees t[i]=i for i < min(n,m); the remaining slots
	// (table default zero value) read input position 0.
	got := w.Eval([]bool{true, false})
	want := []bool{true, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Wrapper(2,4).Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnzipZipRoundTrip(t *testing.T) {
	n, s := 12, 3
	in := []bool{true, false, true, false, false, true, true, true, false, false, true, false}
	unzipped := Unzip(n, s).Eval(in)
	back := Zip(n, s).Eval(unzipped)
	for i := range in {
		if back[i] != in[i] {
			t.Errorf("Zip(Unzip(x))[%d] = %v, want %v", i, back[i], in[i])
		}
	}
}

func TestZipWithChunkInterleavesHalves(t *testing.T) {
	// Two 4-bit halves H1=[T,F,F,F], H2=[T,T,F,T], interleaved in chunks
	// of 2: chunk0 = H1[0:2],H2[0:2]; chunk1 = H1[2:4],H2[2:4].
	in := []bool{true, false, false, false, true, true, false, true}
	got := ZipWithChunk(8, 2).Eval(in)
	want := []bool{true, false, true, true, false, false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ZipWithChunk(8,2).Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotateRight(t *testing.T) {
	in := []bool{true, false, false, false}
	got := RotateRight(4, 1).Eval(in)
	want := []bool{false, true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RotateRight(4,1).Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReverse(t *testing.T) {
	in := []bool{true, false, false, false}
	got := Reverse(4).Eval(in)
	want := []bool{false, false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reverse(4).Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecurrentThreadsState(t *testing.T) {
	// Inner cell (2->2) passes the incoming state through as this step's
	// output, and the incoming input through as the next state: each
	// output y_k should equal the state *before* step k, and the trailing
	// state should equal the final step's input.
	mk := func() Block { return NewWiring(2, []int{0, 1}) }
	r := NewRecurrent(1, 1, 1, 4, mk)
	if r.In() != 5 || r.Out() != 5 {
		t.Fatalf("Recurrent shape = %d->%d, want 5->5", r.In(), r.Out())
	}
	got := r.Eval([]bool{true, false, true, false, true})
	want := []bool{true, false, true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Recurrent.Eval()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
