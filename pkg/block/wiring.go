package block

import "fmt"

// wiring is a pure permutation/fan-out block: output position j reads input
// position table[j]. No state; its state-eval is its pure-eval.
type wiring struct {
	n, m  int
	table []int
}

// NewWiring builds an N->M wiring block from an explicit table of length M,
// each entry in [0, N). Panics if the table is malformed.
func NewWiring(n int, table []int) Block {
	for j, t := range table {
		if t < 0 || t >= n {
			panic(fmt.Sprintf("block.NewWiring: table[%d]=%d out of range [0,%d)", j, t, n))
		}
	}
	cp := make([]int, len(table))
	copy(cp, table)
	return &wiring{n: n, m: len(cp), table: cp}
}

func (w *wiring) In() int  { return w.n }
func (w *wiring) Out() int { return w.m }

func (w *wiring) Eval(in []bool) []bool {
	checkLen(in, w.n, "wiring.Eval")
	out := make([]bool, w.m)
	for j, t := range w.table {
		out[j] = in[t]
	}
	return out
}

func (w *wiring) EvalState(in []bool) []bool { return w.Eval(in) }

// Wrapper returns the N->M identity-prefix table: t[i] = i for i <
// min(N,M); slots beyond min(N,M) are unused (table has length M, but only
// the first min(N,M) entries are meaningful — remaining entries read input
// 0, matching the "ignored" slots the spec describes, since there's no
// input position left to omit them to).
func Wrapper(n, m int) Block {
	t := make([]int, m)
	lim := n
	if m < lim {
		lim = m
	}
	for i := 0; i < lim; i++ {
		t[i] = i
	}
	return NewWiring(n, t)
}

// Unzip returns the N->N table separating S interleaved streams: stream i
// lives at input positions {i, S+i, 2S+i, ...}; Unzip gathers each stream
// into a contiguous output block. With sep = N/S, output position
// idx = i*sep+j (i in [0,S), j in [0,sep)) reads input position j*S+i.
func Unzip(n, s int) Block {
	if n%s != 0 {
		panic(fmt.Sprintf("block.Unzip: %d not divisible by %d", n, s))
	}
	sep := n / s
	t := make([]int, n)
	for i := 0; i < s; i++ {
		for j := 0; j < sep; j++ {
			t[i*sep+j] = j*s + i
		}
	}
	return NewWiring(n, t)
}

// Zip returns the inverse permutation of Unzip(n, s).
func Zip(n, s int) Block {
	if n%s != 0 {
		panic(fmt.Sprintf("block.Zip: %d not divisible by %d", n, s))
	}
	sep := n / s
	t := make([]int, n)
	for pos := 0; pos < n; pos++ {
		i := pos % s
		j := pos / s
		t[pos] = i*sep + j
	}
	return NewWiring(n, t)
}

// ZipWithChunk returns the N->N table interleaving two halves in chunks of
// size S: for output position i, chunk c = i/(2S), offset p = i mod S,
// half-flag h = (i mod 2S) >= S; t[i] = c*S + p + (h ? N/2 : 0).
func ZipWithChunk(n, s int) Block {
	if n%(2*s) != 0 {
		panic(fmt.Sprintf("block.ZipWithChunk: %d not divisible by %d", n, 2*s))
	}
	t := make([]int, n)
	for i := 0; i < n; i++ {
		c := i / (2 * s)
		p := i % s
		h := (i % (2 * s)) >= s
		idx := c*s + p
		if h {
			idx += n / 2
		}
		t[i] = idx
	}
	return NewWiring(n, t)
}

// RotateRight returns the N->N table t[i] = (i+N-k) mod N.
func RotateRight(n, k int) Block {
	t := make([]int, n)
	for i := 0; i < n; i++ {
		t[i] = (i + n - k%n) % n
	}
	return NewWiring(n, t)
}

// Reverse returns the N->N table t[i] = N-1-i.
func Reverse(n int) Block {
	t := make([]int, n)
	for i := 0; i < n; i++ {
		t[i] = n - 1 - i
	}
	return NewWiring(n, t)
}
