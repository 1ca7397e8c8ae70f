package arith

import (
	"testing"

	"github.com/blockwire/blockwire/pkg/bits"
)

func TestEightBitMultiplier(t *testing.T) {
	m := EightBitMultiplier()
	tests := []struct{ a, b uint64 }{
		{0, 0}, {1, 1}, {255, 255}, {16, 16}, {200, 3}, {7, 9},
	}
	for _, tc := range tests {
		in := bits.Concat(bits.NumToBits(tc.b, 8), bits.NumToBits(tc.a, 8))
		got := m.Eval(in)
		want := bits.NumToBits((tc.a*tc.b)&0xFFFF, 16)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("EightBitMultiplier(%d,%d) bit %d = %v, want %v", tc.a, tc.b, i, got[i], want[i])
			}
		}
	}
}
