package arith

import (
	"github.com/blockwire/blockwire/pkg/block"
	"github.com/blockwire/blockwire/pkg/gate"
)

// Comparator is a single-bit comparator (2->3): outputs (a>b, a=b, a<b),
// exactly one true. Ported layer-by-layer from
// original_source/src/calculator.rs's Comparator::new().
func Comparator() block.Block {
	layer1 := block.NewParallelUniform(2, func() block.Block { return gate.Branch(2) }) // 2->4: [a,a,b,b]
	layer2 := block.NewParallelList(gate.Buffer(), gate.Not(), gate.Not(), gate.Buffer())    // -> [a,!a,!b,b]
	layer3 := block.NewWiring(4, []int{0, 2, 1, 3})                                          // -> [a,!b,!a,b]
	layer4 := block.NewParallelUniform(2, func() block.Block { return gate.And(2) })      // -> [a&!b, !a&b] = [gt, lt]
	layer5 := block.NewParallelUniform(2, func() block.Block { return gate.Branch(2) })   // 2->4: [gt,gt,lt,lt]
	nor := block.NewSerial(gate.Or(2), gate.Not())
	xEq := block.NewParallelShaped(gate.Buffer(), nor) // 3->2: passthrough gt, nor(gt,lt)=eq
	layer6 := block.NewParallelShaped(xEq, gate.Buffer())
	return block.Chain(layer1, layer2, layer3, layer4, layer5, layer6)
}

// makeCompStep builds the per-bit recurrence cell for EightBitComparator:
// shape 5->3, threading (prev_gt, prev_eq, prev_lt) through the current
// bit's Comparator: if the current bits are equal the previous verdict is
// preserved; otherwise the current-bit comparator replaces it. Pairs are
// consumed least-significant first, so the most significant differing bit
// decides.
func makeCompStep() block.Block {
	ifEq := block.NewSerial(
		block.NewWiring(4, []int{0, 1, 0, 2, 0, 3}),
		block.NewParallelUniform(3, func() block.Block { return gate.And(2) }),
	) // 4->3: (eq,x,y,z) -> (eq&x, eq&y, eq&z)

	recurBit := block.NewParallelUniform(3, gate.Buffer)
	curBitComp := Comparator()

	layer1 := block.NewParallelShaped(recurBit, curBitComp) // 5->6: (prev3, cur3)
	layer2 := block.NewWiring(6, []int{3, 4, 0, 1, 2, 5})    // -> (cur_gt,cur_eq,prev_gt,prev_eq,prev_lt,cur_lt)
	layer3 := block.NewParallelShaped(block.NewParallelShaped(gate.Buffer(), ifEq), gate.Buffer())
	// layer3: (cur_gt, cur_eq&prev_gt, cur_eq&prev_eq, cur_eq&prev_lt, cur_lt)
	layer4 := block.NewParallelShaped(block.NewParallelShaped(gate.Or(2), gate.Buffer()), gate.Or(2))
	// layer4: (new_gt, new_eq, new_lt)
	return block.Chain(layer1, layer2, layer3, layer4)
}

// EightBitComparator is (19->3): input (gt_seed, eq_seed, lt_seed,
// a0,b0,...,a7,b7) with default seed (false,true,false) meaning "no prior
// verdict"; output (a>b, a=b, a<b). Implemented as recur<3,2,0,8> over
// makeCompStep, directly on its already-interleaved input per spec §6.
func EightBitComparator() block.Block {
	return block.NewRecurrent(3, 2, 0, 8, makeCompStep)
}
