package verify

import (
	"time"

	"github.com/golang/glog"

	"github.com/blockwire/blockwire/pkg/bits"
	"github.com/blockwire/blockwire/pkg/memory"
	"github.com/blockwire/blockwire/pkg/report"
)

// RAM builds one Memory<a,b> instance and drives it sequentially through a
// write-every-address-then-read-every-address sweep, checking each
// readback against the value written. Unlike the combinational sweeps, this
// runs single-threaded: a Memory instance carries internal state that
// EvalState must advance in a fixed order, so there is nothing to
// distribute across workers here.
func RAM(addrWidth, dataWidth int) report.Summary {
	m := memory.RAM(addrWidth, dataWidth)
	rows := uint64(1) << uint(addrWidth)

	table := report.NewTable()
	var checked, failed int64
	start := time.Now()

	step := func(read, write bool, addr uint64, data uint64) []bool {
		in := make([]bool, 0, 2+addrWidth+dataWidth)
		in = append(in, read, write)
		in = append(in, bits.NumToBits(addr, addrWidth)...)
		in = append(in, bits.NumToBits(data, dataWidth)...)
		return m.EvalState(in)
	}

	// Prime the latches: a single write pulse per row with read held low,
	// so address decoding on the first real read only ever sees a settled
	// cell.
	for addr := uint64(0); addr < rows; addr++ {
		val := mixIndex(addr) & ((uint64(1) << uint(dataWidth)) - 1)
		step(false, true, addr, val)
		checked++
	}

	for addr := uint64(0); addr < rows; addr++ {
		want := mixIndex(addr) & ((uint64(1) << uint(dataWidth)) - 1)
		got := step(true, false, addr, 0)
		checked++
		wantBits := bits.NumToBits(want, dataWidth)
		if !equalBits(got, wantBits) {
			failed++
			table.Add(report.Mismatch{
				Input:    bits.NumToBits(addr, addrWidth),
				Got:      got,
				Expected: wantBits,
			})
		}
	}

	glog.Infof("verify[RAM<%d,%d>]: %d checked, %d failed, %s elapsed",
		addrWidth, dataWidth, checked, failed, time.Since(start).Round(time.Second))

	return report.Summary{
		Artifact:   "RAM",
		Cases:      checked,
		Failed:     failed,
		Mismatches: table.Mismatches(),
	}
}
