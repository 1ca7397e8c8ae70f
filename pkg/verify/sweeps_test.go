package verify

import "testing"

func TestComparatorSweepAllPass(t *testing.T) {
	wp := NewWorkerPool(2)
	summary := wp.Run(ComparatorSweep())
	if summary.Failed != 0 {
		t.Errorf("ComparatorSweep: %d failures, want 0: %v", summary.Failed, summary.Mismatches)
	}
}

func TestEightBitAdderSweepAllPass(t *testing.T) {
	wp := NewWorkerPool(4)
	summary := wp.Run(EightBitAdderSweep())
	if summary.Cases != 1<<17 {
		t.Fatalf("EightBitAdderSweep: Cases = %d, want %d", summary.Cases, 1<<17)
	}
	if summary.Failed != 0 {
		t.Errorf("EightBitAdderSweep: %d failures, want 0 (mismatches: %v)", summary.Failed, summary.Mismatches)
	}
}

func TestEightBitMultiplierSweepAllPass(t *testing.T) {
	wp := NewWorkerPool(4)
	summary := wp.Run(EightBitMultiplierSweep())
	if summary.Failed != 0 {
		t.Errorf("EightBitMultiplierSweep: %d failures, want 0 (mismatches: %v)", summary.Failed, summary.Mismatches)
	}
}

func TestDecoderSweepAllPass(t *testing.T) {
	wp := NewWorkerPool(2)
	summary := wp.Run(DecoderSweep(4))
	if summary.Failed != 0 {
		t.Errorf("DecoderSweep(4): %d failures, want 0", summary.Failed)
	}
}

func TestNByteAdderSweepPanicsOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NByteAdderSweep(8, 10) did not panic")
		}
	}()
	NByteAdderSweep(8, 10)
}
