package verify

import "testing"

func TestRAMSweepAllPass(t *testing.T) {
	summary := RAM(3, 4)
	if summary.Cases != 2*8 {
		t.Fatalf("RAM(3,4).Cases = %d, want %d", summary.Cases, 2*8)
	}
	if summary.Failed != 0 {
		t.Errorf("RAM(3,4): %d failures, want 0: %v", summary.Failed, summary.Mismatches)
	}
}
