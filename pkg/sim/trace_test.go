package sim

import (
	"testing"

	"github.com/blockwire/blockwire/pkg/gate"
)

func TestTracePassesThroughEval(t *testing.T) {
	tr := NewTrace("and2", gate.And(2))
	got := tr.Eval([]bool{true, true})
	if len(got) != 1 || got[0] != true {
		t.Errorf("Trace.Eval = %v, want [true]", got)
	}
	got = tr.Eval([]bool{true, false})
	if len(got) != 1 || got[0] != false {
		t.Errorf("Trace.Eval = %v, want [false]", got)
	}
}

func TestTracePassesThroughShape(t *testing.T) {
	tr := NewTrace("and3", gate.And(3))
	if tr.In() != 3 || tr.Out() != 1 {
		t.Errorf("Trace.In()/Out() = %d/%d, want 3/1", tr.In(), tr.Out())
	}
}

func TestTracePassesThroughEvalState(t *testing.T) {
	tr := NewTrace("clock", gate.NewClock())
	got := tr.EvalState(nil)
	if len(got) != 1 || got[0] != true {
		t.Errorf("Trace.EvalState (first tick) = %v, want [true]", got)
	}
	got = tr.EvalState(nil)
	if got[0] != false {
		t.Errorf("Trace.EvalState (second tick) = %v, want [false]", got)
	}
}

func TestFormatBits(t *testing.T) {
	got := formatBits([]bool{true, false, true})
	if got != "101" {
		t.Errorf("formatBits([true,false,true]) = %q, want %q", got, "101")
	}
}
