package sim

import (
	"github.com/golang/glog"

	"github.com/blockwire/blockwire/pkg/block"
)

// Trace wraps a Block, logging every Eval/EvalState call at glog.V(1)
// before passing the result through unchanged. The analogue of
// original_source/src/core.rs's MergeLayers::debug, done with glog instead
// of println!.
type Trace struct {
	name  string
	inner block.Block
}

// NewTrace wraps inner, logging its calls under name.
func NewTrace(name string, inner block.Block) *Trace {
	return &Trace{name: name, inner: inner}
}

func (t *Trace) In() int  { return t.inner.In() }
func (t *Trace) Out() int { return t.inner.Out() }

func (t *Trace) Eval(in []bool) []bool {
	out := t.inner.Eval(in)
	if glog.V(1) {
		glog.Infof("%s.Eval(%s) = %s", t.name, formatBits(in), formatBits(out))
	}
	return out
}

func (t *Trace) EvalState(in []bool) []bool {
	out := t.inner.EvalState(in)
	if glog.V(1) {
		glog.Infof("%s.EvalState(%s) = %s", t.name, formatBits(in), formatBits(out))
	}
	return out
}

func formatBits(bs []bool) string {
	out := make([]byte, len(bs))
	for i, b := range bs {
		if b {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

var _ block.Block = (*Trace)(nil)
