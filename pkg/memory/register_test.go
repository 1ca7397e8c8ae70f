package memory

import "testing"

func TestRegisterWriteThenRead(t *testing.T) {
	r := Register(4)

	write := func(data []bool) []bool {
		in := append([]bool{false, true}, data...)
		return r.EvalState(in)
	}
	read := func() []bool {
		in := append([]bool{true, false}, make([]bool, 4)...)
		return r.EvalState(in)
	}

	write([]bool{true, false, true, false})
	got := read()
	want := []bool{true, false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Register(4) read[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	write([]bool{false, true, false, true})
	got = read()
	want = []bool{false, true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Register(4) read after rewrite[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegisterPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Register(0) did not panic")
		}
	}()
	Register(0)
}
