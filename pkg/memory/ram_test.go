package memory

import "testing"

func TestRAMWriteReadPerAddress(t *testing.T) {
	m := RAM(2, 3) // 4 rows, 3 data bits

	write := func(addr int, data []bool) []bool {
		in := []bool{false, true}
		for i := 0; i < 2; i++ {
			in = append(in, (addr>>uint(i))&1 != 0)
		}
		in = append(in, data...)
		return m.EvalState(in)
	}
	read := func(addr int) []bool {
		in := []bool{true, false}
		for i := 0; i < 2; i++ {
			in = append(in, (addr>>uint(i))&1 != 0)
		}
		in = append(in, make([]bool, 3)...)
		return m.EvalState(in)
	}

	values := map[int][]bool{
		0: {true, false, false},
		1: {false, true, false},
		2: {true, true, false},
		3: {false, false, true},
	}
	for addr, data := range values {
		write(addr, data)
	}
	for addr, data := range values {
		got := read(addr)
		for i := range data {
			if got[i] != data[i] {
				t.Errorf("RAM read(addr=%d)[%d] = %v, want %v", addr, i, got[i], data[i])
			}
		}
	}
}

func TestRAMReadDoesNotReturnOtherRows(t *testing.T) {
	m := RAM(2, 1)
	in := []bool{false, true, true, false, true} // write addr=1, data=1
	m.EvalState(in)

	got := m.EvalState([]bool{true, false, false, false, false}) // read addr=0
	if got[0] != false {
		t.Errorf("RAM read(addr=0) after write(addr=1)=1: got %v, want false", got[0])
	}
}

func TestRAMPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("RAM(0,1) did not panic")
		}
	}()
	RAM(0, 1)
}
