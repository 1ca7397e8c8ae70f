package sim

import "testing"

func TestNamesNonEmpty(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no artifacts")
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("Names() contains duplicate %q", n)
		}
		seen[n] = true
	}
}

func TestBuildKnownArtifacts(t *testing.T) {
	tests := []struct {
		name   string
		params []int
		in, out int
	}{
		{"nand", []int{2}, 2, 1},
		{"half-adder", nil, 2, 2},
		{"eight-bit-adder", nil, 17, 9},
		{"n-byte-adder", []int{2}, 32, 16},
		{"bit-decoder", []int{3}, 3, 8},
		{"register", []int{4}, 6, 4},
		{"ram", []int{2, 3}, 7, 3},
		{"clock", nil, 0, 1},
		{"sr-latch", nil, 2, 2},
	}
	for _, tc := range tests {
		b, err := Build(tc.name, tc.params...)
		if err != nil {
			t.Errorf("Build(%q) error = %v", tc.name, err)
			continue
		}
		if b.In() != tc.in || b.Out() != tc.out {
			t.Errorf("Build(%q).In()/Out() = %d/%d, want %d/%d", tc.name, b.In(), b.Out(), tc.in, tc.out)
		}
	}
}

func TestBuildUnknownArtifact(t *testing.T) {
	if _, err := Build("not-a-real-artifact"); err == nil {
		t.Errorf("Build(unknown) error = nil, want error")
	}
}

func TestBuildWrongParamCount(t *testing.T) {
	if _, err := Build("nand"); err == nil {
		t.Errorf("Build(\"nand\") with no params: error = nil, want error")
	}
	if _, err := Build("half-adder", 1); err == nil {
		t.Errorf("Build(\"half-adder\", 1): error = nil, want error")
	}
}
