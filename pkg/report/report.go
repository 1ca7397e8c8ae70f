// Package report exports verification results as JSON and checkpoints
// long-running sweeps with encoding/gob, grounded on
// pkg/result/table.go and pkg/result/checkpoint.go.
package report

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// Mismatch records one failing case from a verification sweep: the input
// bit-vector, the artifact's actual output, and the expected output.
type Mismatch struct {
	Input    []bool `json:"input"`
	Got      []bool `json:"got"`
	Expected []bool `json:"expected"`
}

// Table collects mismatches found by a (possibly concurrent) sweep.
type Table struct {
	mu        sync.Mutex
	mismatches []Mismatch
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a mismatch into the table.
func (t *Table) Add(m Mismatch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mismatches = append(t.mismatches, m)
}

// Mismatches returns a copy of all recorded mismatches, sorted by input
// value when interpreted as a bit-vector (lexicographic over the slice).
func (t *Table) Mismatches() []Mismatch {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Mismatch, len(t.mismatches))
	copy(out, t.mismatches)
	sort.Slice(out, func(i, j int) bool {
		return lessBits(out[i].Input, out[j].Input)
	})
	return out
}

// Len returns the number of recorded mismatches.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.mismatches)
}

func lessBits(a, b []bool) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return !a[i] && b[i]
		}
	}
	return len(a) < len(b)
}

// Summary is the JSON-serializable outcome of a verification sweep.
type Summary struct {
	Artifact  string     `json:"artifact"`
	Cases     int64      `json:"cases"`
	Failed    int64      `json:"failed"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// WriteJSON writes s to path as indented JSON.
func WriteJSON(path string, s Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
