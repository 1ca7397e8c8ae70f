package report

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds state for resuming a long verification sweep.
type Checkpoint struct {
	Artifact  string
	Completed int64 // number of cases already checked
	Total     int64
	Mismatches []Mismatch
}

func init() {
	gob.Register(Mismatch{})
}

// SaveCheckpoint writes sweep state to a file.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint loads sweep state from a file.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
