// Package verify runs exhaustive and sampled correctness sweeps over
// constructed artifacts, parallelized across a goroutine worker pool,
// grounded on pkg/search/worker.go's task-queue-plus-ticker pattern.
package verify

import (
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/blockwire/blockwire/pkg/report"
)

// CheckFunc checks sweep case idx, returning a non-nil mismatch on failure.
type CheckFunc func(idx uint64) *report.Mismatch

// Sweep describes one artifact's correctness sweep: Total cases, each
// identified by an index in [0, Total), checked independently by Check.
type Sweep struct {
	Name  string
	Total uint64
	Check CheckFunc
}

// WorkerPool distributes a Sweep's cases across goroutines.
type WorkerPool struct {
	NumWorkers int
	checked    atomic.Int64
	failed     atomic.Int64
}

// NewWorkerPool creates a pool with the given worker count; 0 or less
// means runtime.NumCPU().
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{NumWorkers: numWorkers}
}

// caseRange is one chunk of sweep indices handed to a worker.
type caseRange struct {
	lo, hi uint64
}

const chunkSize = 4096

// Run executes s across the pool and returns a summary. Progress is
// logged via glog every 10 seconds for sweeps that take long enough to
// need it.
func (wp *WorkerPool) Run(s Sweep) report.Summary {
	summary, _ := wp.RunCheckpointed(s, "")
	return summary
}

// RunCheckpointed is Run, plus checkpointing to checkpointPath: if a
// checkpoint for the same artifact and case count already exists there,
// the sweep resumes after its last contiguously-completed chunk instead of
// starting over; a fresh checkpoint is written every 10 seconds alongside
// the progress log, and once more when the sweep finishes (or removed, if
// the sweep ran to completion). An empty checkpointPath disables all of
// this and behaves exactly like Run.
func (wp *WorkerPool) RunCheckpointed(s Sweep, checkpointPath string) (report.Summary, error) {
	table := report.NewTable()
	var resumeFrom uint64
	if checkpointPath != "" {
		ckpt, err := report.LoadCheckpoint(checkpointPath)
		if err != nil && !os.IsNotExist(err) {
			return report.Summary{}, err
		}
		if err == nil && ckpt.Artifact == s.Name && ckpt.Total == int64(s.Total) {
			resumeFrom = uint64(ckpt.Completed)
			wp.checked.Store(ckpt.Completed)
			wp.failed.Store(int64(len(ckpt.Mismatches)))
			for _, m := range ckpt.Mismatches {
				table.Add(m)
			}
			glog.Infof("verify[%s]: resuming from checkpoint at %d/%d", s.Name, resumeFrom, s.Total)
		}
	}

	var ranges []caseRange
	for lo := resumeFrom; lo < s.Total; lo += chunkSize {
		hi := lo + chunkSize
		if hi > s.Total {
			hi = s.Total
		}
		ranges = append(ranges, caseRange{lo, hi})
	}
	tracker := &rangeTracker{done: make([]bool, len(ranges)), contiguousHi: resumeFrom}

	type indexedRange struct {
		idx int
		r   caseRange
	}
	ch := make(chan indexedRange, len(ranges))
	for i, r := range ranges {
		ch <- indexedRange{i, r}
	}
	close(ch)

	done := make(chan struct{})
	start := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				glog.Infof("verify[%s]: %d/%d checked, %d failed, %s elapsed",
					s.Name, wp.checked.Load(), s.Total, wp.failed.Load(), time.Since(start).Round(time.Second))
				if err := wp.saveCheckpoint(s, checkpointPath, tracker, table); err != nil {
					glog.Errorf("verify[%s]: checkpoint save failed: %v", s.Name, err)
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ir := range ch {
				wp.runRange(s, ir.r, table)
				tracker.markDone(ir.idx, ranges)
			}
		}()
	}
	wg.Wait()
	close(done)

	glog.Infof("verify[%s]: done, %d/%d checked, %d failed, %s elapsed",
		s.Name, wp.checked.Load(), s.Total, wp.failed.Load(), time.Since(start).Round(time.Second))

	if checkpointPath != "" {
		if uint64(wp.checked.Load()) >= s.Total {
			if err := os.Remove(checkpointPath); err != nil && !os.IsNotExist(err) {
				return report.Summary{}, err
			}
		} else if err := wp.saveCheckpoint(s, checkpointPath, tracker, table); err != nil {
			return report.Summary{}, err
		}
	}

	return report.Summary{
		Artifact:   s.Name,
		Cases:      wp.checked.Load(),
		Failed:     wp.failed.Load(),
		Mismatches: table.Mismatches(),
	}, nil
}

func (wp *WorkerPool) saveCheckpoint(s Sweep, path string, tracker *rangeTracker, table *report.Table) error {
	if path == "" {
		return nil
	}
	return report.SaveCheckpoint(path, &report.Checkpoint{
		Artifact:   s.Name,
		Completed:  int64(tracker.completed()),
		Total:      int64(s.Total),
		Mismatches: table.Mismatches(),
	})
}

func (wp *WorkerPool) runRange(s Sweep, r caseRange, table *report.Table) {
	for idx := r.lo; idx < r.hi; idx++ {
		wp.checked.Add(1)
		if m := s.Check(idx); m != nil {
			wp.failed.Add(1)
			table.Add(*m)
		}
	}
}

// rangeTracker records which chunks of a sweep have completed, so a
// checkpoint only ever claims a case count with every case below it
// actually checked — never a range with in-flight or unchecked cases
// inside it, even though workers can finish chunks out of order.
type rangeTracker struct {
	mu           sync.Mutex
	done         []bool
	nextIdx      int
	contiguousHi uint64
}

func (rt *rangeTracker) markDone(i int, ranges []caseRange) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.done[i] = true
	for rt.nextIdx < len(ranges) && rt.done[rt.nextIdx] {
		rt.contiguousHi = ranges[rt.nextIdx].hi
		rt.nextIdx++
	}
}

func (rt *rangeTracker) completed() uint64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.contiguousHi
}
