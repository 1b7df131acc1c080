package batch

import (
	"sync/atomic"
	"time"
)

const percentMultiplier = 100

// Progress counts completed items and chunks. It is safe for concurrent use.
type Progress struct {
	totalItems  int
	totalChunks int
	start       time.Time

	doneItems  atomic.Int64
	doneChunks atomic.Int64
}

// NewProgress starts tracking a run of totalItems split into totalChunks.
func NewProgress(totalItems, totalChunks int) *Progress {
	return &Progress{
		totalItems:  totalItems,
		totalChunks: totalChunks,
		start:       time.Now(),
	}
}

// Add records one completed chunk of n items.
func (p *Progress) Add(n int) {
	p.doneItems.Add(int64(n))
	p.doneChunks.Add(1)
}

// Snapshot is a point-in-time copy of a Progress.
type Snapshot struct {
	TotalItems  int
	DoneItems   int
	TotalChunks int
	DoneChunks  int
	Elapsed     time.Duration
}

// Snapshot returns the current counters.
func (p *Progress) Snapshot() Snapshot {
	return Snapshot{
		TotalItems:  p.totalItems,
		DoneItems:   int(p.doneItems.Load()),
		TotalChunks: p.totalChunks,
		DoneChunks:  int(p.doneChunks.Load()),
		Elapsed:     time.Since(p.start),
	}
}

// Percent returns completion in [0, 100].
func (s Snapshot) Percent() float64 {
	if s.TotalItems == 0 {
		return percentMultiplier
	}
	return float64(s.DoneItems) / float64(s.TotalItems) * percentMultiplier
}

// Complete reports whether every item has been processed.
func (s Snapshot) Complete() bool {
	return s.DoneItems >= s.TotalItems
}

// ItemsPerSecond returns the observed throughput, or 0 before any time has passed.
func (s Snapshot) ItemsPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.DoneItems) / secs
}

// Remaining estimates the time left at the observed throughput.
func (s Snapshot) Remaining() time.Duration {
	if s.DoneItems == 0 {
		return 0
	}
	perItem := s.Elapsed / time.Duration(s.DoneItems)
	return perItem * time.Duration(s.TotalItems-s.DoneItems)
}
