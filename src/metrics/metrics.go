// Package metrics accumulates benchmark counters that are safe to mutate
// from concurrent workers and to poll while a phase is running.
package metrics

import (
	"sync/atomic"
	"time"
)

// Phase accumulates item and byte counts for one benchmark phase. Adds are
// safe from any number of goroutines; Start and Stop must be called by the
// single goroutine orchestrating the phase. Every field is atomic so a
// progress renderer may read the phase concurrently.
type Phase struct {
	files   atomic.Int64
	bytes   atomic.Int64
	startNS atomic.Int64
	endNS   atomic.Int64
}

// Start records the phase start, taken just before the first unit of work is
// issued.
func (p *Phase) Start() {
	p.startNS.Store(time.Now().UnixNano())
}

// Stop records the phase end, taken after the last unit of work completed.
func (p *Phase) Stop() {
	p.endNS.Store(time.Now().UnixNano())
}

// Started reports whether Start has been called.
func (p *Phase) Started() bool {
	return p.startNS.Load() != 0
}

// AddFiles adds n processed items to the phase total.
func (p *Phase) AddFiles(n int64) {
	p.files.Add(n)
}

// AddBytes adds n processed bytes to the phase total.
func (p *Phase) AddBytes(n int64) {
	p.bytes.Add(n)
}

// Files returns the items processed so far.
func (p *Phase) Files() int64 {
	return p.files.Load()
}

// Bytes returns the bytes processed so far.
func (p *Phase) Bytes() int64 {
	return p.bytes.Load()
}

// Elapsed returns the wall time between Start and Stop. While the phase is
// running it reports the time since Start; before Start it is zero.
func (p *Phase) Elapsed() time.Duration {
	start := p.startNS.Load()
	if start == 0 {
		return 0
	}
	end := p.endNS.Load()
	if end == 0 {
		end = time.Now().UnixNano()
	}
	return time.Duration(end - start)
}

// Snapshot returns a copy of the phase totals.
func (p *Phase) Snapshot() Snapshot {
	return Snapshot{
		Files:   p.Files(),
		Bytes:   p.Bytes(),
		Elapsed: p.Elapsed(),
	}
}

// Snapshot is a phase's totals at one point in time. Rates are derived from
// the totals on demand, never accumulated separately, so they cannot drift.
type Snapshot struct {
	Files   int64
	Bytes   int64
	Elapsed time.Duration
}

// FilesPerSecond returns the item rate. A phase too fast to measure reports
// 0 instead of dividing by zero.
func (s Snapshot) FilesPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.Files) / secs
}

// BytesPerSecond returns the byte rate. A phase too fast to measure reports
// 0 instead of dividing by zero.
func (s Snapshot) BytesPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.Bytes) / secs
}

// Aggregator owns every counter of one benchmark invocation. It is
// constructed explicitly and handed to the pieces that mutate it; nothing in
// it persists across runs.
type Aggregator struct {
	List Phase
	Read Phase

	ReadFailures atomic.Int64
	DirsSkipped  atomic.Int64
}

// New returns an empty aggregator.
func New() *Aggregator {
	return &Aggregator{}
}
