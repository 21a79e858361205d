// Package bench runs the two-phase filesystem read benchmark: list every
// regular file under the roots, then read all of their contents through a
// bounded worker pool. The phases are timed independently and never overlap.
package bench

import (
	"context"

	"github.com/pkg/errors"

	"fsbench/src/fswalk"
	"fsbench/src/log"
	"fsbench/src/metrics"
)

// Config holds the knobs of one benchmark run.
type Config struct {
	// Threads is the worker count for the read phase. Must be at least 1;
	// with 1 the pool degenerates to sequential processing.
	Threads int
	// QueueDepth bounds the pending-work buffer between the producer and the
	// workers. Zero means DefaultQueueDepth.
	QueueDepth int
	// BufferSize is the per-worker read chunk size in bytes. Zero means
	// DefaultBufferSize.
	BufferSize int
}

// Result is the immutable outcome of one run, consumed by the reporter.
type Result struct {
	Roots   []string
	Threads int

	List metrics.Snapshot
	Read metrics.Snapshot

	ReadFailures int64
	DirsSkipped  int64
}

// Run validates the roots, executes the list phase and then the read phase,
// and returns the final totals. agg observes the run live; the Result is the
// settled snapshot once both phases completed. Roots are reported as given.
func Run(ctx context.Context, cfg Config, roots []string, agg *metrics.Aggregator) (*Result, error) {
	if cfg.Threads < 1 {
		return nil, errors.Errorf("thread count must be at least 1, got %d", cfg.Threads)
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = DefaultQueueDepth
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}

	// A bad root fails the run before any clock starts. It must not be
	// reported as an empty tree.
	if err := fswalk.ValidateRoots(roots); err != nil {
		return nil, err
	}

	agg.List.Start()
	var entries []fswalk.FileEntry
	wstats, err := fswalk.Walk(roots, func(entry fswalk.FileEntry) {
		entries = append(entries, entry)
		agg.List.AddFiles(1)
		agg.List.AddBytes(entry.Size)
	})
	agg.List.Stop()
	agg.DirsSkipped.Store(wstats.DirsSkipped)
	if err != nil {
		return nil, errors.Wrap(err, "enumeration failed")
	}
	log.Debug("list phase complete",
		"files", len(entries), "apparent_bytes", agg.List.Bytes(), "dirs_skipped", wstats.DirsSkipped)

	agg.Read.Start()
	err = runReadPhase(ctx, cfg, entries, agg)
	agg.Read.Stop()
	if err != nil {
		return nil, err
	}
	log.Debug("read phase complete",
		"files", agg.Read.Files(), "bytes", agg.Read.Bytes(), "failures", agg.ReadFailures.Load())

	return &Result{
		Roots:        append([]string(nil), roots...),
		Threads:      cfg.Threads,
		List:         agg.List.Snapshot(),
		Read:         agg.Read.Snapshot(),
		ReadFailures: agg.ReadFailures.Load(),
		DirsSkipped:  agg.DirsSkipped.Load(),
	}, nil
}
