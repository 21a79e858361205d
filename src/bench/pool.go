package bench

import (
	"context"
	"sync"

	"fsbench/src/fswalk"
	"fsbench/src/metrics"
)

// DefaultQueueDepth bounds the channel between the producer and the workers
// so a multi-million entry list never piles up in flight.
const DefaultQueueDepth = 256

// runReadPhase feeds entries to cfg.Threads workers and blocks until every
// issued entry has produced exactly one outcome and all workers have exited.
// Cancelling ctx stops the producer; entries already issued still drain.
func runReadPhase(ctx context.Context, cfg Config, entries []fswalk.FileEntry, agg *metrics.Aggregator) error {
	queue := make(chan fswalk.FileEntry, cfg.QueueDepth)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// One reusable buffer per worker for its whole lifetime.
			buf := make([]byte, cfg.BufferSize)
			for entry := range queue {
				fold(agg, readFile(entry, buf))
			}
		}()
	}

	var err error
	for _, entry := range entries {
		select {
		case queue <- entry:
		case <-ctx.Done():
			err = ctx.Err()
		}
		if err != nil {
			break
		}
	}
	close(queue)
	wg.Wait()
	return err
}
