package parallel

import (
	"sync"
	"time"

	"github.com/gogpu/prewitt/internal/image"
)

// Dispatcher runs a fixed set of workers over one image and waits for all of
// them to finish.
//
// Workers are created once per run and joined once. The dispatcher itself
// never touches pixel data. A Dispatcher is single-use: its chunk counter is
// never reset, so a second Run finds no work.
type Dispatcher struct {
	alloc   *ChunkAllocator
	in      *image.Grid
	out     *image.Grid
	workers []*Worker
}

// NewDispatcher prepares a run that reads in and writes the gradient image to
// out, split into totalChunks row chunks. in and out must have the same
// dimensions.
func NewDispatcher(in, out *image.Grid, totalChunks int) *Dispatcher {
	return &Dispatcher{
		alloc: NewChunkAllocator(in.Height(), totalChunks),
		in:    in,
		out:   out,
	}
}

// Run starts threads workers labeled 0..threads-1, blocks until every one of
// them is done, and returns the wall-clock duration of the parallel phase.
//
// threads is not validated. With zero or negative workers nothing is processed and the
// output is left as it was.
func (d *Dispatcher) Run(threads int) time.Duration {
	threads = max(threads, 0)
	log := logger()
	log.Info("dispatching workers",
		"threads", threads,
		"height", d.alloc.Height(),
		"rows_per_chunk", d.alloc.RowsPerChunk())

	d.workers = make([]*Worker, threads)
	for i := range threads {
		d.workers[i] = NewWorker(i, d.alloc, d.in, d.out)
	}

	var wg sync.WaitGroup
	start := time.Now()

	wg.Add(threads)
	for _, w := range d.workers {
		go func() {
			defer wg.Done()
			w.Run()
		}()
	}
	wg.Wait()

	elapsed := time.Since(start)
	log.Info("workers joined", "threads", threads, "claims", d.alloc.Claimed(), "elapsed", elapsed)
	return elapsed
}

// Allocator returns the chunk allocator shared by the workers.
func (d *Dispatcher) Allocator() *ChunkAllocator {
	return d.alloc
}

// Stats returns per-worker statistics, indexed by worker label.
// Call after Run has returned.
func (d *Dispatcher) Stats() []WorkerStats {
	stats := make([]WorkerStats, len(d.workers))
	for i, w := range d.workers {
		stats[i] = w.Stats()
	}
	return stats
}
