package parallel

import (
	"log/slog"

	"github.com/gogpu/prewitt/internal/filter"
	"github.com/gogpu/prewitt/internal/image"
)

// WorkerState is the lifecycle state of a worker.
type WorkerState uint8

const (
	// WorkerRunning means the worker is about to claim a chunk.
	WorkerRunning WorkerState = iota

	// WorkerProcessing means the worker is filtering the rows of a chunk.
	WorkerProcessing

	// WorkerDone means the worker claimed an empty chunk and exited.
	WorkerDone
)

// String returns the state name.
func (s WorkerState) String() string {
	switch s {
	case WorkerRunning:
		return "running"
	case WorkerProcessing:
		return "processing"
	case WorkerDone:
		return "done"
	default:
		return "unknown"
	}
}

// WorkerStats records what a single worker did during a run.
type WorkerStats struct {
	// ID is the worker label, 0..threads-1.
	ID int

	// Chunks lists the non-empty chunks the worker processed, in claim order.
	Chunks []Chunk

	// Rows is the total number of rows the worker filtered.
	Rows int
}

// Worker repeatedly claims chunks and writes the Prewitt gradient of every
// pixel in the claimed rows to the output grid.
//
// Workers never share rows, so writes to the output need no locking.
type Worker struct {
	id    int
	alloc *ChunkAllocator
	in    *image.Grid
	out   *image.Grid
	state WorkerState
	stats WorkerStats
}

// NewWorker creates a worker with the given label reading in and writing out.
// in and out must have the same dimensions as the allocator's height.
func NewWorker(id int, alloc *ChunkAllocator, in, out *image.Grid) *Worker {
	return &Worker{
		id:    id,
		alloc: alloc,
		in:    in,
		out:   out,
		stats: WorkerStats{ID: id},
	}
}

// Run processes chunks until the allocator is exhausted.
func (w *Worker) Run() {
	log := logger()
	for {
		w.state = WorkerRunning
		chunk, claimed := w.alloc.Claim()
		if chunk.Empty() {
			w.state = WorkerDone
			log.Debug("worker done", "worker", w.id, "chunks", len(w.stats.Chunks), "rows", w.stats.Rows)
			return
		}

		w.state = WorkerProcessing
		log.Debug("worker claimed chunk",
			"worker", w.id, "chunk", claimed-1,
			slog.Int("start", chunk.Start), slog.Int("end", chunk.End))
		w.process(chunk)
		w.stats.Chunks = append(w.stats.Chunks, chunk)
		w.stats.Rows += chunk.Rows()
	}
}

// process filters every pixel of the rows in chunk.
func (w *Worker) process(chunk Chunk) {
	width := w.in.Width()
	for row := chunk.Start; row < chunk.End; row++ {
		dst := w.out.Row(row)
		for col := range width {
			dst[col] = int32(filter.Prewitt(w.in, row, col))
		}
	}
}

// State returns the current lifecycle state.
// It is only meaningful when read from the worker's own goroutine or after
// Run has returned.
func (w *Worker) State() WorkerState {
	return w.state
}

// Stats returns what the worker did. Call after Run has returned.
func (w *Worker) Stats() WorkerStats {
	return w.stats
}
