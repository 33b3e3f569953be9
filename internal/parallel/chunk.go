package parallel

import "sync"

// Chunk is a half-open row interval [Start, End) of the image.
type Chunk struct {
	Start int
	End   int
}

// Empty reports whether the chunk covers no rows. A worker that claims an
// empty chunk has run out of work.
func (c Chunk) Empty() bool {
	return c.Start >= c.End
}

// Rows returns the number of rows in the chunk.
func (c Chunk) Rows() int {
	if c.Empty() {
		return 0
	}
	return c.End - c.Start
}

// RowsPerChunk returns ceil(height / totalChunks).
// totalChunks must be at least 1.
func RowsPerChunk(height, totalChunks int) int {
	return (height + totalChunks - 1) / totalChunks
}

// ChunkAllocator hands out consecutive row ranges to whichever worker asks.
//
// A single counter, starting at zero, is converted to a row range on every
// claim and then advanced by one. Claims are serialized by a mutex; the
// critical section covers only that arithmetic, so pixel work proceeds
// outside the lock.
//
// Thread safety: ChunkAllocator is safe for concurrent use.
type ChunkAllocator struct {
	mu sync.Mutex

	// counter is the index of the next unclaimed chunk. It is never reset.
	counter int

	height       int
	rowsPerChunk int
}

// NewChunkAllocator creates an allocator covering rows [0, height) in
// totalChunks fixed-size chunks. The last non-empty chunk may be shorter.
//
// The arguments are not validated: height must be positive and totalChunks
// at least 1.
func NewChunkAllocator(height, totalChunks int) *ChunkAllocator {
	return &ChunkAllocator{
		height:       height,
		rowsPerChunk: RowsPerChunk(height, totalChunks),
	}
}

// Claim returns the next row range and the counter value after the claim.
// Once every row has been handed out, Claim keeps returning empty chunks.
func (a *ChunkAllocator) Claim() (Chunk, int) {
	a.mu.Lock()
	start := a.counter * a.rowsPerChunk
	end := min(start+a.rowsPerChunk, a.height)
	a.counter++
	next := a.counter
	a.mu.Unlock()

	return Chunk{Start: start, End: end}, next
}

// Claimed returns the number of claims made so far, including empty ones.
func (a *ChunkAllocator) Claimed() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counter
}

// RowsPerChunk returns the size of every chunk but possibly the last.
func (a *ChunkAllocator) RowsPerChunk() int {
	return a.rowsPerChunk
}

// Height returns the number of rows being distributed.
func (a *ChunkAllocator) Height() int {
	return a.height
}
