// Package prewitt detects edges in grayscale images with the Prewitt
// gradient operator, spreading the rows of the image over a fixed set of
// goroutines.
//
// # Quick Start
//
//	import "github.com/gogpu/prewitt"
//
//	// Filter a PGM file with 4 workers pulling from 16 row chunks.
//	stats, err := prewitt.DetectFile("in.pgm", "edges.pgm",
//	    prewitt.WithThreads(4), prewitt.WithChunks(16))
//
// # Work distribution
//
// The image rows are cut into totalChunks chunks of ceil(height/totalChunks)
// rows each. Workers claim chunks from a mutex-guarded counter until the
// counter runs past the last row, so faster workers simply claim more
// chunks. Chunks never overlap, which lets every worker write its rows of
// the output without locking. The output does not depend on the number of
// workers or chunks.
//
// # Gradient
//
// For every interior pixel the 3x3 neighborhood is convolved with
//
//	Gx = [[1,0,-1],[1,0,-1],[1,0,-1]]
//	Gy = [[1,1,1],[0,0,0],[-1,-1,-1]]
//
// and the result is sqrt(gx*gx + gy*gy) truncated toward zero and clamped to
// [0, 255]. Border pixels are 0.
//
// # Formats
//
// Input and output may be plain (P2) or raw (P5) PGM, PNG, JPEG, BMP or TIFF.
// Colour rasters are converted to luma. PGM output keeps the input max
// shade; raster output is 8-bit gray.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package prewitt
