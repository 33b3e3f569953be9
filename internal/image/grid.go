// Package image provides the grayscale grid and image file codecs used by
// the Prewitt edge detector.
//
// A Grid stores integer intensities in one contiguous row-major buffer.
// Codecs read and write plain (P2) and raw (P5) PGM files as well as PNG,
// JPEG, BMP and TIFF rasters, converting colour input to luma.
package image

import (
	"errors"
	"slices"
)

// Common errors for grid operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or the grid would hold more than MaxPixels pixels.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidMaxShade is returned when maxShade is outside [1, 65535].
	ErrInvalidMaxShade = errors.New("image: invalid max shade")

	// ErrRaggedRows is returned when rows passed to FromRows differ in length.
	ErrRaggedRows = errors.New("image: rows have different lengths")

	// ErrOutOfBounds is returned when pixel coordinates are outside grid bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// MaxShadeLimit is the largest max shade value a PGM file may declare.
const MaxShadeLimit = 65535

// MaxPixels caps width*height of a grid (1 GiB of int32 samples).
const MaxPixels = 1 << 28

// Grid is a rectangular grid of integer intensities.
//
// Pixels are stored row-major in a single slice: the value for column x of
// row y lives at index y*width+x. MaxShade is informational; it is carried
// from input to output and used when scaling to 8-bit rasters.
//
// Thread safety: Grid is safe for concurrent reads. Concurrent writes are
// safe only when callers write disjoint rows.
type Grid struct {
	pix      []int32
	width    int
	height   int
	maxShade int
}

// NewGrid creates a zero-filled grid with the given dimensions.
func NewGrid(width, height, maxShade int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return nil, ErrInvalidDimensions
	}
	if maxShade <= 0 || maxShade > MaxShadeLimit {
		return nil, ErrInvalidMaxShade
	}
	return &Grid{
		pix:      make([]int32, width*height),
		width:    width,
		height:   height,
		maxShade: maxShade,
	}, nil
}

// FromRows builds a grid by copying a slice of rows. All rows must have the
// same non-zero length.
func FromRows(rows [][]int, maxShade int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	g, err := NewGrid(len(rows[0]), len(rows), maxShade)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, ErrRaggedRows
		}
		dst := g.Row(y)
		for x, v := range row {
			dst[x] = int32(v)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// MaxShade returns the declared maximum intensity.
func (g *Grid) MaxShade() int {
	return g.maxShade
}

// Bounds returns the grid dimensions as (width, height).
func (g *Grid) Bounds() (int, int) {
	return g.width, g.height
}

// Pix returns the underlying row-major buffer.
// Modifications affect the grid directly.
func (g *Grid) Pix() []int32 {
	return g.pix
}

// Row returns the pixels of row y as a slice into the buffer.
// Returns nil if y is out of bounds.
func (g *Grid) Row(y int) []int32 {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.width
	return g.pix[start : start+g.width]
}

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value at column x of row y.
func (g *Grid) At(x, y int) (int, error) {
	if !g.In(x, y) {
		return 0, ErrOutOfBounds
	}
	return int(g.pix[y*g.width+x]), nil
}

// Set stores v at column x of row y.
func (g *Grid) Set(x, y, v int) error {
	if !g.In(x, y) {
		return ErrOutOfBounds
	}
	g.pix[y*g.width+x] = int32(v)
	return nil
}

// Value returns the value at (x, y) without bounds checking.
// Callers must guarantee the coordinates are in range.
func (g *Grid) Value(x, y int) int {
	return int(g.pix[y*g.width+x])
}

// Put stores v at (x, y) without bounds checking.
func (g *Grid) Put(x, y, v int) {
	g.pix[y*g.width+x] = int32(v)
}

// Fill sets every pixel to v.
func (g *Grid) Fill(v int) {
	for i := range g.pix {
		g.pix[i] = int32(v)
	}
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		pix:      slices.Clone(g.pix),
		width:    g.width,
		height:   g.height,
		maxShade: g.maxShade,
	}
}

// WithMaxShade returns a grid that shares g's pixels but declares a
// different max shade. Values are not rescaled.
func (g *Grid) WithMaxShade(maxShade int) *Grid {
	return &Grid{
		pix:      g.pix,
		width:    g.width,
		height:   g.height,
		maxShade: maxShade,
	}
}

// Equal reports whether two grids have the same dimensions and pixels.
// MaxShade is not compared.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.width == o.width && g.height == o.height && slices.Equal(g.pix, o.pix)
}
