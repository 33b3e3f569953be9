package prewitt

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/prewitt/internal/filter"
	"github.com/gogpu/prewitt/internal/image"
	"github.com/gogpu/prewitt/internal/parallel"
)

// Image is a grayscale grid of integer intensities stored row-major.
// Build one with NewImage and Set, or with ImageFromRows, and read results
// with At.
type Image = image.Grid

// Format identifies an image file encoding.
type Format = image.Format

// Supported file formats.
const (
	FormatPGMPlain = image.FormatPGMPlain
	FormatPGMRaw   = image.FormatPGMRaw
	FormatPNG      = image.FormatPNG
	FormatJPEG     = image.FormatJPEG
	FormatBMP      = image.FormatBMP
	FormatTIFF     = image.FormatTIFF
)

// Configuration errors.
var (
	// ErrInvalidThreads is returned when fewer than one worker is requested.
	ErrInvalidThreads = errors.New("prewitt: thread count must be at least 1")

	// ErrInvalidChunks is returned when fewer than one chunk is requested.
	ErrInvalidChunks = errors.New("prewitt: chunk count must be at least 1")

	// ErrNilImage is returned when Detect is called without an input image.
	ErrNilImage = errors.New("prewitt: nil input image")
)

// Stats describes a completed detection run.
type Stats struct {
	// Elapsed is the wall-clock duration of the parallel phase only.
	Elapsed time.Duration

	// Threads is the number of workers that ran.
	Threads int

	// Chunks is the requested number of chunks.
	Chunks int

	// RowsPerChunk is ceil(height / Chunks).
	RowsPerChunk int

	// Claims is the number of chunk claims, including one empty claim per
	// worker.
	Claims int

	// WorkerRows holds the number of rows each worker filtered, by label.
	WorkerRows []int
}

// NewImage creates a zero-filled image.
func NewImage(width, height, maxShade int) (*Image, error) {
	return image.NewGrid(width, height, maxShade)
}

// ImageFromRows creates an image from a slice of equal-length rows.
func ImageFromRows(rows [][]int, maxShade int) (*Image, error) {
	return image.FromRows(rows, maxShade)
}

// Detect computes the Prewitt gradient image of in.
//
// The output has the dimensions and max shade of in, with every pixel in
// [0, 255]. The result does not depend on the thread or chunk count.
func Detect(in *Image, opts ...Option) (*Image, Stats, error) {
	o := newOptions(opts)
	if err := o.validate(); err != nil {
		return nil, Stats{}, err
	}
	if in == nil {
		return nil, Stats{}, ErrNilImage
	}

	out, err := image.NewGrid(in.Width(), in.Height(), in.MaxShade())
	if err != nil {
		return nil, Stats{}, fmt.Errorf("prewitt: allocate output: %w", err)
	}

	log := Logger()
	log.Info("detecting edges",
		"width", in.Width(), "height", in.Height(),
		"threads", o.threads, "chunks", o.chunks)

	d := parallel.NewDispatcher(in, out, o.chunks)
	elapsed := d.Run(o.threads)

	stats := Stats{
		Elapsed:      elapsed,
		Threads:      o.threads,
		Chunks:       o.chunks,
		RowsPerChunk: d.Allocator().RowsPerChunk(),
		Claims:       d.Allocator().Claimed(),
		WorkerRows:   make([]int, o.threads),
	}
	for _, ws := range d.Stats() {
		stats.WorkerRows[ws.ID] = ws.Rows
	}

	log.Info("edges detected", "elapsed", elapsed, "claims", stats.Claims)
	return out, stats, nil
}

// DetectFile loads inPath, detects edges and writes the result to outPath.
//
// The input format is detected from the file content. The output format is
// taken from WithOutputFormat if given, otherwise from the extension of
// outPath. PGM output declares the input max shade; see WithFitMaxShade.
func DetectFile(inPath, outPath string, opts ...Option) (Stats, error) {
	o := newOptions(opts)
	if err := o.validate(); err != nil {
		return Stats{}, err
	}

	format := o.format
	if !o.hasFormat {
		f, err := image.FormatFromPath(outPath)
		if err != nil {
			return Stats{}, fmt.Errorf("prewitt: output %s: %w", outPath, err)
		}
		format = f
	}

	in, inFormat, err := image.Load(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("prewitt: read %s: %w", inPath, err)
	}
	Logger().Info("image loaded", "path", inPath, "format", inFormat,
		"width", in.Width(), "height", in.Height(), "max_shade", in.MaxShade())

	out, stats, err := Detect(in, opts...)
	if err != nil {
		return Stats{}, err
	}

	// Gradients are 8-bit. PGM keeps the input max shade in its header
	// unless asked to fit; rasters are written unscaled.
	switch {
	case !format.IsPGM():
		out = out.WithMaxShade(filter.MaxIntensity)
	case o.fitMaxShade && out.MaxShade() < filter.MaxIntensity:
		out = out.WithMaxShade(filter.MaxIntensity)
	}
	if err := image.Save(out, outPath, format); err != nil {
		return stats, fmt.Errorf("prewitt: write %s: %w", outPath, err)
	}
	Logger().Info("image written", "path", outPath, "format", format)
	return stats, nil
}

// ParseFormat returns the format with the given short name
// ("pgm", "pgm-raw", "png", "jpeg", "bmp", "tiff").
func ParseFormat(name string) (Format, error) {
	return image.ParseFormat(name)
}

// validate checks the run configuration. The worker pool itself performs no
// checks, so every entry point goes through here first.
func (o options) validate() error {
	if o.threads < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidThreads, o.threads)
	}
	if o.chunks < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidChunks, o.chunks)
	}
	if o.hasFormat && !o.format.IsValid() {
		return fmt.Errorf("prewitt: %w: %v", image.ErrUnsupportedFormat, o.format)
	}
	return nil
}
