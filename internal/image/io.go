package image

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// JPEGQuality is the quality used when writing JPEG output.
const JPEGQuality = 95

// Load reads an image file, detecting the format from its content.
func Load(path string) (*Grid, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads an image, detecting PGM by its magic number and any other
// registered raster format through the standard image registry.
func Decode(r io.Reader) (*Grid, Format, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if len(head) == 0 {
		if err == nil || err == io.EOF {
			return nil, 0, ErrEmptyData
		}
		return nil, 0, fmt.Errorf("image: read: %w", err)
	}
	if isPGMHead(head) {
		return DecodePGM(br)
	}

	img, name, err := image.Decode(br)
	if err != nil {
		return nil, 0, fmt.Errorf("image: decode: %w", err)
	}
	format, err := ParseFormat(name)
	if err != nil {
		return nil, 0, fmt.Errorf("image: decode %s: %w", name, err)
	}
	return FromStdImage(img), format, nil
}

// sniffLen is how much of the input is inspected to detect PGM.
const sniffLen = 4096

// isPGMHead reports whether head starts with a P2 or P5 magic number,
// possibly preceded by whitespace and '#' comment lines.
func isPGMHead(head []byte) bool {
	for len(head) > 0 {
		switch c := head[0]; {
		case isSpace(c):
			head = head[1:]
		case c == '#':
			i := bytes.IndexByte(head, '\n')
			if i < 0 {
				return false
			}
			head = head[i+1:]
		default:
			return len(head) >= 2 && c == 'P' && (head[1] == '2' || head[1] == '5')
		}
	}
	return false
}

// Save writes g to path in the given format.
func Save(g *Grid, path string, format Format) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, g, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes g to w in the given format. Raster formats are written as
// 8-bit gray with values scaled from [0, maxShade] to [0, 255].
func Encode(w io.Writer, g *Grid, format Format) error {
	if format.IsPGM() {
		return EncodePGM(w, g, format)
	}

	img := g.ToStdImage()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", format, err)
	}
	return nil
}

// FromStdImage converts a standard library image to a grid.
//
// 16-bit gray images keep their full range (maxShade 65535). Everything
// else is converted to 8-bit luma (maxShade 255).
func FromStdImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if g16, ok := img.(*image.Gray16); ok {
		g := &Grid{pix: make([]int32, width*height), width: width, height: height, maxShade: 0xffff}
		for y := range height {
			dst := g.Row(y)
			for x := range width {
				dst[x] = int32(g16.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return g
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(image.Rect(0, 0, width, height))
		draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
		bounds = gray.Bounds()
	}

	g := &Grid{pix: make([]int32, width*height), width: width, height: height, maxShade: 255}
	for y := range height {
		srcStart := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := gray.Pix[srcStart : srcStart+width]
		dst := g.Row(y)
		for x, v := range src {
			dst[x] = int32(v)
		}
	}
	return g
}

// ToStdImage converts the grid to an 8-bit gray image.
// Values are scaled by 255/maxShade and clamped to [0, 255].
func (g *Grid) ToStdImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := range g.height {
		dst := img.Pix[y*img.Stride : y*img.Stride+g.width]
		for x, v := range g.Row(y) {
			dst[x] = scaleTo8(int(v), g.maxShade)
		}
	}
	return img
}

func scaleTo8(v, maxShade int) uint8 {
	if maxShade != 255 {
		v = (v*255 + maxShade/2) / maxShade
	}
	return uint8(min(max(v, 0), 255))
}
