package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an image file encoding.
type Format uint8

const (
	// FormatPGMPlain is the ASCII portable graymap (magic "P2").
	FormatPGMPlain Format = iota

	// FormatPGMRaw is the binary portable graymap (magic "P5").
	// Samples are 1 byte when maxShade < 256, 2 bytes big-endian otherwise.
	FormatPGMRaw

	// FormatPNG is a PNG raster.
	FormatPNG

	// FormatJPEG is a JPEG raster.
	FormatJPEG

	// FormatBMP is a Windows bitmap.
	FormatBMP

	// FormatTIFF is a TIFF raster.
	FormatTIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the short lower-case name used on the command line.
	Name string

	// Extensions lists file extensions, the first one is canonical.
	Extensions []string

	// IsPGM indicates a netpbm graymap that preserves maxShade.
	IsPGM bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatPGMPlain: {Name: "pgm", Extensions: []string{".pgm"}, IsPGM: true},
	FormatPGMRaw:   {Name: "pgm-raw", Extensions: []string{".pgm"}, IsPGM: true},
	FormatPNG:      {Name: "png", Extensions: []string{".png"}},
	FormatJPEG:     {Name: "jpeg", Extensions: []string{".jpg", ".jpeg"}},
	FormatBMP:      {Name: "bmp", Extensions: []string{".bmp"}},
	FormatTIFF:     {Name: "tiff", Extensions: []string{".tif", ".tiff"}},
}

// Info returns metadata for the format.
// Returns an empty FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// IsPGM returns true for the netpbm graymap formats.
func (f Format) IsPGM() bool {
	return f.Info().IsPGM
}

// String returns the short name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return formatInfoTable[f].Name
}

// ParseFormat returns the format with the given short name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "jpg" {
		name = "jpeg"
	}
	if name == "tif" {
		name = "tiff"
	}
	for f := range formatCount {
		if formatInfoTable[f].Name == name {
			return f, nil
		}
	}
	return 0, ErrUnsupportedFormat
}

// FormatFromPath picks a format from the file extension.
// ".pgm" maps to FormatPGMPlain, the format the detector writes by default.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for f := range formatCount {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f, nil
			}
		}
	}
	return 0, ErrUnsupportedFormat
}
