package image

import (
	"errors"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatPGMPlain, "pgm"},
		{FormatPGMRaw, "pgm-raw"},
		{FormatPNG, "png"},
		{FormatJPEG, "jpeg"},
		{FormatBMP, "bmp"},
		{FormatTIFF, "tiff"},
		{Format(100), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatIsPGM(t *testing.T) {
	for f := range formatCount {
		want := f == FormatPGMPlain || f == FormatPGMRaw
		if f.IsPGM() != want {
			t.Errorf("%v.IsPGM() = %v, want %v", f, f.IsPGM(), want)
		}
	}
	if Format(100).IsPGM() || Format(100).IsValid() {
		t.Error("invalid format should be neither PGM nor valid")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"pgm", FormatPGMPlain},
		{"PGM-RAW", FormatPGMRaw},
		{" png ", FormatPNG},
		{"jpg", FormatJPEG},
		{"jpeg", FormatJPEG},
		{"bmp", FormatBMP},
		{"tif", FormatTIFF},
		{"tiff", FormatTIFF},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"edges.pgm", FormatPGMPlain},
		{"/tmp/EDGES.PGM", FormatPGMPlain},
		{"a.png", FormatPNG},
		{"a.jpg", FormatJPEG},
		{"a.jpeg", FormatJPEG},
		{"a.bmp", FormatBMP},
		{"a.tif", FormatTIFF},
		{"a.tiff", FormatTIFF},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q) error = %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	for _, bad := range []string{"noext", "a.gif", "a.pgm.bak"} {
		if _, err := FormatFromPath(bad); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", bad, err)
		}
	}
}
