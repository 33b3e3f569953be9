package image

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		maxShade int
		wantErr  error
	}{
		{"valid", 10, 5, 255, nil},
		{"single pixel", 1, 1, 1, nil},
		{"16-bit", 3, 3, 65535, nil},
		{"zero width", 0, 5, 255, ErrInvalidDimensions},
		{"zero height", 5, 0, 255, ErrInvalidDimensions},
		{"negative", -1, 5, 255, ErrInvalidDimensions},
		{"too many pixels", MaxPixels/4 + 1, 4, 255, ErrInvalidDimensions},
		{"huge both ways", MaxPixels, MaxPixels, 255, ErrInvalidDimensions},
		{"zero shade", 5, 5, 0, ErrInvalidMaxShade},
		{"shade too large", 5, 5, 65536, ErrInvalidMaxShade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.w, tt.h, tt.maxShade)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewGrid() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if g.Width() != tt.w || g.Height() != tt.h {
				t.Errorf("Bounds = (%d, %d), want (%d, %d)", g.Width(), g.Height(), tt.w, tt.h)
			}
			if g.MaxShade() != tt.maxShade {
				t.Errorf("MaxShade() = %d, want %d", g.MaxShade(), tt.maxShade)
			}
			if len(g.Pix()) != tt.w*tt.h {
				t.Errorf("len(Pix()) = %d, want %d", len(g.Pix()), tt.w*tt.h)
			}
		})
	}
}

func TestGridRowMajorLayout(t *testing.T) {
	g, _ := NewGrid(4, 3, 255)
	if err := g.Set(1, 2, 77); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := g.Pix()[2*4+1]; got != 77 {
		t.Errorf("Pix()[9] = %d, want 77", got)
	}
	if got := g.Row(2)[1]; got != 77 {
		t.Errorf("Row(2)[1] = %d, want 77", got)
	}
	if got := g.Value(1, 2); got != 77 {
		t.Errorf("Value(1, 2) = %d, want 77", got)
	}
}

func TestGridBoundsChecks(t *testing.T) {
	g, _ := NewGrid(3, 2, 255)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}}
	for _, c := range coords {
		if _, err := g.At(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := g.Set(c[0], c[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if g.Row(-1) != nil || g.Row(2) != nil {
		t.Error("Row() outside bounds should return nil")
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}}, 9)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	if w, h := g.Bounds(); w != 3 || h != 2 {
		t.Errorf("Bounds() = (%d, %d), want (3, 2)", w, h)
	}
	if v, _ := g.At(2, 1); v != 6 {
		t.Errorf("At(2, 1) = %d, want 6", v)
	}

	if _, err := FromRows([][]int{{1, 2}, {3}}, 9); !errors.Is(err, ErrRaggedRows) {
		t.Errorf("FromRows(ragged) error = %v, want ErrRaggedRows", err)
	}
	if _, err := FromRows(nil, 9); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FromRows(nil) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g, _ := NewGrid(5, 5, 255)
	g.Fill(10)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Clone() should be equal to original")
	}

	c.Put(2, 2, 11)
	if g.Equal(c) {
		t.Error("modified clone should differ")
	}
	if g.Value(2, 2) != 10 {
		t.Error("modifying clone changed the original")
	}

	other, _ := NewGrid(5, 4, 255)
	if g.Equal(other) {
		t.Error("grids with different dimensions should not be equal")
	}
	var nilGrid *Grid
	if g.Equal(nilGrid) || !nilGrid.Equal(nil) {
		t.Error("nil comparison mismatch")
	}
}

func TestGridWithMaxShadeSharesPixels(t *testing.T) {
	g, _ := NewGrid(2, 2, 65535)
	r := g.WithMaxShade(255)
	r.Put(1, 1, 200)

	if g.Value(1, 1) != 200 {
		t.Error("WithMaxShade() should share the pixel buffer")
	}
	if g.MaxShade() != 65535 || r.MaxShade() != 255 {
		t.Errorf("MaxShade = (%d, %d), want (65535, 255)", g.MaxShade(), r.MaxShade())
	}
}
