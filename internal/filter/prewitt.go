package filter

import (
	"math"

	"github.com/gogpu/prewitt/internal/image"
)

// MaxIntensity is the largest gradient value the operator reports.
const MaxIntensity = 255

// IsBorder reports whether (row, col) lies on the outer edge of a
// height x width grid.
func IsBorder(row, col, height, width int) bool {
	return row == 0 || row == height-1 || col == 0 || col == width-1
}

// Responses returns the raw Prewitt responses gx and gy at an interior
// pixel. The caller must ensure (row, col) is not on the border.
func Responses(in *image.Grid, row, col int) (gx, gy int) {
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			v := in.Value(col+j, row+i)
			gx += v * PrewittX[i+1][j+1]
			gy += v * PrewittY[i+1][j+1]
		}
	}
	return gx, gy
}

// Magnitude converts gradient responses to an intensity in [0, 255].
// The square root is truncated toward zero, not rounded.
func Magnitude(gx, gy int) int {
	grad := int(math.Sqrt(float64(gx*gx + gy*gy)))
	return clamp(grad)
}

// Prewitt returns the gradient magnitude at row, col of in.
// Border pixels have no full neighborhood and yield 0.
func Prewitt(in *image.Grid, row, col int) int {
	if IsBorder(row, col, in.Height(), in.Width()) {
		return 0
	}
	return Magnitude(Responses(in, row, col))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
