package ascii

import (
	"image"
	"math"
)

// contrastEpsilon is how far from 1.0 a contrast must be before it is applied
const contrastEpsilon = 1e-3

// AdjustContrast returns a copy of gray with its contrast scaled around mid-grey.
// A contrast of 1.0 is the identity; above 1.0 increases contrast.
func AdjustContrast(gray *image.Gray, contrast float64) *image.Gray {
	out := image.NewGray(gray.Rect)

	for i, v := range gray.Pix {
		f := (float32(v)/255.0-0.5)*float32(contrast) + 0.5
		f = float32(math.Max(0, math.Min(1, float64(f))))
		out.Pix[i] = uint8(f * 255.0)
	}

	return out
}

// needsContrast reports whether contrast differs enough from 1.0 to matter
func needsContrast(contrast float64) bool {
	return math.Abs(contrast-1.0) > contrastEpsilon
}
