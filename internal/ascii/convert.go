package ascii

import (
	"image"
	"strings"

	"github.com/riordanpawley/asciiart/internal/domain"
	"golang.org/x/image/draw"
)

// Convert renders img as ASCII art using opts.
// Rows are separated by "\n" with no trailing newline.
func Convert(img image.Image, opts domain.Options) (string, error) {
	if img == nil {
		return "", &domain.ImageError{Op: "convert", Err: domain.ErrNoImage}
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", &domain.ImageError{Op: "convert", Err: domain.ErrNoImage}
	}

	chars := []rune(NormalizeCharset(opts.Charset))
	if opts.Invert {
		chars = reverse(chars)
	}

	width := opts.Width
	if width <= 0 {
		width = int(domain.WidthRange.Default)
	}
	height := OutputHeight(bounds.Dx(), bounds.Dy(), width, opts.VerticalScale)

	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Rect, img, bounds.Min, draw.Src)

	resized := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Rect, gray, gray.Rect, draw.Src, nil)

	if needsContrast(opts.Contrast) {
		resized = AdjustContrast(resized, opts.Contrast)
	}

	return render(resized, chars), nil
}

// OutputHeight returns the number of text rows for an image of the given size.
// Glyphs are taller than wide, so verticalScale compresses rows.
func OutputHeight(imgWidth, imgHeight, width int, verticalScale float64) int {
	aspect := float64(imgHeight) / float64(imgWidth)
	h := int(aspect * float64(width) * verticalScale)
	return max(1, h)
}

// render maps each grey level onto the charset, darkest first
func render(gray *image.Gray, chars []rune) string {
	n := len(chars)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()

	lines := make([]string, 0, h)
	row := make([]rune, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := gray.Pix[y*gray.Stride+x]
			idx := int32(float32(v) / 255.0 * float32(n-1))
			row[x] = chars[idx]
		}
		lines = append(lines, string(row))
	}

	return strings.Join(lines, "\n")
}
