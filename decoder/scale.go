package decoder

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit returns the largest size with the same aspect ratio that fits in
// maxWidth x maxHeight. Sizes already inside the box are returned as is.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	ratio := float64(width) / float64(height)
	newWidth, newHeight := maxWidth, int(float64(maxWidth)/ratio)
	if newHeight > maxHeight {
		newHeight = maxHeight
		newWidth = int(float64(maxHeight) * ratio)
	}
	return max(newWidth, 1), max(newHeight, 1)
}

// Downscale shrinks img to fit in the box, or returns it unchanged when it
// already fits.
func Downscale(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return Scale(img, w, h)
}

// Scale resamples img to exactly width x height.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
