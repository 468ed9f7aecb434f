package img2ascii

import (
	"github.com/wbrown/img2ascii/imageutil"
)

const rgbMax = 255

// BlockBrightness returns the mean luminance of block normalized to
// [0, 1]. An empty block has brightness 0.
func BlockBrightness(block *imageutil.RGBAImage) float64 {
	width, height := block.Width(), block.Height()
	if width == 0 || height == 0 {
		return 0
	}

	var sum float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum += imageutil.Luminance(block.GetRGB(x, y))
		}
	}

	// The weights sum to 1 only up to rounding; keep white at exactly 1.
	return min(1, sum/float64(width*height*rgbMax))
}
