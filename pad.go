package img2ascii

import (
	"image"
	"image/draw"
	"math/bits"

	"github.com/wbrown/img2ascii/imageutil"
)

// nextPowerOfTwo returns the smallest power of two that is >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// PaddedSize returns the dimensions PadImage would produce for an image of
// the given size.
func PaddedSize(width, height int) (int, int) {
	return nextPowerOfTwo(width), nextPowerOfTwo(height)
}

// PadImage grows img to the nearest power of two on both axes, filling the
// new area with white and centering the original content. The offset on
// each axis is half the difference rounded down, so an odd remainder lands
// on the bottom/right edge. An image that is already a power of two on both
// axes is returned as is.
func PadImage(img *imageutil.RGBAImage) *imageutil.RGBAImage {
	width, height := img.Width(), img.Height()
	paddedWidth, paddedHeight := PaddedSize(width, height)
	if paddedWidth == width && paddedHeight == height {
		return img
	}

	padded := imageutil.NewFilledImage(paddedWidth, paddedHeight, imageutil.White)
	offsetX := (paddedWidth - width) / 2
	offsetY := (paddedHeight - height) / 2
	dst := image.Rect(offsetX, offsetY, offsetX+width, offsetY+height)
	draw.Draw(padded.RGBA, dst, img.RGBA, img.Bounds().Min, draw.Src)
	return padded
}
