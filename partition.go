package img2ascii

import (
	"fmt"

	"github.com/wbrown/img2ascii/imageutil"
)

// blockGeometry validates that resolution blocks per row tile a
// width x height image into whole square blocks, and returns the block side
// length and the number of block rows.
func blockGeometry(width, height, resolution int) (blockSize, rows int, err error) {
	if resolution < 1 || resolution > width || width%resolution != 0 {
		return 0, 0, fmt.Errorf("%w: resolution %d does not divide width %d",
			ErrInvalidPartition, resolution, width)
	}
	blockSize = width / resolution
	if height%blockSize != 0 {
		return 0, 0, fmt.Errorf("%w: block size %d does not divide height %d",
			ErrInvalidPartition, blockSize, height)
	}
	return blockSize, height / blockSize, nil
}

// Partition slices img into a grid of square blocks, resolution blocks per
// row. Block (i, j) is a copy of rows [i*size, (i+1)*size) and columns
// [j*size, (j+1)*size) of img. It fails with ErrInvalidPartition rather
// than truncating when the blocks would not cover img exactly.
func Partition(img *imageutil.RGBAImage, resolution int) ([][]*imageutil.RGBAImage, error) {
	blockSize, rows, err := blockGeometry(img.Width(), img.Height(), resolution)
	if err != nil {
		return nil, err
	}

	blocks := make([][]*imageutil.RGBAImage, rows)
	for i := range blocks {
		blocks[i] = make([]*imageutil.RGBAImage, resolution)
		for j := range blocks[i] {
			blocks[i][j] = img.Crop(j*blockSize, i*blockSize, blockSize, blockSize)
		}
	}
	return blocks, nil
}

// ValidateResolution reports whether resolution can partition img once it
// has been padded, without allocating anything.
func ValidateResolution(img *imageutil.RGBAImage, resolution int) error {
	paddedWidth, paddedHeight := PaddedSize(img.Width(), img.Height())
	_, _, err := blockGeometry(paddedWidth, paddedHeight, resolution)
	return err
}

// ResolutionBounds returns the resolution range a caller should allow for
// img: at most one block per pixel column, and at least enough blocks per
// row that a block is no taller than the image.
func ResolutionBounds(img *imageutil.RGBAImage) (minResolution, maxResolution int) {
	width, height := img.Width(), img.Height()
	return max(1, width/height), width
}
