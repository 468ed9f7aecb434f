package img2ascii

import (
	"errors"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

// coordImage encodes each pixel's position in its color so blocks can be
// traced back to the source.
func coordImage(width, height int) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, imageutil.RGB{R: uint8(x), G: uint8(y), B: 7})
		}
	}
	return img
}

func TestPartitionCoverage(t *testing.T) {
	for _, res := range []int{1, 2, 4, 8, 16, 32} {
		img := coordImage(32, 32)
		blocks, err := Partition(img, res)
		if err != nil {
			t.Fatalf("res %d: Partition failed: %v", res, err)
		}

		blockSize := 32 / res
		if len(blocks) != 32/blockSize {
			t.Fatalf("res %d: expected %d rows, got %d", res, 32/blockSize, len(blocks))
		}

		seen := make(map[imageutil.RGB]int)
		for i, row := range blocks {
			if len(row) != res {
				t.Fatalf("res %d: row %d has %d blocks", res, i, len(row))
			}
			for j, block := range row {
				if block.Width() != blockSize || block.Height() != blockSize {
					t.Fatalf("res %d: block (%d,%d) is %dx%d", res, i, j, block.Width(), block.Height())
				}
				for y := 0; y < blockSize; y++ {
					for x := 0; x < blockSize; x++ {
						c := block.GetRGB(x, y)
						if int(c.R) != j*blockSize+x || int(c.G) != i*blockSize+y {
							t.Fatalf("res %d: block (%d,%d) pixel (%d,%d) came from (%d,%d)",
								res, i, j, x, y, c.R, c.G)
						}
						seen[c]++
					}
				}
			}
		}
		if len(seen) != 32*32 {
			t.Errorf("res %d: expected %d distinct pixels, got %d", res, 32*32, len(seen))
		}
		for c, n := range seen {
			if n != 1 {
				t.Errorf("res %d: pixel %v appears %d times", res, c, n)
			}
		}
	}
}

func TestPartitionInvalid(t *testing.T) {
	img := imageutil.NewRGBAImage(16, 4)
	tests := []struct {
		name string
		res  int
	}{
		{"zero", 0},
		{"negative", -2},
		{"does not divide width", 3},
		{"wider than image", 32},
		{"block taller than image", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := Partition(img, tt.res)
			if !errors.Is(err, ErrInvalidPartition) {
				t.Errorf("Expected ErrInvalidPartition, got %v", err)
			}
			if blocks != nil {
				t.Error("No grid should be returned on error")
			}
		})
	}
}

func TestValidateResolution(t *testing.T) {
	// Pads to 128x64
	img := imageutil.NewRGBAImage(100, 50)

	for _, res := range []int{2, 4, 64, 128} {
		if err := ValidateResolution(img, res); err != nil {
			t.Errorf("res %d: unexpected error %v", res, err)
		}
	}
	for _, res := range []int{1, 3, 100, 256} {
		if err := ValidateResolution(img, res); !errors.Is(err, ErrInvalidPartition) {
			t.Errorf("res %d: expected ErrInvalidPartition, got %v", res, err)
		}
	}
}

func TestResolutionBounds(t *testing.T) {
	tests := []struct {
		width, height int
		wantMin       int
		wantMax       int
	}{
		{100, 50, 2, 100},
		{50, 100, 1, 50},
		{640, 100, 6, 640},
	}
	for _, tt := range tests {
		minRes, maxRes := ResolutionBounds(imageutil.NewRGBAImage(tt.width, tt.height))
		if minRes != tt.wantMin || maxRes != tt.wantMax {
			t.Errorf("%dx%d: expected [%d,%d], got [%d,%d]",
				tt.width, tt.height, tt.wantMin, tt.wantMax, minRes, maxRes)
		}
	}
}
