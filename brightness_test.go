package img2ascii

import (
	"math"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestBlockBrightnessSolid(t *testing.T) {
	tests := []struct {
		name string
		c    imageutil.RGB
		want float64
	}{
		{"white", imageutil.White, 1},
		{"black", imageutil.RGB{}, 0},
		{"red", imageutil.RGB{R: 255}, 0.2126},
		{"green", imageutil.RGB{G: 255}, 0.7152},
		{"blue", imageutil.RGB{B: 255}, 0.0722},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlockBrightness(imageutil.CreateSolidImage(4, 4, tt.c))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestBlockBrightnessMixed(t *testing.T) {
	// Half black, half white
	img := imageutil.CreateCheckerboardImage(4, 4, 1)
	got := BlockBrightness(img)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 0.5, got %f", got)
	}
}

func TestBlockBrightnessRange(t *testing.T) {
	images := []*imageutil.RGBAImage{
		imageutil.CreateGradientImage(64, 64),
		imageutil.CreateVerticalGradientImage(64, 64),
		imageutil.CreateColorBarsImage(64, 64),
		imageutil.CreateSolidImage(64, 64, imageutil.White),
	}
	for n, img := range images {
		blocks, err := Partition(img, 8)
		if err != nil {
			t.Fatalf("Partition failed: %v", err)
		}
		for _, row := range blocks {
			for _, block := range row {
				b := BlockBrightness(block)
				if b < 0 || b > 1 {
					t.Errorf("image %d: brightness %f out of range", n, b)
				}
			}
		}
	}
}

func TestBlockBrightnessEmpty(t *testing.T) {
	if got := BlockBrightness(imageutil.NewRGBAImage(0, 0)); got != 0 {
		t.Errorf("Expected 0 for an empty block, got %f", got)
	}
}
