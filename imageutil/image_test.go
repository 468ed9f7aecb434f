package imageutil

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestNewFilledImage(t *testing.T) {
	img := NewFilledImage(4, 3, White)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.GetRGB(x, y); got != White {
				t.Fatalf("Expected white at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRGBAImageCrop(t *testing.T) {
	img := CreateGradientImage(8, 4)
	crop := img.Crop(4, 2, 2, 2)

	if crop.Width() != 2 || crop.Height() != 2 {
		t.Fatalf("Expected 2x2 crop, got %dx%d", crop.Width(), crop.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if crop.GetRGB(x, y) != img.GetRGB(4+x, 2+y) {
				t.Errorf("Crop pixel (%d,%d) does not match source", x, y)
			}
		}
	}

	// Crop is a copy
	crop.SetRGB(0, 0, RGB{R: 1, G: 2, B: 3})
	if img.GetRGB(4, 2) == (RGB{R: 1, G: 2, B: 3}) {
		t.Error("Modifying crop should not affect original")
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want float64
	}{
		{"black", RGB{0, 0, 0}, 0},
		{"white", RGB{255, 255, 255}, 255},
		{"red", RGB{255, 0, 0}, 0.2126 * 255},
		{"green", RGB{0, 255, 0}, 0.7152 * 255},
		{"blue", RGB{0, 0, 255}, 0.0722 * 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.c)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	// Downscale
	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	// Upscale
	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestFitWithin(t *testing.T) {
	img := CreateGradientImage(400, 100)

	fitted := FitWithin(img, 200, InterpolationArea)
	if fitted.Width() != 200 || fitted.Height() != 50 {
		t.Errorf("Expected 200x50, got %dx%d", fitted.Width(), fitted.Height())
	}

	tall := CreateVerticalGradientImage(100, 400)
	fitted = FitWithin(tall, 200, InterpolationArea)
	if fitted.Width() != 50 || fitted.Height() != 200 {
		t.Errorf("Expected 50x200, got %dx%d", fitted.Width(), fitted.Height())
	}

	if FitWithin(img, 0, InterpolationArea) != img {
		t.Error("maxSize 0 should return the input image")
	}
	if FitWithin(img, 1000, InterpolationArea) != img {
		t.Error("An image that already fits should be returned unchanged")
	}
}

func TestPreprocess(t *testing.T) {
	img := CreateCheckerboardImage(32, 32, 4)

	if Preprocess(img, FilterOptions{}) != img {
		t.Error("Zero options should return the input image")
	}
	if Preprocess(img, FilterOptions{Gamma: 1}) != img {
		t.Error("Gamma 1 should return the input image")
	}

	blurred := Preprocess(img, FilterOptions{BlurSigma: 2})
	if blurred.Width() != 32 || blurred.Height() != 32 {
		t.Fatalf("Expected 32x32, got %dx%d", blurred.Width(), blurred.Height())
	}
	if CalculateMSE(img, blurred) == 0 {
		t.Error("Blur should change a checkerboard")
	}
	if img.GetRGB(0, 0) != White {
		t.Error("Preprocess should not modify its input")
	}
}

func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateColorBarsImage(64, 64)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.RGBA); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	pngPath := filepath.Join(tmpDir, "test.png")
	if err := os.WriteFile(pngPath, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	mse := CalculateMSE(img, loaded)
	if mse > 0.01 {
		t.Errorf("PNG should be lossless, MSE=%f", mse)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error for garbage input")
	}
}
