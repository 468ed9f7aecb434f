package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// RenderGrid draws grid as black ink on a white background, each glyph
// occupying a GlyphSize*scale square cell.
func RenderGrid(grid [][]rune, renderer GlyphRenderer, scale int) (*image.Gray, error) {
	if scale < 1 {
		scale = 1
	}

	height := len(grid)
	if height == 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0)), nil
	}
	width := len(grid[0])

	cellSize := GlyphSize * scale
	img := image.NewGray(image.Rect(0, 0, width*cellSize, height*cellSize))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	bitmaps := make(map[rune]GlyphBitmap)
	for y, row := range grid {
		for x, r := range row {
			bitmap, ok := bitmaps[r]
			if !ok {
				var err error
				bitmap, err = renderer.Render(r)
				if err != nil {
					return nil, fmt.Errorf("failed to render glyph %q: %w", r, err)
				}
				bitmaps[r] = bitmap
			}
			drawBitmap(img, bitmap, x*cellSize, y*cellSize, scale)
		}
	}
	return img, nil
}

// drawBitmap renders a GlyphBitmap at the given position with scaling.
func drawBitmap(img *image.Gray, bitmap GlyphBitmap, startX, startY, scale int) {
	for y := 0; y < GlyphSize; y++ {
		for x := 0; x < GlyphSize; x++ {
			if !bitmap.Get(x, y) {
				continue
			}
			rect := image.Rect(
				startX+x*scale, startY+y*scale,
				startX+(x+1)*scale, startY+(y+1)*scale)
			draw.Draw(img, rect, &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
		}
	}
}

// WritePNG renders grid with renderer and encodes it to w as PNG.
func WritePNG(w io.Writer, grid [][]rune, renderer GlyphRenderer, scale int) error {
	img, err := RenderGrid(grid, renderer, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
