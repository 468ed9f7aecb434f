package img2ascii

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// DefaultFontSize fills the glyph cell with a monospace face.
	DefaultFontSize = float64(GlyphSize)

	// DefaultAlphaThreshold keeps anti-aliased edges with at least 25%
	// coverage.
	DefaultAlphaThreshold = 64
)

// FontRenderer renders glyphs from a TrueType font with freetype.
type FontRenderer struct {
	font      *truetype.Font
	name      string
	size      float64
	threshold uint8
}

// FontRendererOption is a functional option for configuring a FontRenderer.
type FontRendererOption func(*FontRenderer)

// WithFontSize sets the point size (at 72 DPI) glyphs are drawn with.
func WithFontSize(size float64) FontRendererOption {
	return func(fr *FontRenderer) {
		fr.size = size
	}
}

// WithAlphaThreshold sets the coverage above which a pixel counts as ink.
func WithAlphaThreshold(threshold uint8) FontRendererOption {
	return func(fr *FontRenderer) {
		fr.threshold = threshold
	}
}

// NewFontRenderer parses a TrueType font from ttf.
func NewFontRenderer(name string, ttf []byte, opts ...FontRendererOption) (*FontRenderer, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fr := &FontRenderer{
		font:      f,
		name:      name,
		size:      DefaultFontSize,
		threshold: DefaultAlphaThreshold,
	}
	for _, opt := range opts {
		opt(fr)
	}
	return fr, nil
}

// LoadFontRenderer reads and parses a TrueType font file.
func LoadFontRenderer(path string, opts ...FontRendererOption) (*FontRenderer, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return NewFontRenderer(path, ttf, opts...)
}

// DefaultFontRenderer renders with the Go Mono font bundled in
// golang.org/x/image, so no font file is needed.
func DefaultFontRenderer(opts ...FontRendererOption) (*FontRenderer, error) {
	return NewFontRenderer("Go Mono", gomono.TTF, opts...)
}

// Name returns the font's name or path.
func (fr *FontRenderer) Name() string {
	return fr.name
}

// Render draws r into a GlyphSize square alpha image and thresholds it.
//
// The baseline is derived from the face metrics so descenders are kept, and
// the glyph is centered horizontally on its advance width.
func (fr *FontRenderer) Render(r rune) (GlyphBitmap, error) {
	if fr.font.Index(r) == 0 {
		return GlyphBitmap{}, fmt.Errorf("%w: %q in %s", ErrUnknownGlyph, r, fr.name)
	}

	face := truetype.NewFace(fr.font, &truetype.Options{
		Size:    fr.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphSize, GlyphSize))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fr.font)
	ctx.SetFontSize(fr.size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6) // 26.6 fixed point to pixels
	descent := int(metrics.Descent >> 6)
	baselineY := (GlyphSize + ascent - descent) / 2

	x := 0
	if advance, ok := face.GlyphAdvance(r); ok {
		x = max(0, (GlyphSize-advance.Round())/2)
	}

	if _, err := ctx.DrawString(string(r), freetype.Pt(x, baselineY)); err != nil {
		return GlyphBitmap{}, fmt.Errorf("failed to draw %q: %w", r, err)
	}

	return bitmapFromAlpha(img, fr.threshold), nil
}
