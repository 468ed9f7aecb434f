package img2ascii

import "errors"

var (
	// ErrEmptyIndex is returned when a lookup is attempted on a GlyphIndex
	// that holds no glyphs.
	ErrEmptyIndex = errors.New("glyph index is empty")

	// ErrInvalidPartition is returned when a resolution does not tile the
	// padded image into whole square blocks.
	ErrInvalidPartition = errors.New("invalid partition")

	// ErrStaleCache reports that a cached brightness grid cannot serve a
	// run. Session recovers from it by recomputing.
	ErrStaleCache = errors.New("stale brightness cache")

	// ErrUnknownGlyph is returned by a GlyphRenderer that cannot draw a rune.
	ErrUnknownGlyph = errors.New("glyph not available")
)
