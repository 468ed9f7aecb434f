package img2ascii

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/google/btree"
)

const btreeDegree = 8

// brightnessGroup holds every active glyph sharing one exact brightness,
// in ascending code point order. A group in the tree is never empty.
type brightnessGroup struct {
	brightness float64
	glyphs     []rune
}

func lessGroup(a, b *brightnessGroup) bool {
	return a.brightness < b.brightness
}

// GlyphIndex is an ordered mapping from glyph brightness to the glyphs
// with that brightness. It answers nearest-brightness queries in
// O(log k) for k distinct brightness values.
//
// Rendering a glyph is expensive compared to a lookup, so the brightness
// of every glyph ever added is memoized, including glyphs that have since
// been removed.
type GlyphIndex struct {
	renderer GlyphRenderer
	groups   *btree.BTreeG[*brightnessGroup]
	active   map[rune]struct{}
	memo     map[rune]float64
}

// NewGlyphIndex creates an index that measures glyphs with renderer and
// adds each of glyphs to it.
func NewGlyphIndex(renderer GlyphRenderer, glyphs ...rune) (*GlyphIndex, error) {
	gi := &GlyphIndex{
		renderer: renderer,
		groups:   btree.NewG(btreeDegree, lessGroup),
		active:   make(map[rune]struct{}),
		memo:     make(map[rune]float64),
	}
	for _, r := range glyphs {
		if err := gi.Add(r); err != nil {
			return nil, err
		}
	}
	return gi, nil
}

// brightnessOf returns the memoized brightness of r, rendering it on first
// use.
func (gi *GlyphIndex) brightnessOf(r rune) (float64, error) {
	if b, ok := gi.memo[r]; ok {
		return b, nil
	}
	bitmap, err := gi.renderer.Render(r)
	if err != nil {
		return 0, fmt.Errorf("failed to render glyph %q: %w", r, err)
	}
	b := bitmap.Brightness()
	gi.memo[r] = b
	return b, nil
}

// Add inserts r into the index. Adding a glyph that is already present is
// a no-op. If r cannot be rendered the index is left unchanged.
func (gi *GlyphIndex) Add(r rune) error {
	if _, ok := gi.active[r]; ok {
		return nil
	}
	b, err := gi.brightnessOf(r)
	if err != nil {
		return err
	}

	if group, ok := gi.groups.Get(&brightnessGroup{brightness: b}); ok {
		i, _ := slices.BinarySearch(group.glyphs, r)
		group.glyphs = slices.Insert(group.glyphs, i, r)
	} else {
		gi.groups.ReplaceOrInsert(&brightnessGroup{brightness: b, glyphs: []rune{r}})
	}
	gi.active[r] = struct{}{}
	return nil
}

// Remove deletes r from the index. Removing a glyph that is not present is
// a no-op. The brightness key disappears with its last glyph.
func (gi *GlyphIndex) Remove(r rune) {
	if _, ok := gi.active[r]; !ok {
		return
	}
	delete(gi.active, r)

	group, ok := gi.groups.Get(&brightnessGroup{brightness: gi.memo[r]})
	if !ok {
		return
	}
	if i, found := slices.BinarySearch(group.glyphs, r); found {
		group.glyphs = slices.Delete(group.glyphs, i, i+1)
	}
	if len(group.glyphs) == 0 {
		gi.groups.Delete(group)
	}
}

// AddRange adds every rune in [lo, hi]. The bounds may be given in either
// order. It stops at the first glyph that cannot be rendered.
func (gi *GlyphIndex) AddRange(lo, hi rune) error {
	lo, hi = min(lo, hi), max(lo, hi)
	for r := lo; r <= hi; r++ {
		if err := gi.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// RemoveRange removes every rune in [lo, hi]. The bounds may be given in
// either order.
func (gi *GlyphIndex) RemoveRange(lo, hi rune) {
	lo, hi = min(lo, hi), max(lo, hi)
	for r := lo; r <= hi; r++ {
		gi.Remove(r)
	}
}

// Lookup returns the glyph whose brightness best matches a block
// brightness in [0, 1]; values outside that range are clamped.
//
// The block brightness is first stretched onto the range of glyph
// brightness currently in the index, so the darkest and brightest glyphs
// are always reachable. The nearest key wins, the darker key on a tie, and
// among glyphs sharing a key the lowest code point wins.
func (gi *GlyphIndex) Lookup(brightness float64) (rune, error) {
	lowest, ok := gi.groups.Min()
	if !ok {
		return 0, ErrEmptyIndex
	}
	highest, _ := gi.groups.Max()

	if math.IsNaN(brightness) {
		brightness = 0
	}
	brightness = min(1, max(0, brightness))

	target := brightness*(highest.brightness-lowest.brightness) + lowest.brightness
	return gi.nearest(target).glyphs[0], nil
}

// nearest returns the group closest to target. The index must not be
// empty.
func (gi *GlyphIndex) nearest(target float64) *brightnessGroup {
	pivot := &brightnessGroup{brightness: target}

	var floor, ceiling *brightnessGroup
	gi.groups.DescendLessOrEqual(pivot, func(g *brightnessGroup) bool {
		floor = g
		return false
	})
	gi.groups.AscendGreaterOrEqual(pivot, func(g *brightnessGroup) bool {
		ceiling = g
		return false
	})

	switch {
	case floor == nil:
		return ceiling
	case ceiling == nil:
		return floor
	case target-floor.brightness <= ceiling.brightness-target:
		return floor
	default:
		return ceiling
	}
}

// Len returns the number of active glyphs.
func (gi *GlyphIndex) Len() int {
	return len(gi.active)
}

// Contains reports whether r is active.
func (gi *GlyphIndex) Contains(r rune) bool {
	_, ok := gi.active[r]
	return ok
}

// Glyphs returns the active glyphs in ascending code point order.
func (gi *GlyphIndex) Glyphs() []rune {
	return slices.Sorted(maps.Keys(gi.active))
}

// Brightness returns the measured brightness of an active glyph.
func (gi *GlyphIndex) Brightness(r rune) (float64, bool) {
	if !gi.Contains(r) {
		return 0, false
	}
	return gi.memo[r], true
}

// Keys returns the distinct brightness values in ascending order.
func (gi *GlyphIndex) Keys() []float64 {
	keys := make([]float64, 0, gi.groups.Len())
	gi.groups.Ascend(func(g *brightnessGroup) bool {
		keys = append(keys, g.brightness)
		return true
	})
	return keys
}
