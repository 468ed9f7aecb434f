package img2ascii

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
)

// Session converts images into glyph grids against one GlyphIndex and
// owns the brightness grid of its last fresh run. The grid is tied to the
// image and resolution that produced it, so changing the glyph set can be
// re-rendered without touching pixel data again. A Session is not safe for
// concurrent use.
type Session struct {
	index      *GlyphIndex
	logger     *slog.Logger
	brightness func(*imageutil.RGBAImage) float64

	// Cached brightness grid (private)
	grid           [][]float64
	gridImage      *imageutil.RGBAImage
	gridResolution int

	// Stats (private)
	brightnessCalcs int
	freshRuns       int
	cachedRuns      int
	lastRunTime     time.Duration
}

// SessionOption is a functional option for configuring a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for diagnostic events.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithBrightnessFunc replaces BlockBrightness as the per-block measure.
func WithBrightnessFunc(f func(*imageutil.RGBAImage) float64) SessionOption {
	return func(s *Session) {
		s.brightness = f
	}
}

// NewSession creates a Session that looks glyphs up in index.
func NewSession(index *GlyphIndex, opts ...SessionOption) *Session {
	s := &Session{
		index:      index,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		brightness: BlockBrightness,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run converts img into a grid of glyphs with resolution glyphs per row.
//
// With reuse false the image is padded, partitioned and measured, and the
// brightness grid is kept for later runs. With reuse true only the lookup
// step runs, against the kept grid and the current glyph set. If the kept
// grid was produced from a different image or resolution, or there is none,
// Run logs the condition and falls back to a fresh run.
//
// A run that fails to partition leaves the kept grid untouched. A lookup
// failure after a fresh computation still keeps the new grid.
func (s *Session) Run(img *imageutil.RGBAImage, resolution int, reuse bool) ([][]rune, error) {
	start := time.Now()
	defer func() { s.lastRunTime = time.Since(start) }()

	if reuse {
		err := s.checkCache(img, resolution)
		if err == nil {
			s.cachedRuns++
			return s.lookupGrid()
		}
		s.logger.Warn("recomputing brightness", "reason", err)
	}

	grid, err := s.computeGrid(img, resolution)
	if err != nil {
		return nil, err
	}
	s.grid, s.gridImage, s.gridResolution = grid, img, resolution
	s.freshRuns++
	s.logger.Debug("brightness grid computed",
		"rows", len(grid), "columns", resolution, "elapsed", time.Since(start))

	return s.lookupGrid()
}

// checkCache reports why the kept grid cannot serve a run for img at
// resolution, or nil if it can.
func (s *Session) checkCache(img *imageutil.RGBAImage, resolution int) error {
	switch {
	case s.grid == nil:
		return fmt.Errorf("%w: no previous run", ErrStaleCache)
	case s.gridImage != img:
		return fmt.Errorf("%w: image changed", ErrStaleCache)
	case s.gridResolution != resolution || len(s.grid[0]) != resolution:
		return fmt.Errorf("%w: resolution %d, cached %d",
			ErrStaleCache, resolution, s.gridResolution)
	}
	return nil
}

// computeGrid pads and partitions img and measures every block.
func (s *Session) computeGrid(img *imageutil.RGBAImage, resolution int) ([][]float64, error) {
	blocks, err := Partition(PadImage(img), resolution)
	if err != nil {
		return nil, err
	}

	grid := make([][]float64, len(blocks))
	for i, row := range blocks {
		grid[i] = make([]float64, len(row))
		for j, block := range row {
			grid[i][j] = s.brightness(block)
			s.brightnessCalcs++
		}
	}
	return grid, nil
}

// lookupGrid maps the kept brightness grid through the glyph index.
func (s *Session) lookupGrid() ([][]rune, error) {
	art := make([][]rune, len(s.grid))
	for i, row := range s.grid {
		art[i] = make([]rune, len(row))
		for j, b := range row {
			r, err := s.index.Lookup(b)
			if err != nil {
				return nil, err
			}
			art[i][j] = r
		}
	}
	return art, nil
}

// Invalidate discards the kept brightness grid.
func (s *Session) Invalidate() {
	s.grid, s.gridImage, s.gridResolution = nil, nil, 0
}

// SessionStats summarizes the work a Session has done.
type SessionStats struct {
	// BrightnessCalculations counts blocks measured across all fresh runs.
	BrightnessCalculations int
	FreshRuns              int
	CachedRuns             int
	LastRunTime            time.Duration
}

// Stats returns the session's counters.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		BrightnessCalculations: s.brightnessCalcs,
		FreshRuns:              s.freshRuns,
		CachedRuns:             s.cachedRuns,
		LastRunTime:            s.lastRunTime,
	}
}

// ResetStats resets all statistics counters.
func (s *Session) ResetStats() {
	s.brightnessCalcs = 0
	s.freshRuns = 0
	s.cachedRuns = 0
	s.lastRunTime = 0
}
