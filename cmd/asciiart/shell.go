package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

const (
	prompt = ">>> "

	minCharsetSize = 2
	minResolution  = 2
	resMultiplier  = 2
)

// Command names
const (
	cmdExit     = "exit"
	cmdChars    = "chars"
	cmdAdd      = "add"
	cmdRemove   = "remove"
	cmdRes      = "res"
	cmdImage    = "image"
	cmdOutput   = "output"
	cmdAsciiArt = "asciiArt"
)

type outputMode string

const (
	outputConsole outputMode = "console"
	outputHTML    outputMode = "html"
	outputPNG     outputMode = "png"
)

// shellConfig holds the startup settings of a Shell.
type shellConfig struct {
	Renderer   img2ascii.GlyphRenderer
	Charset    string
	Resolution int
	Output     string
	HTMLFile   string
	HTMLFont   string
	PNGFile    string
	PNGScale   int
	MaxSize    int
	Filters    imageutil.FilterOptions
	NoColor    bool
	Logger     *slog.Logger
}

type shellStyles struct {
	prompt lipgloss.Style
	err    lipgloss.Style
	info   lipgloss.Style
}

func newShellStyles(out io.Writer, noColor bool) shellStyles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return shellStyles{
		prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
		info:   r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Shell reads commands line by line and drives a conversion session.
// A command that fails prints a message and leaves all state unchanged.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	styles shellStyles

	renderer img2ascii.GlyphRenderer
	index    *img2ascii.GlyphIndex
	session  *img2ascii.Session

	image   *imageutil.RGBAImage
	filters imageutil.FilterOptions
	maxSize int

	resolution    int
	minResolution int
	maxResolution int

	output   outputMode
	htmlFile string
	htmlFont string
	pngFile  string
	pngScale int

	imageChanged bool
	resChanged   bool
}

// newShell builds a Shell with the initial charset from cfg.
func newShell(in io.Reader, out io.Writer, cfg shellConfig) (*Shell, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	index, err := img2ascii.NewGlyphIndex(cfg.Renderer)
	if err != nil {
		return nil, err
	}
	s := &Shell{
		in:           bufio.NewScanner(in),
		out:          out,
		logger:       logger,
		styles:       newShellStyles(out, cfg.NoColor),
		renderer:     cfg.Renderer,
		index:        index,
		session:      img2ascii.NewSession(index, img2ascii.WithLogger(logger)),
		filters:      cfg.Filters,
		maxSize:      cfg.MaxSize,
		resolution:   cfg.Resolution,
		output:       outputConsole,
		htmlFile:     cfg.HTMLFile,
		htmlFont:     cfg.HTMLFont,
		pngFile:      cfg.PNGFile,
		pngScale:     cfg.PNGScale,
		imageChanged: true,
		resChanged:   true,
	}
	if s.resolution < 1 {
		s.resolution = minResolution
	}
	if cfg.Output != "" {
		if err := s.setOutput([]string{cmdOutput, cfg.Output}); err != nil {
			return nil, fmt.Errorf("invalid output %q", cfg.Output)
		}
	}

	if cfg.Charset != "" {
		if err := s.addChars([]string{cmdAdd, cfg.Charset}); err != nil {
			return nil, fmt.Errorf("invalid charset %q: %w", cfg.Charset, err)
		}
	}
	return s, nil
}

// Run executes commands until exit or end of input.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, s.styles.prompt.Render(prompt))
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		line := strings.TrimSpace(s.in.Text())
		if line == cmdExit {
			return nil
		}
		fields := strings.Fields(line)
		if err := s.Execute(fields); err != nil {
			s.logger.Debug("command failed", "command", fields, "error", err)
			fmt.Fprintln(s.out, s.styles.err.Render(userMessage(err)))
		}
	}
}

// Execute runs one command given as whitespace-separated fields.
func (s *Shell) Execute(fields []string) error {
	if len(fields) == 0 {
		return errUnknownCommand
	}

	switch fields[0] {
	case cmdChars:
		s.printChars()
		return nil
	case cmdAdd:
		return s.addChars(fields)
	case cmdRemove:
		return s.removeChars(fields)
	case cmdRes:
		return s.setResolution(fields)
	case cmdImage:
		return s.setImage(fields)
	case cmdOutput:
		return s.setOutput(fields)
	case cmdAsciiArt:
		return s.runAsciiArt()
	}
	return errUnknownCommand
}

func (s *Shell) printChars() {
	var sb strings.Builder
	for _, r := range s.index.Glyphs() {
		sb.WriteRune(r)
		sb.WriteByte(' ')
	}
	fmt.Fprintln(s.out, sb.String())
}

func (s *Shell) addChars(fields []string) error {
	if len(fields) < 2 {
		return newFormatError(cmdAdd)
	}
	lo, hi, ok := parseGlyphRange(fields[1], true)
	if !ok {
		return newFormatError(cmdAdd)
	}
	if lo == hi {
		return s.index.Add(lo)
	}

	for r := lo; r <= hi; r++ {
		err := s.index.Add(r)
		if errors.Is(err, img2ascii.ErrUnknownGlyph) {
			s.logger.Debug("skipping glyph", "glyph", string(r), "error", err)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) removeChars(fields []string) error {
	if len(fields) < 2 {
		return newFormatError(cmdRemove)
	}
	lo, hi, ok := parseGlyphRange(fields[1], false)
	if !ok {
		return newFormatError(cmdRemove)
	}
	s.index.RemoveRange(lo, hi)
	return nil
}

func (s *Shell) setResolution(fields []string) error {
	if len(fields) > 1 {
		var next int
		switch fields[1] {
		case "up":
			next = s.resolution * resMultiplier
		case "down":
			next = s.resolution / resMultiplier
		default:
			return newFormatError(cmdRes)
		}
		if !s.resolutionFits(next) {
			return ErrResolutionBounds
		}
		s.resolution = next
		s.resChanged = true
		s.logger.Debug("resolution changed", "resolution", s.resolution)
	}

	fmt.Fprintln(s.out, s.styles.info.Render(fmt.Sprintf("Resolution set to %d.", s.resolution)))
	return nil
}

// resolutionFits reports whether resolution lies within the bounds of the
// loaded image and tiles it once padded.
func (s *Shell) resolutionFits(resolution int) bool {
	if resolution < s.minResolution || resolution > s.maxResolution {
		return false
	}
	return s.image == nil || img2ascii.ValidateResolution(s.image, resolution) == nil
}

// fallbackResolution returns minResolution if it fits the loaded image,
// otherwise the smallest resolution within bounds that does.
func (s *Shell) fallbackResolution() int {
	if s.resolutionFits(minResolution) {
		return minResolution
	}
	for r := max(1, s.minResolution); r <= s.maxResolution; r++ {
		if s.resolutionFits(r) {
			return r
		}
	}
	return minResolution
}

func (s *Shell) setImage(fields []string) error {
	if len(fields) < 2 {
		return newFormatError(cmdImage)
	}
	return s.loadImage(fields[1])
}

// loadImage replaces the current image with the one at path, downscaled
// and filtered as configured.
func (s *Shell) loadImage(path string) error {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImagePath, err)
	}
	original := img.Bounds().Size()
	img = imageutil.FitWithin(img, s.maxSize, imageutil.InterpolationArea)
	if !s.filters.IsZero() {
		img = imageutil.Preprocess(img, s.filters)
	}

	s.image = img
	s.minResolution, s.maxResolution = img2ascii.ResolutionBounds(img)
	if !s.resolutionFits(s.resolution) {
		s.resolution = s.fallbackResolution()
	}
	s.imageChanged = true

	s.logger.Info("image loaded",
		"path", path,
		"original", original,
		"size", img.Bounds().Size(),
		"resolution", s.resolution,
		"bounds", fmt.Sprintf("[%d, %d]", s.minResolution, s.maxResolution))
	return nil
}

func (s *Shell) setOutput(fields []string) error {
	if len(fields) < 2 {
		return newFormatError(cmdOutput)
	}
	switch mode := outputMode(fields[1]); mode {
	case outputConsole, outputHTML, outputPNG:
		s.output = mode
		return nil
	}
	return newFormatError(cmdOutput)
}

func (s *Shell) runAsciiArt() error {
	if s.index.Len() < minCharsetSize {
		return ErrMinCharset
	}
	if s.image == nil {
		return fmt.Errorf("%w: no image loaded", ErrImagePath)
	}

	reuse := !(s.imageChanged || s.resChanged)
	art, err := s.session.Run(s.image, s.resolution, reuse)
	if err != nil {
		return err
	}
	if err := s.writeArt(art); err != nil {
		return err
	}

	stats := s.session.Stats()
	s.logger.Debug("ascii art rendered",
		"reuse", reuse,
		"rows", len(art),
		"columns", s.resolution,
		"elapsed", stats.LastRunTime,
		"brightness_calculations", stats.BrightnessCalculations)

	s.imageChanged = false
	s.resChanged = false
	return nil
}

func (s *Shell) writeArt(art [][]rune) error {
	switch s.output {
	case outputHTML:
		return writeFile(s.htmlFile, func(w io.Writer) error {
			return img2ascii.WriteHTML(w, art, s.htmlFont)
		})
	case outputPNG:
		return writeFile(s.pngFile, func(w io.Writer) error {
			return img2ascii.WritePNG(w, art, s.renderer, s.pngScale)
		})
	}
	return img2ascii.WriteText(s.out, art)
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
