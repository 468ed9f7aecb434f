package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

type Options struct {
	Image      string  `short:"i" long:"image" description:"Image to load at startup"`
	Charset    string  `short:"c" long:"charset" description:"Initial characters: a single character, a range such as a-z, all or space" default:"0-9"`
	Resolution int     `short:"r" long:"resolution" description:"Initial number of characters per row" default:"128"`
	Output     string  `short:"o" long:"output" description:"Initial output method" choice:"console" choice:"html" choice:"png" default:"console"`
	HTMLFile   string  `long:"html-file" description:"File written by html output" default:"out.html"`
	HTMLFont   string  `long:"html-font" description:"Font family used by html output" default:"Courier New"`
	PNGFile    string  `long:"png-file" description:"File written by png output" default:"out.png"`
	PNGScale   int     `long:"png-scale" description:"Pixel scale of each glyph cell in png output" default:"1"`
	Font       string  `short:"f" long:"font" description:"Path to a TrueType font used to measure characters (default: embedded Go Mono)"`
	Pixfont    bool    `long:"pixfont" description:"Measure characters with the built-in pixel font"`
	FontSize   float64 `long:"font-size" description:"Point size used when rasterizing the font" default:"16"`
	MaxSize    int     `long:"max-size" description:"Downscale images so neither side exceeds this, 0 to disable" default:"0"`
	Contrast   float32 `long:"contrast" description:"Contrast adjustment in percent, -100 to 100" default:"0"`
	Gamma      float32 `long:"gamma" description:"Gamma correction applied after loading" default:"1"`
	Blur       float32 `long:"blur" description:"Gaussian blur sigma applied after loading" default:"0"`
	Verbose    bool    `short:"v" long:"verbose" description:"Log diagnostic events to stderr"`
	NoColor    bool    `long:"no-color" description:"Disable styled output"`
}

func newRenderer(opts *Options) (img2ascii.GlyphRenderer, error) {
	switch {
	case opts.Pixfont:
		return img2ascii.NewPixfontRenderer(), nil
	case opts.Font != "":
		return img2ascii.LoadFontRenderer(opts.Font, img2ascii.WithFontSize(opts.FontSize))
	}
	return img2ascii.DefaultFontRenderer(img2ascii.WithFontSize(opts.FontSize))
}

func main() {
	opts := &Options{}
	if _, err := flags.Parse(opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	renderer, err := newRenderer(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
		os.Exit(1)
	}

	shell, err := newShell(os.Stdin, os.Stdout, shellConfig{
		Renderer:   renderer,
		Charset:    opts.Charset,
		Resolution: opts.Resolution,
		Output:     opts.Output,
		HTMLFile:   opts.HTMLFile,
		HTMLFont:   opts.HTMLFont,
		PNGFile:    opts.PNGFile,
		PNGScale:   opts.PNGScale,
		MaxSize:    opts.MaxSize,
		Filters: imageutil.FilterOptions{
			Contrast:  opts.Contrast,
			Gamma:     opts.Gamma,
			BlurSigma: opts.Blur,
		},
		NoColor: opts.NoColor,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.Image != "" {
		if err := shell.Execute([]string{cmdImage, opts.Image}); err != nil {
			fmt.Fprintln(os.Stdout, userMessage(err))
		}
	}

	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
