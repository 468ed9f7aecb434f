package imageutil

import (
	"image"

	"github.com/disintegration/gift"
)

// FilterOptions selects the optional adjustments applied to an image
// before it is converted. Zero values leave the image untouched, except
// Gamma where both 0 and 1 mean "no change".
type FilterOptions struct {
	// Contrast in percent, in the range [-100, 100].
	Contrast float32
	// Gamma correction; values above 1 brighten the image.
	Gamma float32
	// BlurSigma is the standard deviation of a Gaussian blur.
	BlurSigma float32
}

// IsZero reports whether opts would leave an image unchanged.
func (opts FilterOptions) IsZero() bool {
	return opts.Contrast == 0 && (opts.Gamma == 0 || opts.Gamma == 1) && opts.BlurSigma <= 0
}

func (opts FilterOptions) filters() []gift.Filter {
	var filters []gift.Filter
	if opts.BlurSigma > 0 {
		filters = append(filters, gift.GaussianBlur(opts.BlurSigma))
	}
	if opts.Contrast != 0 {
		filters = append(filters, gift.Contrast(opts.Contrast))
	}
	if opts.Gamma != 0 && opts.Gamma != 1 {
		filters = append(filters, gift.Gamma(opts.Gamma))
	}
	return filters
}

// Preprocess returns a filtered copy of img. When opts is zero the input
// is returned as is.
func Preprocess(img *RGBAImage, opts FilterOptions) *RGBAImage {
	if opts.IsZero() {
		return img
	}
	g := gift.New(opts.filters()...)
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img.RGBA)
	return &RGBAImage{RGBA: dst}
}
