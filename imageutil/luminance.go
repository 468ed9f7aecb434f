package imageutil

// Relative luminance weights (ITU-R BT.709), applied directly to 8-bit
// channel values without gamma correction.
const (
	RedWeight   = 0.2126
	GreenWeight = 0.7152
	BlueWeight  = 0.0722
)

// Luminance returns the weighted luminance of c in the range [0, 255].
func Luminance(c RGB) float64 {
	return RedWeight*float64(c.R) + GreenWeight*float64(c.G) + BlueWeight*float64(c.B)
}
