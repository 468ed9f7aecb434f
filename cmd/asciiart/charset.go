package main

const (
	minPrintable = ' '
	maxPrintable = '~'
)

func isPrintable(r rune) bool {
	return r >= minPrintable && r <= maxPrintable
}

// parseGlyphRange interprets an add/remove argument: a single character,
// "all" for the printable ASCII range, "space", or an inclusive range such
// as "a-z" whose bounds may be given in either order. With printableOnly,
// characters outside the printable range are rejected.
func parseGlyphRange(arg string, printableOnly bool) (lo, hi rune, ok bool) {
	switch arg {
	case "all":
		return minPrintable, maxPrintable, true
	case "space":
		return ' ', ' ', true
	}

	runes := []rune(arg)
	switch {
	case len(runes) == 1:
		if printableOnly && !isPrintable(runes[0]) {
			return 0, 0, false
		}
		return runes[0], runes[0], true
	case len(runes) == 3 && runes[1] == '-':
		if printableOnly && !(isPrintable(runes[0]) && isPrintable(runes[2])) {
			return 0, 0, false
		}
		return min(runes[0], runes[2]), max(runes[0], runes[2]), true
	}
	return 0, 0, false
}
