package img2ascii

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

// DefaultHTMLFont is the font family used for HTML output.
const DefaultHTMLFont = "Courier New"

// WriteText writes grid to w, one line per row.
func WriteText(w io.Writer, grid [][]rune) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		bw.WriteString(string(row))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// htmlFontSize picks a pixel size so wide grids still fit a typical page.
func htmlFontSize(columns int) int {
	if columns == 0 {
		return 12
	}
	return min(12, max(1, 1200/columns))
}

// WriteHTML writes grid to w as a standalone HTML page rendered in the
// given monospace font family. Every glyph is HTML-escaped.
func WriteHTML(w io.Writer, grid [][]rune, fontFamily string) error {
	if fontFamily == "" {
		fontFamily = DefaultHTMLFont
	}
	columns := 0
	if len(grid) > 0 {
		columns = len(grid[0])
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprint(bw, "<title>ASCII Art</title>\n</head>\n<body style=\"margin:0\">\n")
	fmt.Fprintf(bw, "<div style=\"font-family:'%s',monospace;font-size:%dpx;"+
		"line-height:1;letter-spacing:0;white-space:pre\">\n",
		html.EscapeString(fontFamily), htmlFontSize(columns))
	for _, row := range grid {
		bw.WriteString(html.EscapeString(string(row)))
		bw.WriteString("<br>\n")
	}
	fmt.Fprint(bw, "</div>\n</body>\n</html>\n")
	return bw.Flush()
}
