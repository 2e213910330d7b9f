package render

import (
	"fmt"
	"html"
	"io"
)

// Placeholder writes a plain SVG panel carrying title and message. It
// stands in for charts that returned ErrEmptyChart.
func Placeholder(w io.Writer, title, message string, opts Options) error {
	width, height := opts.size()
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`+
		`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
		`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#2a3f5f">%s</text>`+
		`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#7f7f7f">%s</text>`+
		`</svg>`,
		width, height, width, height, html.EscapeString(title), html.EscapeString(message))
	return err
}
