// Package progress draws a single-line console progress bar, redrawn in
// place with a carriage return.
package progress

import (
	"fmt"
	"io"
	"strings"
)

const width = 50

// Bar tracks completion of a known number of steps.
type Bar struct {
	w     io.Writer
	total int
	done  int
}

// New creates a bar for total steps. total must be positive.
func New(w io.Writer, total int) *Bar {
	return &Bar{w: w, total: total}
}

// Advance marks one step done and redraws the bar.
func (b *Bar) Advance() {
	b.done++
	pct := float64(b.done) / float64(b.total) * 100
	filled := int(pct) / 2
	if filled > width {
		filled = width
	}
	fmt.Fprintf(b.w, "Progress: [%-*s] %d / %d (%d%%)\r",
		width, strings.Repeat("=", filled), b.done, b.total, int(pct))
}

// Finish ends the bar line so following output starts fresh.
func (b *Bar) Finish() {
	fmt.Fprintln(b.w)
}
