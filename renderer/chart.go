package renderer

import (
	"fmt"
	"strings"

	"github.com/cloudfx/journal"
)

// Chart renders the equity curve as a text plot of the given size: time on
// the horizontal axis, cumulative profit on the vertical one. It is meant to
// be embedded in a markdown code fence.
func Chart(curve []journal.EquityPoint, width, height int) string {
	if len(curve) == 0 {
		return "(no chronological data to plot)"
	}
	if width < 8 {
		width = 8
	}
	if height < 3 {
		height = 3
	}

	values := make([]float64, width)
	for col := 0; col < width; col++ {
		// nearest-point sampling keeps the last value of flat stretches.
		i := col * (len(curve) - 1) / max(width-1, 1)
		values[col] = curve[i].Cumulative.InexactFloat64()
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1 // avoid a zero-height scale on a flat curve
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}
	rowOf := func(v float64) int {
		r := int((hi - v) / (hi - lo) * float64(height-1))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}
	for col, v := range values {
		grid[rowOf(v)][col] = '*'
	}

	label := func(v float64) string { return fmt.Sprintf("%10.2f", v) }
	blank := strings.Repeat(" ", 10)

	var b strings.Builder
	for r, line := range grid {
		switch r {
		case 0:
			b.WriteString(label(hi))
		case height - 1:
			b.WriteString(label(lo))
		default:
			b.WriteString(blank)
		}
		b.WriteString(" |")
		b.Write(line)
		b.WriteByte('\n')
	}

	b.WriteString(blank)
	b.WriteString(" +")
	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')

	first := curve[0].Time.Format("2006-01-02")
	last := curve[len(curve)-1].Time.Format("2006-01-02")
	gap := width - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(blank)
	b.WriteString("  ")
	b.WriteString(first)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(last)
	return b.String()
}
