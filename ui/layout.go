package ui

import "github.com/gstat-go/gstat/stats"

// panel is a contiguous row range rendered as one table. Panels are
// rebuilt from scratch every frame; device set, filters and terminal
// size can all change between frames.
type panel struct {
	start, end int // [start, end) into the filtered record slice
}

// nameWidth returns the width of the name column: wide enough for the
// longest visible device name, never narrower than the registry
// minimum. Names are never truncated.
func nameWidth(maxName int) int {
	const min = 10 // registry minimum, also covers the "Name" header
	if maxName > min {
		return maxName
	}
	return min
}

// minPanelWidth is the narrowest table that can show every visible
// column plus an untruncated name column, with one space between
// cells.
func minPanelWidth(cols []stats.Column, maxName int) int {
	w := 0
	for i, c := range cols {
		if i > 0 {
			w++
		}
		if c.ID == stats.ColName {
			w += nameWidth(maxName)
		} else {
			w += c.Width
		}
	}
	return w
}

// layoutPanels partitions total rows into side-by-side panels of
// minWidth columns each. When even one panel does not fit, a single
// full-width panel is still produced: correctness over density.
// Distribution is block-wise, preserving sort order within and across
// panels.
func layoutPanels(total, termWidth, minWidth int) []panel {
	n := 1
	if minWidth > 0 && termWidth > minWidth {
		n = termWidth / minWidth
	}
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	per := 1
	if total > 0 {
		per = (total + n - 1) / n // ceil
	}
	panels := make([]panel, 0, n)
	for i := 0; i < n; i++ {
		start := i * per
		end := start + per
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		panels = append(panels, panel{start: start, end: end})
	}
	return panels
}
