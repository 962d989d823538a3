package chart

import (
	"math"
	"strings"

	"github.com/zoomie/transations/internal/models"
)

const (
	fillRune = '█'
	lineRune = '▀'
	gridRune = '·'
)

// RenderText draws data as a filled area for a terminal of the given size in
// cells. The y axis labels use the same ticks as the SVG chart; the x axis
// shows the first and last timestamps.
func RenderText(data []models.TransactionPoint, width, height int) string {
	l := newLayout(data)

	labelWidth := 0
	for _, t := range l.yTicks {
		labelWidth = max(labelWidth, len(t.Label))
	}
	cols := max(width-labelWidth-2, 2)
	rows := max(height-2, 2)

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}

	rowOf := func(y float64) int {
		frac := (y - plotTop) / (plotBottom - plotTop)
		return clamp(int(math.Round(frac*float64(rows-1))), 0, rows-1)
	}

	tickRows := make(map[int]string, len(l.yTicks))
	for _, t := range l.yTicks {
		r := rowOf(t.Pos)
		tickRows[r] = t.Label
		for c := range grid[r] {
			grid[r][c] = gridRune
		}
	}

	if len(l.points) > 0 {
		base := rowOf(l.baseY)
		for c := 0; c < cols; c++ {
			x := plotLeft + (plotRight-plotLeft)*float64(c)/float64(cols-1)
			y, ok := sampleY(l.points, x)
			if !ok {
				continue
			}
			top := rowOf(y)
			lo, hi := min(top, base), max(top, base)
			for r := lo; r <= hi; r++ {
				grid[r][c] = fillRune
			}
			grid[top][c] = lineRune
		}
	}

	var b strings.Builder
	for r, line := range grid {
		label := tickRows[r]
		b.WriteString(strings.Repeat(" ", labelWidth-len(label)))
		b.WriteString(label)
		b.WriteString(" │")
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", cols))
	b.WriteString("\n")
	b.WriteString(xLabels(data, labelWidth+2, cols))
	return b.String()
}

// sampleY linearly interpolates the series at plot x. It reports false
// outside the series.
func sampleY(pts []point, x float64) (float64, bool) {
	if len(pts) == 1 {
		if math.Abs(pts[0].X-x) <= (plotRight-plotLeft)/40 {
			return pts[0].Y, true
		}
		return 0, false
	}
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		if x >= a.X && x <= b.X {
			t := (x - a.X) / (b.X - a.X)
			return a.Y + t*(b.Y-a.Y), true
		}
	}
	return 0, false
}

func xLabels(data []models.TransactionPoint, indent, cols int) string {
	if len(data) == 0 {
		return ""
	}
	first := data[0].Timestamp
	last := data[len(data)-1].Timestamp
	line := first
	if len(data) > 1 {
		gap := cols - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		line = first + strings.Repeat(" ", gap) + last
	}
	return strings.Repeat(" ", indent) + line + "\n"
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
