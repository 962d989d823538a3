// Package chart draws a transaction history as an area chart.
package chart

import (
	"math"
	"strconv"

	"github.com/zoomie/transations/internal/models"
)

// Fixed chart geometry and colours.
const (
	Width  = 500
	Height = 400

	MarginTop    = 10
	MarginRight  = 30
	MarginLeft   = 0
	MarginBottom = 0

	YAxisWidth  = 60
	XAxisHeight = 30

	Color     = "#8884d8"
	FillAlpha = 0.6
	GridColor = "#ccc"
	GridDash  = "3 3"

	yTickCount = 5
	maxYTicks  = 32
)

// Plot area in SVG coordinates.
var (
	plotLeft   = float64(MarginLeft + YAxisWidth)
	plotRight  = float64(Width - MarginRight)
	plotTop    = float64(MarginTop)
	plotBottom = float64(Height - MarginBottom - XAxisHeight)
)

type point struct {
	X, Y float64
}

type tick struct {
	Pos   float64
	Label string
}

// layout maps data onto plot coordinates.
type layout struct {
	points  []point
	yTicks  []tick
	xTicks  []tick
	baseY   float64
	domainL float64
	domainH float64
}

func newLayout(data []models.TransactionPoint) layout {
	lo, hi := 0.0, 0.0
	for _, p := range data {
		lo = math.Min(lo, p.Amount)
		hi = math.Max(hi, p.Amount)
	}
	ticks := niceTicks(lo, hi, yTickCount)
	l := layout{
		domainL: ticks[0],
		domainH: ticks[len(ticks)-1],
	}

	step := ticks[1] - ticks[0]
	for _, v := range ticks {
		l.yTicks = append(l.yTicks, tick{Pos: l.y(v), Label: formatNumber(v, step)})
	}
	l.baseY = l.y(math.Max(l.domainL, math.Min(0, l.domainH)))

	visible := xLabelStep(data)
	for i, p := range data {
		pt := point{X: xPosition(i, len(data)), Y: l.y(p.Amount)}
		l.points = append(l.points, pt)
		if (len(data)-1-i)%visible == 0 {
			l.xTicks = append(l.xTicks, tick{Pos: pt.X, Label: p.Timestamp})
		}
	}
	return l
}

// y maps v into the plot. Values are halved first so that domains spanning
// most of the float64 range do not overflow.
func (l layout) y(v float64) float64 {
	frac := (v/2 - l.domainL/2) / (l.domainH/2 - l.domainL/2)
	if math.IsNaN(frac) || math.IsInf(frac, 0) {
		return (plotTop + plotBottom) / 2
	}
	return plotBottom - frac*(plotBottom-plotTop)
}

// xPosition spreads n categories evenly across the plot; a single category
// sits in the middle.
func xPosition(i, n int) float64 {
	if n <= 1 {
		return (plotLeft + plotRight) / 2
	}
	return plotLeft + float64(i)*(plotRight-plotLeft)/float64(n-1)
}

// xLabelStep returns k such that every k-th label, counted back from the last
// one, fits without overlapping its neighbours.
func xLabelStep(data []models.TransactionPoint) int {
	longest := 1
	for _, p := range data {
		if len(p.Timestamp) > longest {
			longest = len(p.Timestamp)
		}
	}
	perLabel := float64(longest)*6.5 + 10
	fit := int((plotRight - plotLeft) / perLabel)
	if fit < 1 {
		fit = 1
	}
	step := (len(data) + fit - 1) / fit
	if step < 1 {
		step = 1
	}
	return step
}

// niceTicks returns about count evenly spaced round values covering [lo, hi].
// When the rounded range cannot be represented it returns just lo and hi.
func niceTicks(lo, hi float64, count int) []float64 {
	if lo == hi {
		hi = lo + 1
	}

	step := niceNumber((hi/2 - lo/2) / float64(count-1) * 2)
	first := math.Floor(lo / step)
	last := math.Ceil(hi / step)
	n := last - first
	if !finite(step) || step <= 0 || !finite(first*step) || !finite(last*step) || n < 1 || n >= maxYTicks {
		return []float64{lo, hi}
	}

	ticks := make([]float64, 0, int(n)+1)
	for k := 0; k <= int(n); k++ {
		// Multiplying the index keeps labels free of accumulated float noise.
		ticks = append(ticks, (first+float64(k))*step)
	}
	return ticks
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// niceNumber rounds x to 1, 2, 5 or 10 times a power of ten.
func niceNumber(x float64) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	switch {
	case f < 1.5:
		nf = 1
	case f < 3:
		nf = 2
	case f < 7:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

// formatNumber prints v with just enough decimals for the tick step.
// Astronomically large steps switch to exponent notation.
func formatNumber(v, step float64) string {
	if math.Abs(step) >= 1e15 {
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step)))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
