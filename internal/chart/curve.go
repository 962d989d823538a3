package chart

import (
	"math"
	"strconv"
	"strings"
)

// segment is one cubic Bézier piece of the monotone curve.
type segment struct {
	From, C1, C2, To point
}

// monotone fits a monotone cubic (Fritsch–Carlson, as d3's curveMonotoneX)
// through pts, which must be ordered by X. The curve never overshoots the
// data: between two equal neighbours it is flat.
func monotone(pts []point) []segment {
	n := len(pts)
	if n < 2 {
		return nil
	}

	slopes := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h := pts[i+1].X - pts[i].X
		if h != 0 {
			slopes[i] = (pts[i+1].Y - pts[i].Y) / h
		}
	}

	tangents := make([]float64, n)
	if n == 2 {
		tangents[0], tangents[1] = slopes[0], slopes[0]
	} else {
		for i := 1; i < n-1; i++ {
			h0 := pts[i].X - pts[i-1].X
			h1 := pts[i+1].X - pts[i].X
			s0, s1 := slopes[i-1], slopes[i]
			p := (s0*h1 + s1*h0) / (h0 + h1)
			m := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
			if math.IsNaN(m) {
				m = 0
			}
			tangents[i] = m
		}
		tangents[0] = (3*slopes[0] - tangents[1]) / 2
		tangents[n-1] = (3*slopes[n-2] - tangents[n-2]) / 2
	}

	segments := make([]segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		a, b := pts[i], pts[i+1]
		dx := (b.X - a.X) / 3
		segments = append(segments, segment{
			From: a,
			C1:   point{X: a.X + dx, Y: a.Y + dx*tangents[i]},
			C2:   point{X: b.X - dx, Y: b.Y - dx*tangents[i+1]},
			To:   b,
		})
	}
	return segments
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// linePath returns the SVG path of the curve through pts.
func linePath(pts []point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M")
	writePoint(&b, pts[0])
	for _, s := range monotone(pts) {
		b.WriteString("C")
		writePoint(&b, s.C1)
		b.WriteString(",")
		writePoint(&b, s.C2)
		b.WriteString(",")
		writePoint(&b, s.To)
	}
	return b.String()
}

// areaPath closes the curve down to baseY.
func areaPath(pts []point, baseY float64) string {
	if len(pts) < 2 {
		return ""
	}
	var b strings.Builder
	b.WriteString(linePath(pts))
	b.WriteString("L")
	writePoint(&b, point{X: pts[len(pts)-1].X, Y: baseY})
	b.WriteString("L")
	writePoint(&b, point{X: pts[0].X, Y: baseY})
	b.WriteString("Z")
	return b.String()
}

func writePoint(b *strings.Builder, p point) {
	b.WriteString(coord(p.X))
	b.WriteString(",")
	b.WriteString(coord(p.Y))
}

func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
