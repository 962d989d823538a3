package chart

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/zoomie/transations/internal/models"
)

var svgTemplate = template.Must(template.New("area-chart").Parse(`<svg class="area-chart" xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<style>
.area-chart .hit:hover .dot{opacity:1}
.area-chart .dot{opacity:0}
.area-chart text{font:12px sans-serif;fill:#666}
</style>
<g class="grid" stroke="{{.GridColor}}" stroke-dasharray="{{.GridDash}}">
{{- range .YTicks}}
<line x1="{{$.Left}}" y1="{{.Y}}" x2="{{$.Right}}" y2="{{.Y}}"/>
{{- end}}
{{- range .XTicks}}
<line x1="{{.X}}" y1="{{$.Top}}" x2="{{.X}}" y2="{{$.Bottom}}"/>
{{- end}}
</g>
<g class="y-axis">
<line x1="{{.Left}}" y1="{{.Top}}" x2="{{.Left}}" y2="{{.Bottom}}" stroke="#666"/>
{{- range .YTicks}}
<text x="{{$.YLabelX}}" y="{{.Y}}" text-anchor="end" dominant-baseline="middle">{{.Label}}</text>
{{- end}}
</g>
<g class="x-axis">
<line x1="{{.Left}}" y1="{{.Bottom}}" x2="{{.Right}}" y2="{{.Bottom}}" stroke="#666"/>
{{- range .XTicks}}
<text x="{{.X}}" y="{{$.XLabelY}}" text-anchor="middle">{{.Label}}</text>
{{- end}}
</g>
{{- if .Area}}
<path class="area" d="{{.Area}}" fill="{{.Color}}" fill-opacity="{{.FillAlpha}}" stroke="none"/>
{{- end}}
{{- if .Line}}
<path class="line" d="{{.Line}}" fill="none" stroke="{{.Color}}" stroke-width="1"/>
{{- end}}
<g class="tooltips">
{{- range .Points}}
<g class="hit"><circle class="dot" cx="{{.X}}" cy="{{.Y}}" r="4" fill="#fff" stroke="{{$.Color}}" stroke-width="2"/><circle cx="{{.X}}" cy="{{.Y}}" r="10" fill="transparent"><title>{{.Timestamp}}
amount : {{.Amount}}</title></circle></g>
{{- end}}
</g>
</svg>`))

type svgTick struct {
	X, Y  string
	Label string
}

type svgPoint struct {
	X, Y      string
	Timestamp string
	Amount    string
}

type svgData struct {
	Width, Height           int
	Left, Right, Top, Bottom string
	YLabelX, XLabelY        string
	Color, GridColor        string
	GridDash                string
	FillAlpha               float64
	YTicks, XTicks          []svgTick
	Area, Line              string
	Points                  []svgPoint
}

// RenderSVG draws data as a 500×400 area chart: timestamps along the x axis,
// amounts up the y axis, a dashed grid, and a hover tooltip for every point.
// An empty series renders the frame alone.
func RenderSVG(data []models.TransactionPoint) (template.HTML, error) {
	l := newLayout(data)

	d := svgData{
		Width:     Width,
		Height:    Height,
		Left:      coord(plotLeft),
		Right:     coord(plotRight),
		Top:       coord(plotTop),
		Bottom:    coord(plotBottom),
		YLabelX:   coord(plotLeft - 8),
		XLabelY:   coord(plotBottom + 18),
		Color:     Color,
		GridColor: GridColor,
		GridDash:  GridDash,
		FillAlpha: FillAlpha,
		Area:      areaPath(l.points, l.baseY),
		Line:      linePath(l.points),
	}
	for _, t := range l.yTicks {
		d.YTicks = append(d.YTicks, svgTick{Y: coord(t.Pos), Label: t.Label})
	}
	for _, t := range l.xTicks {
		d.XTicks = append(d.XTicks, svgTick{X: coord(t.Pos), Label: t.Label})
	}
	for i, p := range l.points {
		d.Points = append(d.Points, svgPoint{
			X:         coord(p.X),
			Y:         coord(p.Y),
			Timestamp: data[i].Timestamp,
			Amount:    strconv.FormatFloat(data[i].Amount, 'f', -1, 64),
		})
	}

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}
