package server

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/thisAbdU/amazon-pipeline/internal/overview"
	"github.com/thisAbdU/amazon-pipeline/internal/products"
)

// Chart markup is generated inline rather than through a charting library:
// both charts are a single filled polyline over a handful of points.

const (
	chartW   = 600.0
	chartH   = 160.0
	chartPad = 8.0
)

// trendSVG renders the 30-day trend as a filled area chart.
func trendSVG(points []overview.TrendPoint) template.HTML {
	if len(points) == 0 {
		return ""
	}
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Price
	}
	line := polyline(vals)
	area := line + fmt.Sprintf(" %.1f,%.1f %.1f,%.1f", chartW-chartPad, chartH-chartPad, chartPad, chartH-chartPad)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart" viewBox="0 0 %.0f %.0f" preserveAspectRatio="none" role="img" aria-label="30-day price trend">`, chartW, chartH)
	fmt.Fprintf(&b, `<polygon class="chart-area" points="%s"/>`, area)
	fmt.Fprintf(&b, `<polyline class="chart-line" fill="none" points="%s"/>`, line)
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// sparklineSVG renders a product's price history as a plain line.
func sparklineSVG(points []products.OfferSnapshot) template.HTML {
	if len(points) < 2 {
		return ""
	}
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Price
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart" viewBox="0 0 %.0f %.0f" preserveAspectRatio="none" role="img" aria-label="price history">`, chartW, chartH)
	fmt.Fprintf(&b, `<polyline class="chart-line" fill="none" points="%s"/>`, polyline(vals))
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// polyline maps the values onto chart coordinates, y inverted and scaled to
// the observed range. A flat series draws a midline.
func polyline(vals []float64) string {
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	step := (chartW - 2*chartPad) / float64(len(vals)-1)
	if len(vals) == 1 {
		step = 0
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		y := chartH / 2
		if span > 0 {
			y = chartPad + (chartH-2*chartPad)*(1-(v-min)/span)
		}
		parts[i] = fmt.Sprintf("%.1f,%.1f", chartPad+float64(i)*step, y)
	}
	return strings.Join(parts, " ")
}
