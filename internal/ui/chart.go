package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seqbench/internal/benchmark"
	"seqbench/internal/config"
	"seqbench/internal/search"
)

const (
	minChartWidth  = 10
	minChartHeight = 4

	noSearchesText  = "No searches recorded yet."
	noPositionsText = "No found positions to plot."
)

// seriesMarkers gives each strategy its marker and colour.
var seriesMarkers = map[string]struct {
	marker rune
	style  lipgloss.Style
}{
	search.NameRecursive: {'●', recursiveStyle},
	search.NameIterative: {'◆', iterativeStyle},
}

// Point is one data point of a series.
type Point struct {
	X, Y float64
}

// Series is a named line drawn with its own marker and colour.
type Series struct {
	Label  string
	Marker rune
	Style  lipgloss.Style
	Points []Point
}

// Chart is a line chart rendered with box-drawing characters.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int // plot area columns
	Height int // plot area rows
	Series []Series

	// EmptyText is shown instead of the plot when no series has points.
	EmptyText string
}

type cell struct {
	r     rune
	style *lipgloss.Style
}

// ChartFromRecords builds the per-strategy chart for the log. With
// xAxis == config.XAxisPosition records whose target was not found are left
// out.
func ChartFromRecords(records []benchmark.Record, xAxis string, width, height int) Chart {
	xLabel := "Search #"
	emptyText := noSearchesText
	if xAxis == config.XAxisPosition {
		xLabel = "Found position"
		if len(records) > 0 {
			emptyText = noPositionsText
		}
	}

	var series []Series
	for _, s := range search.All() {
		m := seriesMarkers[s.Name]
		ser := Series{Label: s.Label, Marker: m.marker, Style: m.style}
		for _, r := range records {
			x := float64(r.Index)
			if xAxis == config.XAxisPosition {
				if r.Position == search.NotFound {
					continue
				}
				x = float64(r.Position)
			}
			ser.Points = append(ser.Points, Point{X: x, Y: r.Mean(s.Name)})
		}
		series = append(series, ser)
	}

	return Chart{
		Title:     "Recursive vs Iterative Search Time",
		XLabel:    xLabel,
		YLabel:    "Time (seconds)",
		Width:     width,
		Height:    height,
		Series:    series,
		EmptyText: emptyText,
	}
}

func (c Chart) empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

func (c Chart) bounds() (xmin, xmax, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			xmin = math.Min(xmin, p.X)
			xmax = math.Max(xmax, p.X)
			ymax = math.Max(ymax, p.Y)
		}
	}
	if xmax == xmin {
		xmin--
		xmax++
	}
	if ymax <= 0 {
		ymax = 1e-6
	}
	return xmin, xmax, ymax
}

// Render draws the whole chart. It is always redrawn from scratch.
func (c Chart) Render() string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(c.Title))
	b.WriteString("\n")

	if c.empty() {
		text := c.EmptyText
		if text == "" {
			text = noSearchesText
		}
		b.WriteString(subtleStyle.Render(text))
		b.WriteString("\n")
		return b.String()
	}

	width := max(c.Width, minChartWidth)
	height := max(c.Height, minChartHeight)
	xmin, xmax, ymax := c.bounds()

	col := func(x float64) int {
		return int(math.Round((x - xmin) / (xmax - xmin) * float64(width-1)))
	}
	row := func(y float64) int {
		return height - 1 - int(math.Round(y/ymax*float64(height-1)))
	}

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
		for x := range grid[r] {
			grid[r][x] = cell{r: ' '}
		}
	}
	for _, r := range []int{0, (height - 1) / 2} {
		for x := range grid[r] {
			grid[r][x] = cell{r: '┈', style: &gridStyle}
		}
	}

	for i := range c.Series {
		s := &c.Series[i]
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		sort.SliceStable(pts, func(a, b int) bool { return pts[a].X < pts[b].X })

		for j := 1; j < len(pts); j++ {
			c0, c1 := col(pts[j-1].X), col(pts[j].X)
			r0, r1 := row(pts[j-1].Y), row(pts[j].Y)
			for x := c0 + 1; x < c1; x++ {
				t := float64(x-c0) / float64(c1-c0)
				r := int(math.Round(float64(r0) + t*float64(r1-r0)))
				grid[r][x] = cell{r: '·', style: &s.Style}
			}
		}
	}
	for i := range c.Series {
		s := &c.Series[i]
		for _, p := range s.Points {
			grid[row(p.Y)][col(p.X)] = cell{r: s.Marker, style: &s.Style}
		}
	}

	labels := map[int]string{
		0:                fmt.Sprintf("%.6f", ymax),
		(height - 1) / 2: fmt.Sprintf("%.6f", ymax*float64(height-1-(height-1)/2)/float64(height-1)),
		height - 1:       fmt.Sprintf("%.6f", 0.0),
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}

	b.WriteString(subtleStyle.Render(c.YLabel))
	b.WriteString("\n")
	for r := 0; r < height; r++ {
		label, ok := labels[r]
		axis := " │"
		if ok {
			axis = " ┤"
		}
		fmt.Fprintf(&b, "%*s%s", labelWidth, label, axis)
		for _, cl := range grid[r] {
			if cl.style != nil {
				b.WriteString(cl.style.Render(string(cl.r)))
			} else {
				b.WriteRune(cl.r)
			}
		}
		b.WriteString("\n")
	}

	pad := strings.Repeat(" ", labelWidth)
	b.WriteString(pad + " └" + strings.Repeat("─", width) + "\n")

	left, right := formatX(xmin), formatX(xmax)
	gap := max(width-len(left)-len(right), 1)
	b.WriteString(pad + "  " + left + strings.Repeat(" ", gap) + right + "\n")

	title := c.XLabel
	if lead := (width - len(title)) / 2; lead > 0 {
		title = strings.Repeat(" ", lead) + title
	}
	b.WriteString(pad + "  " + subtleStyle.Render(title) + "\n")

	legend := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		legend = append(legend, s.Style.Render(string(s.Marker))+" "+s.Label)
	}
	b.WriteString(pad + "  " + strings.Join(legend, "   ") + "\n")
	return b.String()
}

func formatX(x float64) string {
	if x == math.Trunc(x) {
		return fmt.Sprintf("%d", int64(x))
	}
	return fmt.Sprintf("%.1f", x)
}
