package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fintwin-tui/internal/api"
	"fintwin-tui/internal/money"
	"fintwin-tui/internal/theme"
)

// Braille dot bits by (column, row-from-top) within one cell. Each cell
// packs 2x4 dots, giving sub-character plot resolution.
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

const brailleBase = 0x2800

const yLabelWidth = 12

type series struct {
	name   string
	color  lipgloss.Color
	points []float64
}

// Chart is the owned handle for one rendered result. A new result never
// mutates an existing chart: ReplaceChart closes the previous handle and
// builds a fresh one in a single call.
type Chart struct {
	series []series
	fmtr   *money.Formatter
	closed bool
}

// NewChart builds a chart for res. The four series have fixed names and
// colors independent of the data; histories are plotted as returned.
func NewChart(res *api.ProjectionResult, t theme.Theme, f *money.Formatter) *Chart {
	return &Chart{
		fmtr: f,
		series: []series{
			{name: "Base", color: t.SeriesBase(), points: res.Base.History},
			{name: "Best case", color: t.SeriesBest(), points: res.Best.History},
			{name: "Worst case", color: t.SeriesWorst(), points: res.Worst.History},
			{name: "What-if", color: t.SeriesScenario(), points: res.Scenario.History},
		},
	}
}

// ReplaceChart tears down prev and returns the chart for res. Callers
// never observe a destroyed-but-not-rebuilt state.
func ReplaceChart(prev *Chart, res *api.ProjectionResult, t theme.Theme, f *money.Formatter) *Chart {
	if prev != nil {
		prev.Close()
	}
	return NewChart(res, t, f)
}

// Close releases the handle. A closed chart renders nothing.
func (c *Chart) Close() {
	c.closed = true
	c.series = nil
}

// Closed reports whether the handle has been released.
func (c *Chart) Closed() bool { return c.closed }

// SeriesNames returns the fixed series identities in draw order.
func (c *Chart) SeriesNames() []string {
	names := make([]string, len(c.series))
	for i, s := range c.series {
		names[i] = s.name
	}
	return names
}

// Legend renders the series key, one colored marker per fixed identity.
func (c *Chart) Legend() string {
	if c == nil || c.closed {
		return ""
	}
	parts := make([]string, len(c.series))
	for i, s := range c.series {
		parts[i] = lipgloss.NewStyle().Foreground(s.color).Render("● " + s.name)
	}
	return strings.Join(parts, "   ")
}

// Render draws all four series over the shared month axis into a
// width x height character block, with currency tick labels on the left
// and month ticks below.
func (c *Chart) Render(width, height int, t theme.Theme) string {
	if c == nil || c.closed {
		return ""
	}
	plotW := width - yLabelWidth - 1
	plotH := height - 2 // axis line and month labels
	if plotW < 8 || plotH < 2 {
		return ""
	}

	lo, hi := c.bounds()
	if hi == lo {
		hi = lo + 1
	}

	type cell struct {
		bits  rune
		color lipgloss.Color
	}
	grid := make([][]cell, plotH)
	for i := range grid {
		grid[i] = make([]cell, plotW)
	}

	dotsX := plotW * 2
	dotsY := plotH * 4

	// Later series overdraw earlier ones, so the what-if run stays on top.
	for _, s := range c.series {
		pts := resample(s.points, dotsX)
		for x, v := range pts {
			norm := (v - lo) / (hi - lo)
			dy := int(norm * float64(dotsY-1))
			rowFromTop := dotsY - 1 - dy
			cl := &grid[rowFromTop/4][x/2]
			cl.bits |= brailleBits[x%2][rowFromTop%4]
			cl.color = s.color
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.Subtext)
	axisStyle := lipgloss.NewStyle().Foreground(t.Border)

	rows := make([]string, 0, height)
	for row := 0; row < plotH; row++ {
		label := ""
		switch row {
		case 0:
			label = c.fmtr.Amount(hi)
		case plotH / 2:
			label = c.fmtr.Amount((hi + lo) / 2)
		case plotH - 1:
			label = c.fmtr.Amount(lo)
		}
		gutter := "│"
		if label != "" {
			gutter = "┤"
		}

		var sb strings.Builder
		sb.WriteString(labelStyle.Render(padLeft(label, yLabelWidth)))
		sb.WriteString(axisStyle.Render(gutter))
		for col := 0; col < plotW; col++ {
			cl := grid[row][col]
			if cl.bits == 0 {
				sb.WriteByte(' ')
				continue
			}
			glyph := string(brailleBase + cl.bits)
			sb.WriteString(lipgloss.NewStyle().Foreground(cl.color).Render(glyph))
		}
		rows = append(rows, sb.String())
	}

	rows = append(rows, strings.Repeat(" ", yLabelWidth)+axisStyle.Render("└"+strings.Repeat("─", plotW)))
	rows = append(rows, strings.Repeat(" ", yLabelWidth+1)+labelStyle.Render(monthTicks(plotW)))

	return strings.Join(rows, "\n")
}

func (c *Chart) bounds() (lo, hi float64) {
	first := true
	for _, s := range c.series {
		for _, v := range s.points {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// monthTicks lays out "0", the midpoint and the horizon across the axis.
func monthTicks(plotW int) string {
	left := "0"
	mid := strconv.Itoa(api.HorizonMonths / 2)
	right := strconv.Itoa(api.HorizonMonths) + "mo"

	line := make([]byte, plotW)
	for i := range line {
		line[i] = ' '
	}
	copy(line, left)
	midStart := plotW/2 - len(mid)/2
	if midStart > len(left) && midStart+len(mid) < plotW-len(right) {
		copy(line[midStart:], mid)
	}
	if plotW > len(right) {
		copy(line[plotW-len(right):], right)
	}
	return string(line)
}

// resample maps data onto n x-positions: bucket averaging when shrinking,
// nearest-index stretch when growing.
func resample(data []float64, n int) []float64 {
	if len(data) == 0 || n <= 0 {
		return nil
	}
	if len(data) == n {
		out := make([]float64, n)
		copy(out, data)
		return out
	}
	if len(data) > n {
		out := make([]float64, n)
		bucketSize := float64(len(data)) / float64(n)
		for i := 0; i < n; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			sum := 0.0
			for j := start; j < end; j++ {
				sum += data[j]
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = data[0]
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
