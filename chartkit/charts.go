package chartkit

import (
	"bytes"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ============================================================================
// CHART RENDERERS — line, bar, stacked bar, pie via go-chart
// ============================================================================

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2.2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// Line renders a chronological series as a line chart with point markers.
func (r *Renderer) Line(title, yAxisName string, points []TimePoint, path string) error {
	if len(points) == 0 {
		return r.writeBlank(path, "no data")
	}

	xs := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	maxY := 0.0
	for _, p := range points {
		xs = append(xs, p.When)
		ys = append(ys, p.Value)
		if p.Value > maxY {
			maxY = p.Value
		}
	}
	// go-chart needs at least two X values to establish a range.
	if len(xs) == 1 {
		xs = append(xs, xs[0].AddDate(0, 1, 0))
		ys = append(ys, ys[0])
	}
	if maxY <= 0 {
		maxY = 1
	}

	col := r.seriesColor(0)
	ch := chart.Chart{
		Title:      title,
		Width:      r.cfg.Width,
		Height:     r.cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 32}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2006"),
		},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY + 1},
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{Name: title, XValues: xs, YValues: ys, Style: pointStyle(col)},
		},
	}

	return r.render(path, func(buf *bytes.Buffer) error {
		return ch.Render(chart.PNG, buf)
	})
}

// Bar renders labeled values as a vertical bar chart.
func (r *Renderer) Bar(title, yAxisName string, values []LabeledValue, path string) error {
	if len(values) == 0 {
		return r.writeBlank(path, "no data")
	}

	maxY := 0.0
	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		col := r.seriesColor(i)
		bars = append(bars, chart.Value{
			Label: v.Label,
			Value: v.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
		if v.Value > maxY {
			maxY = v.Value
		}
	}
	if maxY <= 0 {
		maxY = 1
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      r.cfg.Width,
		Height:     r.cfg.Height,
		BarWidth:   56,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.Style{},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY + 1},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}

	return r.render(path, func(buf *bytes.Buffer) error {
		return bc.Render(chart.PNG, buf)
	})
}

// StackedBar renders one bar per label with one stacked segment per
// series. go-chart normalizes each bar to its own total, so every bar is
// padded with a transparent filler segment up to the global maximum —
// visible heights then stay proportional to the true counts.
func (r *Renderer) StackedBar(title string, labels []string, series []StackedSeries, path string) error {
	if len(labels) == 0 || len(series) == 0 {
		return r.writeBlank(path, "no data")
	}

	maxTotal := 0.0
	totals := make([]float64, len(labels))
	for i := range labels {
		for _, s := range series {
			if i < len(s.Values) {
				totals[i] += s.Values[i]
			}
		}
		if totals[i] > maxTotal {
			maxTotal = totals[i]
		}
	}
	if maxTotal <= 0 {
		return r.writeBlank(path, "all values zero")
	}

	bars := make([]chart.StackedBar, 0, len(labels))
	for i, label := range labels {
		segments := make([]chart.Value, 0, len(series)+1)
		for si, s := range series {
			v := 0.0
			if i < len(s.Values) {
				v = s.Values[i]
			}
			col := r.seriesColor(si)
			segments = append(segments, chart.Value{
				Label: s.Name,
				Value: v,
				Style: chart.Style{FillColor: col, StrokeColor: col},
			})
		}
		// A zero drawing.Color reads as "unset" and would inherit a
		// palette color, so the filler must use ColorTransparent.
		segments = append(segments, chart.Value{
			Value: maxTotal - totals[i],
			Style: chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent},
		})
		bars = append(bars, chart.StackedBar{Name: label, Width: 48, Values: segments})
	}

	sbc := chart.StackedBarChart{
		Title:      title,
		Width:      r.cfg.Width,
		Height:     r.cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 40}},
		BarSpacing: 24,
		XAxis:      chart.Style{},
		YAxis:      chart.Style{Hidden: true},
		Bars:       bars,
	}

	return r.render(path, func(buf *bytes.Buffer) error {
		return sbc.Render(chart.PNG, buf)
	})
}

// Pie renders labeled values as a pie chart. Zero-valued slices are
// dropped; an all-zero input degrades to a blank artifact.
func (r *Renderer) Pie(title string, values []LabeledValue, path string) error {
	slices := make([]chart.Value, 0, len(values))
	for i, v := range values {
		if v.Value <= 0 {
			continue
		}
		col := r.seriesColor(i)
		slices = append(slices, chart.Value{
			Label: v.Label,
			Value: v.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
	}
	if len(slices) == 0 {
		return r.writeBlank(path, "no data")
	}

	pc := chart.PieChart{
		Title:      title,
		Width:      r.cfg.Height, // square keeps the circle round
		Height:     r.cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		Values:     slices,
	}

	return r.render(path, func(buf *bytes.Buffer) error {
		return pc.Render(chart.PNG, buf)
	})
}

// render runs a chart render into a buffer and writes the artifact.
// A render failure degrades to a blank image rather than aborting the run.
func (r *Renderer) render(path string, fn func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return r.writeBlank(path, err.Error())
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	r.log.Debug().Str("path", path).Msg("chart written")
	return nil
}
