package chartkit

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()
	dir := t.TempDir()
	return New(Config{Width: 400, Height: 300}, zerolog.Nop()), dir
}

// requirePNG asserts the file exists and starts with the PNG signature.
func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestLine(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "line.png")

	points := []TimePoint{
		{When: month(2025, time.January), Value: 4},
		{When: month(2025, time.February), Value: 0},
		{When: month(2025, time.March), Value: 7},
	}
	require.NoError(t, r.Line("Applications Over Time", "Applications", points, path))
	requirePNG(t, path)
}

func TestLineSinglePoint(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "single.png")

	points := []TimePoint{{When: month(2025, time.May), Value: 3}}
	require.NoError(t, r.Line("One Month", "Applications", points, path))
	requirePNG(t, path)
}

func TestLineEmptyWritesBlank(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "empty.png")

	require.NoError(t, r.Line("Nothing", "Applications", nil, path))
	requirePNG(t, path)
}

func TestBar(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "bar.png")

	values := []LabeledValue{
		{Label: "Quality 1", Value: 5},
		{Label: "Quality 2", Value: 9},
		{Label: "Quality 3", Value: 2},
	}
	require.NoError(t, r.Bar("Quality Distribution", "Applications", values, path))
	requirePNG(t, path)
}

func TestBarAllZero(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "zeros.png")

	values := []LabeledValue{{Label: "Quality 1", Value: 0}}
	require.NoError(t, r.Bar("Closure Rate", "%", values, path))
	requirePNG(t, path)
}

func TestStackedBar(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "stacked.png")

	labels := []string{"Jan 2025", "Feb 2025", "Mar 2025"}
	series := []StackedSeries{
		{Name: "Quality 1", Values: []float64{1, 0, 2}},
		{Name: "Quality 2", Values: []float64{0, 0, 3}},
	}
	require.NoError(t, r.StackedBar("High Quality Interviews", labels, series, path))
	requirePNG(t, path)
}

func TestStackedBarAllZeroDegrades(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "stacked_zero.png")

	labels := []string{"Jan 2025"}
	series := []StackedSeries{{Name: "Quality 1", Values: []float64{0}}}
	require.NoError(t, r.StackedBar("Nothing", labels, series, path))
	requirePNG(t, path)
}

func TestPie(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "pie.png")

	values := []LabeledValue{
		{Label: "Closed", Value: 3},
		{Label: "Open", Value: 5},
		{Label: "Unknown", Value: 12},
	}
	require.NoError(t, r.Pie("Position Status", values, path))
	requirePNG(t, path)
}

func TestPieDropsZeroSlices(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "pie_partial.png")

	values := []LabeledValue{
		{Label: "Closed", Value: 0},
		{Label: "Open", Value: 5},
	}
	require.NoError(t, r.Pie("Position Status", values, path))
	requirePNG(t, path)
}

func TestTable(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "table.png")

	headers := []string{"Date", "Company", "Title", "Quality"}
	rows := []TableRow{
		{Cells: []string{"01/15/2025", "Acme Corp", "Senior Engineer", "1"}, Tint: color.RGBA{R: 0xE8, G: 0xF5, B: 0xE9, A: 0xFF}},
		{Cells: []string{"02/03/2025", "Globex", "Staff Engineer", "2"}, Tint: color.RGBA{R: 0xFF, G: 0xF9, B: 0xC4, A: 0xFF}},
	}
	require.NoError(t, r.Table("High Quality Jobs with Interviews", headers, rows, path))
	requirePNG(t, path)
}

func TestTableNoRowsStillRenders(t *testing.T) {
	r, dir := testRenderer(t)
	path := filepath.Join(dir, "table_empty.png")

	require.NoError(t, r.Table("High Quality Jobs with Interviews", []string{"Date", "Company"}, nil, path))
	requirePNG(t, path)
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(Config{}, zerolog.Nop())
	def := DefaultConfig()
	assert.Equal(t, def.Width, r.cfg.Width)
	assert.Equal(t, def.Height, r.cfg.Height)
	assert.Len(t, r.cfg.Palette, len(def.Palette))
}
