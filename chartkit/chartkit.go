// Package chartkit renders pre-aggregated, labeled series into PNG files.
//
// No raw application records cross into this package: callers hand it
// month/value points, labeled values, or table rows that the metrics
// engine already produced. Styling is explicit configuration passed at
// construction, not process-wide state.
package chartkit

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// TimePoint is one point of a chronological series.
type TimePoint struct {
	When  time.Time
	Value float64
}

// LabeledValue is one labeled bar or pie slice.
type LabeledValue struct {
	Label string
	Value float64
}

// StackedSeries is one named layer of a stacked bar chart. Values run
// parallel to the caller-supplied bar labels.
type StackedSeries struct {
	Name   string
	Values []float64
}

// TableRow is one body row of a rendered table. A nil Tint renders white.
type TableRow struct {
	Cells []string
	Tint  color.Color
}

// Config is the renderer's explicit style state.
type Config struct {
	Width   int
	Height  int
	Palette []drawing.Color
}

// DefaultConfig returns the standard chart size and series palette.
func DefaultConfig() Config {
	return Config{
		Width:  1000,
		Height: 520,
		Palette: []drawing.Color{
			drawing.ColorFromHex("4F46E5"),
			drawing.ColorFromHex("10B981"),
			drawing.ColorFromHex("F59E0B"),
			drawing.ColorFromHex("EF4444"),
			drawing.ColorFromHex("8B5CF6"),
			drawing.ColorFromHex("06B6D4"),
		},
	}
}

// Renderer writes chart artifacts to disk.
type Renderer struct {
	cfg Config
	log zerolog.Logger
}

// New builds a Renderer. Zero-value dimensions fall back to the defaults.
func New(cfg Config, log zerolog.Logger) *Renderer {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = def.Palette
	}
	return &Renderer{cfg: cfg, log: log}
}

func (r *Renderer) seriesColor(i int) drawing.Color {
	return r.cfg.Palette[i%len(r.cfg.Palette)]
}

// writeBlank writes a plain white image so the dashboard still has an
// artifact to reference when a chart has nothing to show or fails to
// render. Degrading to blank is never fatal.
func (r *Renderer) writeBlank(path, reason string) error {
	r.log.Warn().Str("path", path).Str("reason", reason).Msg("writing blank chart")

	img := image.NewRGBA(image.Rect(0, 0, r.cfg.Width, r.cfg.Height))
	fillRect(img, img.Bounds(), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
