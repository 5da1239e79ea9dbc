package chartkit

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ============================================================================
// TABLE RENDERER — draws a row-tinted table as a PNG artifact
// ============================================================================
// go-chart has no table primitive, so this draws one directly: header row
// on gray, body rows on their caller-supplied tint, thin grid lines,
// 7x13 bitmap font.
// ============================================================================

const (
	tableRowHeight = 24
	tableCellPadX  = 10
	tableMargin    = 16
	tableTitleGap  = 30
)

var (
	tableHeaderBG = color.RGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	tableGridCol  = color.RGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}
	tableTextCol  = color.RGBA{A: 0xFF}
	tableWhite    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Table renders headers plus body rows into a table image at path.
// An empty row set still renders the header, so the artifact shows the
// table exists but matched nothing.
func (r *Renderer) Table(title string, headers []string, rows []TableRow, path string) error {
	if len(headers) == 0 {
		return r.writeBlank(path, "no columns")
	}

	face := basicfont.Face7x13
	measurer := &font.Drawer{Face: face}
	measure := func(s string) int { return measurer.MeasureString(s).Ceil() }

	// Column widths fit the widest cell in each column.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = measure(h)
	}
	for _, row := range rows {
		for i, cell := range row.Cells {
			if i < len(widths) && measure(cell) > widths[i] {
				widths[i] = measure(cell)
			}
		}
	}

	tableWidth := 0
	for i := range widths {
		widths[i] += 2 * tableCellPadX
		tableWidth += widths[i]
	}

	width := tableWidth + 2*tableMargin
	if tw := tableMargin*2 + measure(title); tw > width {
		width = tw
	}
	height := tableMargin + tableTitleGap + (len(rows)+1)*tableRowHeight + tableMargin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), tableWhite)

	drawText(img, face, tableTextCol, tableMargin, tableMargin+face.Metrics().Ascent.Ceil(), title)

	top := tableMargin + tableTitleGap
	left := tableMargin

	// Header row.
	fillRect(img, image.Rect(left, top, left+tableWidth, top+tableRowHeight), tableHeaderBG)
	drawRowText(img, face, headers, widths, left, top)

	// Body rows.
	for ri, row := range rows {
		rowTop := top + (ri+1)*tableRowHeight
		tint := row.Tint
		if tint == nil {
			tint = tableWhite
		}
		fillRect(img, image.Rect(left, rowTop, left+tableWidth, rowTop+tableRowHeight), tint)
		drawRowText(img, face, row.Cells, widths, left, rowTop)
	}

	// Grid: horizontal then vertical lines.
	bottom := top + (len(rows)+1)*tableRowHeight
	for ri := 0; ri <= len(rows)+1; ri++ {
		y := top + ri*tableRowHeight
		fillRect(img, image.Rect(left, y, left+tableWidth, y+1), tableGridCol)
	}
	x := left
	for i := 0; i <= len(widths); i++ {
		fillRect(img, image.Rect(x, top, x+1, bottom), tableGridCol)
		if i < len(widths) {
			x += widths[i]
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return r.writeBlank(path, err.Error())
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	r.log.Debug().Str("path", path).Int("rows", len(rows)).Msg("table written")
	return nil
}

func drawRowText(img *image.RGBA, face *basicfont.Face, cells []string, widths []int, left, rowTop int) {
	baseline := rowTop + (tableRowHeight+face.Metrics().Ascent.Ceil())/2 - 1
	x := left
	for i, w := range widths {
		if i < len(cells) {
			drawText(img, face, tableTextCol, x+tableCellPadX, baseline, cells[i])
		}
		x += w
	}
}

func drawText(img *image.RGBA, face *basicfont.Face, col color.Color, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

func fillRect(img *image.RGBA, rect image.Rectangle, col color.Color) {
	draw.Draw(img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}
