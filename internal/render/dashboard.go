package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"salesdash/internal/models"
)

// Fixed 1600x900 canvas split into 3 rows (height ratios 0.1/0.45/0.45)
// by 3 columns. Panel positions are hard-coded offsets; there is no
// dynamic re-layout.
const (
	dashWidth  = 1600
	dashHeight = 900

	titleRowH = 90  // dashHeight * 0.10
	chartRowH = 405 // dashHeight * 0.45
	colWidth  = 533 // dashWidth / 3

	legendWidth = 210
)

// Renderer composes the dashboard image. It owns the parsed font faces;
// build it once and reuse it.
type Renderer struct {
	titleFace font.Face
	panelFace font.Face
	labelFace font.Face
	smallFace font.Face
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.titleFace, err = newFace(gobold.TTF, 28); err != nil {
		return nil, fmt.Errorf("load title face: %w", err)
	}
	if r.panelFace, err = newFace(gobold.TTF, 17); err != nil {
		return nil, fmt.Errorf("load panel face: %w", err)
	}
	if r.labelFace, err = newFace(goregular.TTF, 13); err != nil {
		return nil, fmt.Errorf("load label face: %w", err)
	}
	if r.smallFace, err = newFace(goregular.TTF, 11); err != nil {
		return nil, fmt.Errorf("load small face: %w", err)
	}
	return r, nil
}

// Render draws the full dashboard: title band with decorative region
// slicers, region bar panel, category donut with external legend, and
// the full-width monthly area panel.
func (r *Renderer) Render(bundle *models.DashboardBundle) (image.Image, error) {
	if bundle == nil {
		bundle = &models.DashboardBundle{}
	}

	dc := gg.NewContext(dashWidth, dashHeight)
	dc.SetHexColor(HexBackground)
	dc.Clear()

	r.drawTitleRow(dc)
	r.drawBarPanel(dc, bundle.RegionSales, 0, titleRowH, colWidth, chartRowH)

	donutW := dashWidth - colWidth - legendWidth
	donut, err := donutPanel(bundle.CategorySales, donutW, chartRowH)
	if err != nil {
		return nil, err
	}
	dc.DrawImage(donut, colWidth, titleRowH)
	r.drawLegend(dc, bundle.CategorySales, float64(colWidth+donutW+10), titleRowH+60)

	area, err := areaPanel(bundle.MonthlySales, dashWidth, chartRowH)
	if err != nil {
		return nil, err
	}
	dc.DrawImage(area, 0, titleRowH+chartRowH)

	return dc.Image(), nil
}

// WritePNG renders the dashboard and encodes it to w.
func (r *Renderer) WritePNG(bundle *models.DashboardBundle, w io.Writer) error {
	img, err := r.Render(bundle)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Save renders the dashboard to a PNG file. This is the one observable
// side effect of the whole pipeline.
func (r *Renderer) Save(bundle *models.DashboardBundle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := r.WritePNG(bundle, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// --- TITLE ROW ---

func (r *Renderer) drawTitleRow(dc *gg.Context) {
	dc.SetFontFace(r.titleFace)
	dc.SetHexColor(HexText)
	dc.DrawStringAnchored("SALES ANALYSIS", 32, titleRowH/2, 0, 0.35)

	// Static slicer boxes, one per region, alphabetical. Decorative
	// only: not data-bound.
	names := append([]string(nil), models.Regions...)
	sort.Strings(names)

	const boxW, boxH, gap = 130.0, 46.0, 14.0
	x := dashWidth - 24 - float64(len(names))*(boxW+gap) + gap
	y := (titleRowH - boxH) / 2

	dc.SetFontFace(r.labelFace)
	for _, name := range names {
		dc.SetHexColor(HexAccent)
		dc.DrawRectangle(x, y, boxW, boxH)
		dc.Fill()
		dc.SetHexColor(HexText)
		dc.DrawStringAnchored(name, x+boxW/2, y+boxH/2, 0.5, 0.35)
		x += boxW + gap
	}
}

// --- REGION BAR PANEL ---

// drawBarPanel draws the horizontal bar chart of region sums directly
// on the canvas (go-chart has no horizontal bar type). Rows arrive
// sorted descending, so the largest region lands on top.
func (r *Renderer) drawBarPanel(dc *gg.Context, rows []models.SummaryRow, x, y, w, h float64) {
	dc.SetFontFace(r.panelFace)
	dc.SetHexColor(HexText)
	dc.DrawStringAnchored("Sum of Sales by Region", x+w/2, y+28, 0.5, 0.35)

	if len(rows) == 0 {
		return
	}

	const (
		gutter    = 90.0 // room for region names
		rightPad  = 70.0 // room for value labels
		topPad    = 52.0
		bottomPad = 36.0
	)
	plotX := x + gutter
	plotY := y + topPad
	plotW := w - gutter - rightPad
	plotH := h - topPad - bottomPad

	var max float64
	for _, row := range rows {
		if row.Value > max {
			max = row.Value
		}
	}
	denom := max
	if denom <= 0 {
		denom = 1 // zero-max guard: bars collapse to zero width instead of NaN
	}

	// 5 vertical grid lines with abbreviated tick labels
	dc.SetFontFace(r.smallFace)
	for i := 0; i <= 4; i++ {
		tv := max * float64(i) / 4
		tx := plotX + plotW*tv/denom
		dc.SetHexColor(HexGrid)
		dc.SetDash(4, 4)
		dc.SetLineWidth(1)
		dc.DrawLine(tx, plotY, tx, plotY+plotH)
		dc.Stroke()
		dc.SetDash()
		dc.SetHexColor(HexText)
		dc.DrawStringAnchored(FormatAmount(tv), tx, plotY+plotH+14, 0.5, 0.35)
	}

	slotH := plotH / float64(len(rows))
	barH := slotH * 0.6
	dc.SetFontFace(r.labelFace)
	for i, row := range rows {
		barY := plotY + float64(i)*slotH + (slotH-barH)/2
		barW := plotW * row.Value / denom

		dc.SetHexColor(HexPrimary)
		dc.DrawRectangle(plotX, barY, barW, barH)
		dc.Fill()

		dc.SetHexColor(HexText)
		dc.DrawStringAnchored(row.Label, plotX-8, barY+barH/2, 1, 0.35)
		dc.DrawStringAnchored(FormatAmount(row.Value), plotX+barW+8, barY+barH/2, 0, 0.35)
	}
}

// --- DONUT LEGEND ---

// drawLegend draws the external category legend beside the donut, with
// swatches matching the slice colors.
func (r *Renderer) drawLegend(dc *gg.Context, rows []models.SummaryRow, x, y float64) {
	dc.SetFontFace(r.labelFace)
	dc.SetHexColor(HexText)
	dc.DrawString("Category", x, y)

	const swatch, lineH = 14.0, 26.0
	entry := 0
	for _, row := range rows {
		if row.Value <= 0 {
			continue // slice skipped by the donut, keep indices aligned
		}
		ey := y + 14 + float64(entry)*lineH
		dc.SetHexColor(SeriesHex(entry))
		dc.DrawRectangle(x, ey, swatch, swatch)
		dc.Fill()
		dc.SetHexColor(HexText)
		dc.DrawStringAnchored(row.Label, x+swatch+8, ey+swatch/2, 0, 0.35)
		entry++
	}
}
