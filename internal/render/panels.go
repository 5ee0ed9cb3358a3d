package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"salesdash/internal/models"
)

// blankPanel is what a panel degrades to when its table is empty or
// all-zero: plain background, no axes, no crash.
func blankPanel(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

func decodePanel(render func(io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, fmt.Errorf("render panel: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel: %w", err)
	}
	return img, nil
}

// donutPanel draws the category share donut. Each slice is annotated
// with its percent of total and abbreviated value; category names live
// in the external legend drawn by the composer.
func donutPanel(rows []models.SummaryRow, w, h int) (image.Image, error) {
	var total float64
	for _, r := range rows {
		if r.Value > 0 {
			total += r.Value
		}
	}
	if total <= 0 {
		return blankPanel(w, h), nil
	}

	values := make([]chart.Value, 0, len(rows))
	for _, r := range rows {
		if r.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: r.Value,
			Label: fmt.Sprintf("%.1f%% (%s)", r.Value/total*100, FormatAmount(r.Value)),
			Style: chart.Style{FontColor: colorText, FontSize: 10},
		})
	}

	donut := chart.DonutChart{
		Width:        w,
		Height:       h,
		Title:        "Sum of Sales by Category",
		TitleStyle:   chart.Style{FontColor: colorText, FontSize: 16},
		ColorPalette: Theme{},
		Background:   chart.Style{FillColor: colorBackground},
		Canvas:       chart.Style{FillColor: colorBackground},
		Values:       values,
	}
	return decodePanel(func(out io.Writer) error { return donut.Render(chart.PNG, out) })
}

// areaPanel draws the monthly time series as a filled line chart with
// month abbreviations on the x axis.
func areaPanel(rows []models.SummaryRow, w, h int) (image.Image, error) {
	var max float64
	for _, r := range rows {
		if r.Value > max {
			max = r.Value
		}
	}
	// A single point or a zero max gives the axis nothing to scale
	// against; degrade instead of letting range math divide by zero.
	if len(rows) < 2 || max <= 0 {
		return blankPanel(w, h), nil
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	xTicks := make([]chart.Tick, len(rows))
	for i, r := range rows {
		xs[i] = float64(i)
		ys[i] = r.Value
		xTicks[i] = chart.Tick{Value: float64(i), Label: r.Label}
	}

	// 4 y ticks from zero to a ceiling slightly above the peak
	ceiling := max * 1.1
	yTicks := make([]chart.Tick, 4)
	for i := range yTicks {
		v := ceiling * float64(i) / 3
		yTicks[i] = chart.Tick{Value: v, Label: FormatAmount(v)}
	}

	graph := chart.Chart{
		Width:        w,
		Height:       h,
		Title:        "Sum of Sales by Month",
		TitleStyle:   chart.Style{FontColor: colorText, FontSize: 16},
		ColorPalette: Theme{},
		Background:   chart.Style{FillColor: colorBackground},
		Canvas:       chart.Style{FillColor: colorBackground},
		XAxis: chart.XAxis{
			Style:     chart.Style{FontColor: colorText},
			TickStyle: chart.Style{FontColor: colorText},
			Ticks:     xTicks,
		},
		YAxis: chart.YAxis{
			Style:     chart.Style{FontColor: colorText},
			TickStyle: chart.Style{FontColor: colorText},
			Range:     &chart.ContinuousRange{Min: 0, Max: ceiling},
			Ticks:     yTicks,
			GridMajorStyle: chart.Style{
				StrokeColor:     colorGrid,
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 4},
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Sales",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: colorPrimary,
					StrokeWidth: 2,
					FillColor:   colorPrimary.WithAlpha(76),
					DotColor:    colorPrimary,
					DotWidth:    4,
				},
			},
		},
	}
	return decodePanel(func(out io.Writer) error { return graph.Render(chart.PNG, out) })
}
