package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Dashboard palette, hex form for the gg canvas drawing.
const (
	HexBackground = "#1A1A1A"
	HexPrimary    = "#8A2BE2"
	HexAccent     = "#9932CC"
	HexLight      = "#BE90D4"
	HexDark       = "#4B0082"
	HexText       = "#FFFFFF"
	HexGrid       = "#444444"
)

var (
	colorBackground = drawing.Color{R: 0x1A, G: 0x1A, B: 0x1A, A: 255}
	colorPrimary    = drawing.Color{R: 0x8A, G: 0x2B, B: 0xE2, A: 255}
	colorAccent     = drawing.Color{R: 0x99, G: 0x32, B: 0xCC, A: 255}
	colorLight      = drawing.Color{R: 0xBE, G: 0x90, B: 0xD4, A: 255}
	colorText       = drawing.ColorWhite
	colorGrid       = drawing.Color{R: 0x44, G: 0x44, B: 0x44, A: 255}

	// Slice colors in category order: accent, primary, light
	seriesColors = []drawing.Color{colorAccent, colorPrimary, colorLight}
)

// Theme implements go-chart's ColorPalette so the donut and area panels
// pick the dashboard colors instead of the library defaults.
type Theme struct{}

func (Theme) BackgroundColor() drawing.Color       { return colorBackground }
func (Theme) BackgroundStrokeColor() drawing.Color { return colorBackground }
func (Theme) CanvasColor() drawing.Color           { return colorBackground }
func (Theme) CanvasStrokeColor() drawing.Color     { return colorBackground }
func (Theme) AxisStrokeColor() drawing.Color       { return colorGrid }
func (Theme) TextColor() drawing.Color             { return colorText }

func (Theme) GetSeriesColor(index int) drawing.Color {
	return seriesColors[index%len(seriesColors)]
}

// SeriesHex returns the slice color for index as a hex string, for the
// legend swatches drawn on the canvas. Must stay in sync with
// GetSeriesColor.
func SeriesHex(index int) string {
	switch index % len(seriesColors) {
	case 0:
		return HexAccent
	case 1:
		return HexPrimary
	default:
		return HexLight
	}
}
