package render

import (
	"bytes"
	"image/png"
	"testing"

	"salesdash/internal/models"
)

func testBundle() *models.DashboardBundle {
	return &models.DashboardBundle{
		RegionSales: []models.SummaryRow{
			{Label: "West", Value: 500000},
			{Label: "East", Value: 400000},
			{Label: "Central", Value: 300000},
			{Label: "South", Value: 200000},
		},
		CategorySales: []models.SummaryRow{
			{Label: "Technology", Value: 700000},
			{Label: "Furniture", Value: 450000},
			{Label: "Office Supplies", Value: 250000},
		},
		MonthlySales: []models.SummaryRow{
			{Label: "Jan", Value: 100000},
			{Label: "Feb", Value: 110000},
			{Label: "Mar", Value: 125000},
			{Label: "Apr", Value: 140000},
		},
		Total: 1400000,
	}
}

func TestRenderDashboard(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	img, err := r.Render(testBundle())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 1600 || b.Dy() != 900 {
		t.Errorf("Expected 1600x900 canvas, got %dx%d", b.Dx(), b.Dy())
	}
}

// Empty or zero-valued tables must degrade to blank panels, never
// divide by zero.
func TestRenderEmptyBundle(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	for name, bundle := range map[string]*models.DashboardBundle{
		"nil":   nil,
		"empty": {},
		"zeros": {
			RegionSales:   []models.SummaryRow{{Label: "West", Value: 0}},
			CategorySales: []models.SummaryRow{{Label: "Technology", Value: 0}},
			MonthlySales:  []models.SummaryRow{{Label: "Jan", Value: 0}, {Label: "Feb", Value: 0}},
		},
	} {
		img, err := r.Render(bundle)
		if err != nil {
			t.Errorf("%s bundle: render failed: %v", name, err)
			continue
		}
		if img.Bounds().Dx() != 1600 {
			t.Errorf("%s bundle: wrong canvas size", name)
		}
	}
}

func TestWritePNG(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.WritePNG(testBundle(), &buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 1600 || img.Bounds().Dy() != 900 {
		t.Errorf("PNG has wrong dimensions: %v", img.Bounds())
	}
}

func TestPanelDegradation(t *testing.T) {
	// Donut with no positive slices
	img, err := donutPanel([]models.SummaryRow{{Label: "Technology", Value: 0}}, 400, 300)
	if err != nil {
		t.Fatalf("donutPanel failed: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
		t.Errorf("Blank donut panel has wrong size: %v", img.Bounds())
	}

	// Area with a zero max
	img, err = areaPanel([]models.SummaryRow{{Label: "Jan", Value: 0}, {Label: "Feb", Value: 0}}, 400, 300)
	if err != nil {
		t.Fatalf("areaPanel failed: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("Blank area panel has wrong size: %v", img.Bounds())
	}

	// Area with a single point has nothing to interpolate
	if _, err := areaPanel([]models.SummaryRow{{Label: "Jan", Value: 10}}, 400, 300); err != nil {
		t.Fatalf("Single-point areaPanel failed: %v", err)
	}
}
