package engine

import (
	"reflect"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	cfg := DefaultGenConfig()

	a := Generate(cfg)
	b := Generate(cfg)

	if a.Len() == 0 {
		t.Fatal("Expected non-empty dataset")
	}
	if a.Len() != b.Len() {
		t.Fatalf("Row counts differ: %d vs %d", a.Len(), b.Len())
	}
	if !reflect.DeepEqual(a.Rows, b.Rows) {
		t.Error("Same seed produced different datasets")
	}

	// Different seed should diverge
	cfg.Seed = 7
	c := Generate(cfg)
	if reflect.DeepEqual(a.Rows, c.Rows) {
		t.Error("Different seeds produced identical datasets")
	}
}

func TestGenerateInvariants(t *testing.T) {
	cfg := DefaultGenConfig()
	ds := Generate(cfg)

	validRegion := make(map[string]bool)
	for _, r := range []string{"West", "East", "Central", "South"} {
		validRegion[r] = true
	}
	validCategory := make(map[string]bool)
	for _, c := range []string{"Technology", "Furniture", "Office Supplies"} {
		validCategory[c] = true
	}

	perDay := make(map[string]int)
	for _, tx := range ds.Rows {
		if tx.Amount <= 0 {
			t.Fatalf("Non-positive amount %f on %s", tx.Amount, tx.Date)
		}
		if !validRegion[tx.Region] {
			t.Fatalf("Unknown region %q", tx.Region)
		}
		if !validCategory[tx.Category] {
			t.Fatalf("Unknown category %q", tx.Category)
		}
		if tx.Date.Before(cfg.Start) || tx.Date.After(cfg.End) {
			t.Fatalf("Date %s outside range", tx.Date)
		}
		perDay[tx.Date.Format("2006-01-02")]++
	}

	// 2024 is a leap year: every day produces 1-4 sales
	if len(perDay) != 366 {
		t.Errorf("Expected 366 distinct days, got %d", len(perDay))
	}
	for day, n := range perDay {
		if n < cfg.MinPerDay || n > cfg.MaxPerDay {
			t.Errorf("Day %s has %d sales, want %d-%d", day, n, cfg.MinPerDay, cfg.MaxPerDay)
		}
	}
}

func TestSamplerWeighted(t *testing.T) {
	s := NewSampler(1)

	// Degenerate distribution: all mass on index 1
	for i := 0; i < 100; i++ {
		if idx := s.Weighted([]float64{0, 1, 0}); idx != 1 {
			t.Fatalf("Expected index 1, got %d", idx)
		}
	}

	// IntBetween stays inside its inclusive bounds
	for i := 0; i < 100; i++ {
		n := s.IntBetween(1, 4)
		if n < 1 || n > 4 {
			t.Fatalf("IntBetween(1,4) returned %d", n)
		}
	}

	// Uniform stays inside its range
	for i := 0; i < 100; i++ {
		v := s.Uniform(100, 5000)
		if v < 100 || v >= 5000 {
			t.Fatalf("Uniform(100,5000) returned %f", v)
		}
	}
}
