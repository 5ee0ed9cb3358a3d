package engine

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"salesdash/internal/models"
)

func TestNewDatasetDerivedColumns(t *testing.T) {
	ds := NewDataset([]models.Transaction{
		{Date: time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC), Region: "West", Category: "Technology", Amount: 10},
		{Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Region: "East", Category: "Furniture", Amount: 20},
	})

	if ds.Months[0] != 7 || ds.Months[1] != 12 {
		t.Errorf("Derived months wrong: %v", ds.Months)
	}
	if ds.YearMonths[0] != "2024-07" || ds.YearMonths[1] != "2024-12" {
		t.Errorf("Derived year-months wrong: %v", ds.YearMonths)
	}
	if ds.Total() != 30 {
		t.Errorf("Expected total 30, got %f", ds.Total())
	}
}

func TestPreview(t *testing.T) {
	ds := NewDataset([]models.Transaction{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Region: "West", Category: "Technology", Amount: 123.456},
	})

	var buf bytes.Buffer
	ds.Preview(&buf, 5) // n larger than dataset must not panic

	out := buf.String()
	if !strings.Contains(out, "1 rows") {
		t.Errorf("Preview missing row count: %s", out)
	}
	if !strings.Contains(out, "2024-01-01") || !strings.Contains(out, "123.46") {
		t.Errorf("Preview missing row data: %s", out)
	}

	// Empty dataset: header only, no panic
	buf.Reset()
	NewDataset(nil).Preview(&buf, 5)
	if !strings.Contains(buf.String(), "0 rows") {
		t.Errorf("Empty preview wrong: %s", buf.String())
	}
}
