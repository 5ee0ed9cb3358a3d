package engine

import "salesdash/internal/models"

// Dataset holds the generated rows plus derived columns computed once
// after generation. Months is index-aligned with Rows so the aggregator
// never re-parses dates.
type Dataset struct {
	Rows []models.Transaction

	// Derived columns
	Months     []int    // 1..12
	YearMonths []string // "2024-01"
}

// NewDataset wraps the rows and computes the derived columns.
func NewDataset(rows []models.Transaction) *Dataset {
	ds := &Dataset{
		Rows:       rows,
		Months:     make([]int, len(rows)),
		YearMonths: make([]string, len(rows)),
	}
	for i, tx := range rows {
		ds.Months[i] = int(tx.Date.Month())
		ds.YearMonths[i] = tx.Date.Format("2006-01")
	}
	return ds
}

func (ds *Dataset) Len() int {
	return len(ds.Rows)
}

// Total is the grand total of all amounts.
func (ds *Dataset) Total() float64 {
	var sum float64
	for _, tx := range ds.Rows {
		sum += tx.Amount
	}
	return sum
}
