package engine

import (
	"sort"
	"time"

	"salesdash/internal/models"
)

// orderedSum accumulates key -> sum while remembering first-seen key
// order, so table row order never depends on map iteration.
type orderedSum struct {
	keys []string
	sums map[string]float64
}

func newOrderedSum() *orderedSum {
	return &orderedSum{sums: make(map[string]float64)}
}

func (o *orderedSum) Add(key string, v float64) {
	if _, seen := o.sums[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.sums[key] += v
}

func (o *orderedSum) Rows() []models.SummaryRow {
	rows := make([]models.SummaryRow, 0, len(o.keys))
	for _, k := range o.keys {
		rows = append(rows, models.SummaryRow{Label: k, Value: o.sums[k]})
	}
	return rows
}

// Aggregate computes the three grouped sums the dashboard needs. Pure
// function of the dataset: region sums sorted descending, category sums
// in canonical category order, month sums ascending by month number with
// three-letter labels. An empty dataset yields empty tables.
func Aggregate(ds *Dataset) *models.DashboardBundle {
	bundle := &models.DashboardBundle{
		RegionSales:   []models.SummaryRow{},
		CategorySales: []models.SummaryRow{},
		MonthlySales:  []models.SummaryRow{},
	}
	if ds == nil || ds.Len() == 0 {
		return bundle
	}

	regions := newOrderedSum()
	categories := newOrderedSum()
	months := make([]float64, 13) // index 1..12

	for i, tx := range ds.Rows {
		regions.Add(tx.Region, tx.Amount)
		categories.Add(tx.Category, tx.Amount)
		months[ds.Months[i]] += tx.Amount
		bundle.Total += tx.Amount
	}

	// Regions: highest first
	bundle.RegionSales = regions.Rows()
	sort.Slice(bundle.RegionSales, func(i, j int) bool {
		return bundle.RegionSales[i].Value > bundle.RegionSales[j].Value
	})

	// Categories: canonical order first, then anything unexpected in
	// first-seen order (configs can carry custom categories)
	emitted := make(map[string]bool)
	for _, c := range models.Categories {
		if v, ok := categories.sums[c]; ok {
			bundle.CategorySales = append(bundle.CategorySales, models.SummaryRow{Label: c, Value: v})
			emitted[c] = true
		}
	}
	for _, row := range categories.Rows() {
		if !emitted[row.Label] {
			bundle.CategorySales = append(bundle.CategorySales, row)
		}
	}

	// Months: ascending 1..12, skipping months with no sales
	for m := 1; m <= 12; m++ {
		if months[m] == 0 {
			continue
		}
		bundle.MonthlySales = append(bundle.MonthlySales, models.SummaryRow{
			Label: time.Month(m).String()[:3],
			Value: months[m],
		})
	}

	return bundle
}
