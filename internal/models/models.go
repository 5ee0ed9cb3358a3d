package models

import "time"

// Fixed dimension values for the synthetic dataset.
// These are the only regions and categories the generator emits.
var (
	Regions    = []string{"West", "East", "Central", "South"}
	Categories = []string{"Technology", "Furniture", "Office Supplies"}
)

// Transaction is one simulated sale record.
type Transaction struct {
	Date     time.Time `json:"order_date"`
	Region   string    `json:"region"`
	Category string    `json:"category"`
	Amount   float64   `json:"sales_amount"`
}

// SummaryRow is one entry of a grouped-sum table (label -> total).
type SummaryRow struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardBundle carries the three summary tables the dashboard is
// built from, plus the grand total for the donut annotations.
type DashboardBundle struct {
	RegionSales   []SummaryRow `json:"region_sales"`   // sorted by value, descending
	CategorySales []SummaryRow `json:"category_sales"` // fixed category order
	MonthlySales  []SummaryRow `json:"monthly_sales"`  // month 1..12, ascending
	Total         float64      `json:"total"`
}
