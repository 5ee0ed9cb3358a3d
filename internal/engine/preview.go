package engine

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Preview writes the dataset schema and the first n rows, the kind of
// head/info dump you eyeball before trusting generated data.
func (ds *Dataset) Preview(w io.Writer, n int) {
	fmt.Fprintf(w, "Dataset: %d rows\n", ds.Len())
	fmt.Fprintln(w, "Schema: order_date (date), region (string), category (string), sales_amount (float64), month (int), year_month (string)")

	if n > ds.Len() {
		n = ds.Len()
	}
	if n == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "order_date\tregion\tcategory\tsales_amount\tmonth\tyear_month")
	for i := 0; i < n; i++ {
		tx := ds.Rows[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\t%s\n",
			tx.Date.Format("2006-01-02"), tx.Region, tx.Category, tx.Amount, ds.Months[i], ds.YearMonths[i])
	}
	tw.Flush()
}
