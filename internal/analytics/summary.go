package analytics

import (
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// Summary backs the dashboard cards shown above the charts.
type Summary struct {
	TotalOrders        int     `json:"total_orders"`
	UndatedOrders      int     `json:"undated_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	CurrentYearRevenue float64 `json:"current_year_revenue"`
	TotalStockUnits    int     `json:"total_stock_units"`
	InStockEntries     int     `json:"in_stock_entries"`
	LowStockEntries    int     `json:"low_stock_entries"`
	OutOfStockEntries  int     `json:"out_of_stock_entries"`
	SchoolCount        int     `json:"school_count"`
	BatchCount         int     `json:"batch_count"`
}

func summarize(orders []datedOrder, batches []models.Batch, schools schoolIndex, currentYear int) Summary {
	s := Summary{
		TotalOrders: len(orders),
		SchoolCount: len(schools.order),
		BatchCount:  len(batches),
	}

	total, thisYear := decimal.Zero, decimal.Zero
	for _, o := range orders {
		if !o.ok {
			s.UndatedOrders++
		}
		a := amount(o.order.TotalAmount)
		total = total.Add(a)
		if o.ok && o.at.Year() == currentYear {
			thisYear = thisYear.Add(a)
		}
	}
	s.TotalRevenue = total.InexactFloat64()
	s.CurrentYearRevenue = thisYear.InexactFloat64()

	for _, b := range batches {
		for _, item := range b.Items {
			for _, size := range item.Sizes {
				s.TotalStockUnits += max(size.Quantity, 0)
				switch ClassifyStock(size.Quantity) {
				case OutOfStock:
					s.OutOfStockEntries++
				case LowStock:
					s.LowStockEntries++
				default:
					s.InStockEntries++
				}
			}
		}
	}
	return s
}
