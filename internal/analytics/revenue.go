package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// monthlyRevenue sums order totals into Jan..Dec buckets for the current year. Orders whose
// creation time is unknown cannot be placed in a month and are left out.
func monthlyRevenue(orders []datedOrder, currentYear int) []MonthlyRevenue {
	var buckets [12]decimal.Decimal
	for _, o := range orders {
		if !o.ok || o.at.Year() != currentYear {
			continue
		}
		m := int(o.at.Month()) - 1
		buckets[m] = buckets[m].Add(amount(o.order.TotalAmount))
	}

	out := make([]MonthlyRevenue, len(monthLabels))
	for i, label := range monthLabels {
		out[i] = MonthlyRevenue{Month: label, Revenue: buckets[i].InexactFloat64()}
	}
	return out
}

// amount converts a stored total. NaN and infinities count as zero.
func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
