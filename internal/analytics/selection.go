package analytics

import "slices"

type Category string

const (
	CategorySales   Category = "sales"
	CategorySchools Category = "schools"
)

type Chart string

const (
	ChartSizeDemand        Chart = "size-demand"
	ChartMonthlyRevenue    Chart = "monthly-revenue"
	ChartTopProducts       Chart = "top-products"
	ChartInventoryHealth   Chart = "inventory-health"
	ChartOrderDistribution Chart = "order-distribution"
)

type CategoryCharts struct {
	Category Category `json:"category"`
	Charts   []Chart  `json:"charts"`
}

// Categories lists the dashboard categories and their charts in display order.
var Categories = []CategoryCharts{
	{CategorySales, []Chart{ChartSizeDemand, ChartMonthlyRevenue, ChartTopProducts}},
	{CategorySchools, []Chart{ChartInventoryHealth, ChartOrderDistribution}},
}

// Selection is the presentation layer's choice of chart. Zero values pick defaults.
type Selection struct {
	Category Category `json:"category"`
	Chart    Chart    `json:"chart"`
	Year     int      `json:"year,omitempty"`
}

// ChartView is the series behind one selected chart. Only the field matching Chart is set.
type ChartView struct {
	Selection         Selection               `json:"selection"`
	Years             []int                   `json:"years,omitempty"`
	SizeDemand        []SizeDemand            `json:"size_demand,omitempty"`
	MonthlyRevenue    []MonthlyRevenue        `json:"monthly_revenue,omitempty"`
	TopProducts       []ProductSales          `json:"top_products,omitempty"`
	InventoryHealth   []SchoolInventoryHealth `json:"inventory_health,omitempty"`
	OrderDistribution []SchoolOrderCount      `json:"order_distribution,omitempty"`
}

// ResolveYear keeps selected when the result still has it, otherwise falls back to the most
// recent available year.
func ResolveYear(selected int, years []int) int {
	if slices.Contains(years, selected) {
		return selected
	}
	if len(years) == 0 {
		return selected
	}
	return slices.Max(years)
}

// Resolve replaces unknown categories and charts with the first valid choice and resets a
// year the result no longer has.
func (s Selection) Resolve(years []int) Selection {
	ci := slices.IndexFunc(Categories, func(c CategoryCharts) bool {
		return c.Category == s.Category
	})
	if ci < 0 {
		ci = 0
	}
	cat := Categories[ci]

	out := Selection{Category: cat.Category, Chart: s.Chart, Year: ResolveYear(s.Year, years)}
	if !slices.Contains(cat.Charts, s.Chart) {
		out.Chart = cat.Charts[0]
	}
	return out
}

// Select extracts the series for a selection from a computed result.
func Select(r Result, s Selection) ChartView {
	sel := s.Resolve(r.Years)
	view := ChartView{Selection: sel}

	switch sel.Chart {
	case ChartSizeDemand:
		view.Years = r.Years
		view.SizeDemand = r.SizeDemand[sel.Year]
	case ChartMonthlyRevenue:
		view.MonthlyRevenue = r.MonthlyRevenue
	case ChartTopProducts:
		view.TopProducts = r.TopProducts
	case ChartInventoryHealth:
		view.InventoryHealth = r.InventoryHealth
	case ChartOrderDistribution:
		view.OrderDistribution = r.OrderDistribution
	}
	return view
}
