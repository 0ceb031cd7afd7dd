// Package analytics turns raw order, batch and school collections into the chart-ready
// views of the dashboard. Everything here is a pure transform: no I/O, no shared state and
// no error exits. Malformed input degrades to defaults instead of failing.
package analytics

import (
	"time"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

type SizeDemand struct {
	Size       string    `json:"size"`
	TotalSales int       `json:"total_sales"`
	ColorBand  ColorBand `json:"color_band"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type ProductSales struct {
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
	Color     string `json:"color"`
}

type SchoolInventoryHealth struct {
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name"`
	InStock    int    `json:"in_stock"`
	LowStock   int    `json:"low_stock"`
	OutOfStock int    `json:"out_of_stock"`
}

// Total is the number of size entries counted for the school.
func (h SchoolInventoryHealth) Total() int {
	return h.InStock + h.LowStock + h.OutOfStock
}

type SchoolOrderCount struct {
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name"`
	OrderCount int    `json:"order_count"`
	Color      string `json:"color"`
}

// Result is the aggregate produced by one Recompute call. It is rebuilt from scratch on
// every call and never patched in place.
type Result struct {
	Year              int                     `json:"current_year"`
	Years             []int                   `json:"years"`
	SizeDemand        map[int][]SizeDemand    `json:"size_demand"`
	MonthlyRevenue    []MonthlyRevenue        `json:"monthly_revenue"`
	TopProducts       []ProductSales          `json:"top_products"`
	InventoryHealth   []SchoolInventoryHealth `json:"inventory_health"`
	OrderDistribution []SchoolOrderCount      `json:"order_distribution"`
	Summary           Summary                 `json:"summary"`
}

// Aggregator computes Results. Its clock decides the current year and its location the
// calendar used to bucket orders into years and months.
type Aggregator struct {
	now func() time.Time
	loc *time.Location
}

type Option func(*Aggregator)

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Recompute builds every view from the given collections. The inputs are only read.
func (a *Aggregator) Recompute(orders []models.Order, batches []models.Batch, schools []models.School) Result {
	currentYear := a.now().In(a.loc).Year()
	dated := a.dateOrders(orders)
	index := indexSchools(schools)

	years, demand := sizeDemandByYear(dated, currentYear)
	return Result{
		Year:              currentYear,
		Years:             years,
		SizeDemand:        demand,
		MonthlyRevenue:    monthlyRevenue(dated, currentYear),
		TopProducts:       topProducts(orders),
		InventoryHealth:   inventoryHealth(batches, index),
		OrderDistribution: orderDistribution(orders, index),
		Summary:           summarize(dated, batches, index, currentYear),
	}
}

// datedOrder is an order with its creation time resolved once, in the aggregator's calendar.
type datedOrder struct {
	order *models.Order
	at    time.Time
	ok    bool
}

func (a *Aggregator) dateOrders(orders []models.Order) []datedOrder {
	out := make([]datedOrder, len(orders))
	for i := range orders {
		t, ok := orders[i].CreatedAt.Time()
		if ok {
			t = t.In(a.loc)
		}
		out[i] = datedOrder{order: &orders[i], at: t, ok: ok}
	}
	return out
}

// year buckets an order. Orders without a usable timestamp count toward the current year;
// Summary.UndatedOrders reports how many did.
func (d datedOrder) year(currentYear int) int {
	if !d.ok {
		return currentYear
	}
	return d.at.Year()
}

// schoolIndex keeps schools in collection order; the first occurrence of an id wins.
type schoolIndex struct {
	order []models.School
	pos   map[string]int
}

func indexSchools(schools []models.School) schoolIndex {
	idx := schoolIndex{pos: make(map[string]int, len(schools))}
	for _, s := range schools {
		if _, dup := idx.pos[s.ID]; dup {
			continue
		}
		idx.pos[s.ID] = len(idx.order)
		idx.order = append(idx.order, s)
	}
	return idx
}
