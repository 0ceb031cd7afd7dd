package analytics_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newAggregator() *analytics.Aggregator {
	return analytics.NewAggregator(analytics.WithClock(func() time.Time { return fixedNow }))
}

func qty(n int) *int { return &n }

func on(y int, m time.Month, d int) models.Timestamp {
	return models.NativeTime(time.Date(y, m, d, 10, 0, 0, 0, time.UTC))
}

func sizedOrder(at models.Timestamp, size string, quantity int) models.Order {
	return models.Order{
		CreatedAt: at,
		Items:     []models.OrderItem{{Name: "Polo", Size: size, Quantity: qty(quantity)}},
	}
}

func TestRecompute_EmptyInputs(t *testing.T) {
	r := newAggregator().Recompute(nil, nil, nil)

	require.Len(t, r.MonthlyRevenue, 12)
	for _, m := range r.MonthlyRevenue {
		assert.Zero(t, m.Revenue)
	}
	assert.Equal(t, []int{2024}, r.Years)
	assert.Empty(t, r.SizeDemand[2024])
	assert.Empty(t, r.TopProducts)
	assert.Empty(t, r.InventoryHealth)
	assert.Empty(t, r.OrderDistribution)
	assert.Equal(t, analytics.Summary{}, r.Summary)
}

func TestRecompute_MonthlyRevenueCurrentYearOnly(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: on(2024, time.March, 5), TotalAmount: 100},
		{CreatedAt: on(2024, time.March, 20), TotalAmount: 50},
		{CreatedAt: on(2023, time.January, 1), TotalAmount: 999},
	}

	r := newAggregator().Recompute(orders, nil, nil)

	require.Len(t, r.MonthlyRevenue, 12)
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, m := range r.MonthlyRevenue {
		assert.Equal(t, months[i], m.Month)
		if m.Month == "Mar" {
			assert.Equal(t, 150.0, m.Revenue)
		} else {
			assert.Zero(t, m.Revenue, "month %s", m.Month)
		}
	}
	assert.Equal(t, []int{2024, 2023}, r.Years)
	assert.Equal(t, 1149.0, r.Summary.TotalRevenue)
	assert.Equal(t, 150.0, r.Summary.CurrentYearRevenue)
}

func TestRecompute_MonthlyRevenueSumsExactly(t *testing.T) {
	var orders []models.Order
	for i := range 10 {
		orders = append(orders, models.Order{CreatedAt: on(2024, time.Month(i+1), 1), TotalAmount: 0.1})
	}

	r := newAggregator().Recompute(orders, nil, nil)

	got := 0.0
	for _, m := range r.MonthlyRevenue {
		got += m.Revenue
	}
	assert.InDelta(t, 1.0, got, 1e-9)
	assert.Equal(t, 1.0, r.Summary.CurrentYearRevenue)
}

func TestRecompute_EpochSecondsTimestamps(t *testing.T) {
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC).Unix()
	orders := []models.Order{
		{CreatedAt: models.EpochSeconds(feb), TotalAmount: 20, Items: []models.OrderItem{{Name: "Skirt", Size: "S"}}},
	}

	r := newAggregator().Recompute(orders, nil, nil)

	assert.Equal(t, 20.0, r.MonthlyRevenue[1].Revenue)
	assert.Equal(t, []int{2024}, r.Years)
	assert.Equal(t, []analytics.SizeDemand{{Size: "S", TotalSales: 1, ColorBand: analytics.BandLow}}, r.SizeDemand[2024])
}

func TestRecompute_UndatedOrdersFallIntoCurrentYear(t *testing.T) {
	orders := []models.Order{
		sizedOrder(models.Timestamp{}, "M", 3),
		sizedOrder(models.Timestamp{Kind: models.TimestampInvalid}, "M", 2),
		sizedOrder(on(2022, time.May, 1), "L", 1),
	}
	orders[0].TotalAmount = 40

	r := newAggregator().Recompute(orders, nil, nil)

	assert.Equal(t, []int{2024, 2022}, r.Years)
	assert.Equal(t, []analytics.SizeDemand{{Size: "M", TotalSales: 5, ColorBand: analytics.BandLow}}, r.SizeDemand[2024])
	for _, m := range r.MonthlyRevenue {
		assert.Zero(t, m.Revenue)
	}
	assert.Equal(t, 2, r.Summary.UndatedOrders)
	assert.Equal(t, 40.0, r.Summary.TotalRevenue)
}

func TestRecompute_SizeDemandCanonicalOrder(t *testing.T) {
	at := on(2024, time.April, 2)
	orders := []models.Order{
		sizedOrder(at, "M", 80),
		sizedOrder(at, "S", 200),
		sizedOrder(at, "XXL", 10),
		sizedOrder(at, "Q", 5),
	}

	r := newAggregator().Recompute(orders, nil, nil)

	want := []analytics.SizeDemand{
		{Size: "S", TotalSales: 200, ColorBand: analytics.BandHigh},
		{Size: "M", TotalSales: 80, ColorBand: analytics.BandMedium},
		{Size: "XXL", TotalSales: 10, ColorBand: analytics.BandLow},
		{Size: "Q", TotalSales: 5, ColorBand: analytics.BandLow},
	}
	assert.Equal(t, want, r.SizeDemand[2024])
}

func TestRecompute_SizeDemandPerYear(t *testing.T) {
	orders := []models.Order{
		{
			CreatedAt: on(2024, time.January, 3),
			Items: []models.OrderItem{
				{Name: "Polo", Size: " m ", Quantity: qty(2)},
				{Name: "Polo", Size: "M"},
				{Name: "Cap", Size: ""},
				{Name: "Polo", Size: "ZZ", Quantity: qty(1)},
				{Name: "Polo", Size: "AA", Quantity: qty(1)},
				{Name: "Polo", Size: "XS", Quantity: qty(4)},
			},
		},
		sizedOrder(on(2023, time.December, 31), "M", 7),
	}

	r := newAggregator().Recompute(orders, nil, nil)

	assert.Equal(t, []analytics.SizeDemand{
		{Size: "XS", TotalSales: 4, ColorBand: analytics.BandLow},
		{Size: "m", TotalSales: 2, ColorBand: analytics.BandLow},
		{Size: "M", TotalSales: 1, ColorBand: analytics.BandLow},
		{Size: "ZZ", TotalSales: 1, ColorBand: analytics.BandLow},
		{Size: "AA", TotalSales: 1, ColorBand: analytics.BandLow},
	}, r.SizeDemand[2024])
	assert.Equal(t, []analytics.SizeDemand{{Size: "M", TotalSales: 7, ColorBand: analytics.BandLow}}, r.SizeDemand[2023])
}

func TestRecompute_SizeDemandKeepsSizeAsOrdered(t *testing.T) {
	at := on(2024, time.April, 2)
	orders := []models.Order{
		{CreatedAt: at, Items: []models.OrderItem{
			{Name: "Polo", Size: "q"},
			{Name: "Polo", Size: "m", Quantity: qty(3)},
			{Name: "Polo", Size: "s", Quantity: qty(2)},
			{Name: "Polo", Size: "S", Quantity: qty(1)},
		}},
	}

	r := newAggregator().Recompute(orders, nil, nil)

	assert.Equal(t, []analytics.SizeDemand{
		{Size: "s", TotalSales: 2, ColorBand: analytics.BandLow},
		{Size: "S", TotalSales: 1, ColorBand: analytics.BandLow},
		{Size: "m", TotalSales: 3, ColorBand: analytics.BandLow},
		{Size: "q", TotalSales: 1, ColorBand: analytics.BandLow},
	}, r.SizeDemand[2024])

	perSize := map[string]int{}
	for _, item := range orders[0].Items {
		perSize[item.Size] += item.Units()
	}
	for _, row := range r.SizeDemand[2024] {
		assert.Equal(t, perSize[row.Size], row.TotalSales, row.Size)
	}
}

func TestRecompute_OutOfRangeEpochFallsIntoCurrentYear(t *testing.T) {
	var orders []models.Order
	for _, raw := range []string{
		`{"school_id": "a", "total_amount": 5, "created_at": {"seconds": 9223372036854775807}, "items": [{"name": "Polo", "size": "M"}]}`,
		`{"school_id": "a", "total_amount": 5, "created_at": {"seconds": 1e300}, "items": [{"name": "Polo", "size": "M"}]}`,
	} {
		var o models.Order
		require.NoError(t, json.Unmarshal([]byte(raw), &o))
		orders = append(orders, o)
	}
	orders = append(orders, models.Order{CreatedAt: models.EpochSeconds(math.MaxInt64), Items: []models.OrderItem{{Name: "Polo", Size: "M"}}})

	r := newAggregator().Recompute(orders, nil, nil)

	assert.Equal(t, []int{2024}, r.Years)
	assert.Equal(t, []analytics.SizeDemand{{Size: "M", TotalSales: 3, ColorBand: analytics.BandLow}}, r.SizeDemand[2024])
	assert.Equal(t, 3, r.Summary.UndatedOrders)
	assert.Zero(t, r.Summary.CurrentYearRevenue)
	for _, m := range r.MonthlyRevenue {
		assert.Zero(t, m.Revenue)
	}
}

func TestRecompute_TopProducts(t *testing.T) {
	at := on(2024, time.May, 1)
	items := []models.OrderItem{
		{Name: "Polo", Quantity: qty(3)},
		{Name: "Skirt", Quantity: qty(10)},
		{Name: "Tie", Quantity: qty(3)},
		{Name: "", Quantity: qty(4)},
		{Name: "Blazer", Quantity: qty(1)},
		{Name: "Socks", Quantity: qty(3)},
		{Name: "Polo"},
	}
	orders := []models.Order{{CreatedAt: at, Items: items}}

	r := newAggregator().Recompute(orders, nil, nil)

	want := []analytics.ProductSales{
		{Name: "Skirt", UnitsSold: 10, Color: analytics.Palette[0]},
		{Name: "Polo", UnitsSold: 4, Color: analytics.Palette[1]},
		{Name: analytics.UnknownProduct, UnitsSold: 4, Color: analytics.Palette[2]},
		{Name: "Tie", UnitsSold: 3, Color: analytics.Palette[0]},
		{Name: "Socks", UnitsSold: 3, Color: analytics.Palette[1]},
	}
	assert.Equal(t, want, r.TopProducts)
}

func TestRecompute_InventoryHealthBands(t *testing.T) {
	schools := []models.School{{ID: "s1", Name: "Hillside"}}
	batches := []models.Batch{{
		SchoolID: "s1",
		Items: []models.BatchItem{{
			Name:  "Polo",
			Sizes: []models.SizeStock{{Quantity: 0}, {Quantity: 5}, {Quantity: 20}},
		}},
	}}

	r := newAggregator().Recompute(nil, batches, schools)

	require.Len(t, r.InventoryHealth, 1)
	assert.Equal(t, analytics.SchoolInventoryHealth{
		SchoolID: "s1", SchoolName: "Hillside", InStock: 1, LowStock: 1, OutOfStock: 1,
	}, r.InventoryHealth[0])
	assert.Equal(t, 25, r.Summary.TotalStockUnits)
}

func TestRecompute_InventoryHealthTopFive(t *testing.T) {
	var schools []models.School
	var batches []models.Batch
	for i := range 7 {
		id := fmt.Sprintf("s%d", i)
		schools = append(schools, models.School{ID: id, Name: "School " + id})
		if i == 6 {
			continue
		}
		sizes := make([]models.SizeStock, i+1)
		batches = append(batches, models.Batch{SchoolID: id, Items: []models.BatchItem{{Sizes: sizes}}})
	}
	batches = append(batches, models.Batch{SchoolID: "ghost", Items: []models.BatchItem{{Sizes: make([]models.SizeStock, 50)}}})

	r := newAggregator().Recompute(nil, batches, schools)

	require.Len(t, r.InventoryHealth, analytics.TopN)
	wantIDs := []string{"s5", "s4", "s3", "s2", "s1"}
	for i, h := range r.InventoryHealth {
		assert.Equal(t, wantIDs[i], h.SchoolID)
		assert.Equal(t, h.OutOfStock, h.Total())
	}
}

func TestRecompute_OrderDistribution(t *testing.T) {
	schools := []models.School{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
		{ID: "c", Name: "Gamma"},
		{ID: "a", Name: "Alpha duplicate"},
	}
	orders := []models.Order{
		{SchoolID: "b"}, {SchoolID: "a"}, {SchoolID: "b"}, {SchoolID: "zzz"}, {SchoolID: "a"},
	}

	r := newAggregator().Recompute(orders, nil, schools)

	assert.Equal(t, []analytics.SchoolOrderCount{
		{SchoolID: "a", SchoolName: "Alpha", OrderCount: 2, Color: analytics.Palette[0]},
		{SchoolID: "b", SchoolName: "Beta", OrderCount: 2, Color: analytics.Palette[1]},
	}, r.OrderDistribution)
	assert.Equal(t, 3, r.Summary.SchoolCount)
}

func TestRecompute_OrderDistributionTopFive(t *testing.T) {
	var schools []models.School
	var orders []models.Order
	for i := range 7 {
		id := fmt.Sprintf("s%d", i)
		schools = append(schools, models.School{ID: id, Name: "School " + id})
		for range i {
			orders = append(orders, models.Order{SchoolID: id})
		}
	}
	for range 20 {
		orders = append(orders, models.Order{SchoolID: "ghost"})
	}

	r := newAggregator().Recompute(orders, nil, schools)

	require.Len(t, r.OrderDistribution, analytics.TopN)
	wantIDs := []string{"s6", "s5", "s4", "s3", "s2"}
	for i, d := range r.OrderDistribution {
		assert.Equal(t, wantIDs[i], d.SchoolID)
		assert.Equal(t, 6-i, d.OrderCount)
		assert.Equal(t, analytics.Palette[i%len(analytics.Palette)], d.Color)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	schools := []models.School{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	orders := []models.Order{
		{SchoolID: "a", CreatedAt: on(2024, time.February, 1), TotalAmount: 12.5, Items: []models.OrderItem{{Name: "Polo", Size: "L", Quantity: qty(2)}}},
		{SchoolID: "b", CreatedAt: models.EpochSeconds(1700000000), TotalAmount: 7, Items: []models.OrderItem{{Name: "Tie", Size: "S"}}},
	}
	batches := []models.Batch{{SchoolID: "b", Items: []models.BatchItem{{Sizes: []models.SizeStock{{Size: "S", Quantity: 12}}}}}}

	agg := newAggregator()
	first := agg.Recompute(orders, batches, schools)
	second := agg.Recompute(orders, batches, schools)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("recompute not idempotent (-first +second):\n%s", diff)
	}
}

func TestRecompute_DoesNotMutateInputs(t *testing.T) {
	orders := []models.Order{
		sizedOrder(on(2024, time.May, 1), "XL", 1),
		sizedOrder(on(2024, time.May, 2), "XS", 1),
	}
	before := fmt.Sprint(orders[0].Items[0].Size, orders[1].Items[0].Size)

	newAggregator().Recompute(orders, nil, nil)

	assert.Equal(t, before, fmt.Sprint(orders[0].Items[0].Size, orders[1].Items[0].Size))
}

func TestRecompute_LocationDecidesMonth(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	agg := analytics.NewAggregator(
		analytics.WithClock(func() time.Time { return fixedNow }),
		analytics.WithLocation(loc),
	)
	orders := []models.Order{{CreatedAt: models.NativeTime(time.Date(2024, time.January, 31, 22, 0, 0, 0, time.UTC)), TotalAmount: 9}}

	r := agg.Recompute(orders, nil, nil)

	assert.Zero(t, r.MonthlyRevenue[0].Revenue)
	assert.Equal(t, 9.0, r.MonthlyRevenue[1].Revenue)
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		quantity int
		want     analytics.StockBand
	}{
		{-3, analytics.OutOfStock},
		{0, analytics.OutOfStock},
		{1, analytics.LowStock},
		{9, analytics.LowStock},
		{10, analytics.InStock},
		{500, analytics.InStock},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analytics.ClassifyStock(tt.quantity), "quantity %d", tt.quantity)
	}
}
