package handlers_test_suite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	api "github.com/rogerio-castellano/uniform-analytics/internal/http"
	handler "github.com/rogerio-castellano/uniform-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/uniform-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
	"github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

func seed(t *testing.T, r http.Handler) {
	t.Helper()
	for _, s := range []models.School{{ID: "s1", Name: "Hillside"}, {ID: "s2", Name: "Riverside"}} {
		require.Equal(t, http.StatusCreated, createSchool(r, s).Code)
	}
	orders := []models.Order{
		{SchoolID: "s1", CreatedAt: date(2024, time.March, 2), TotalAmount: 100, Items: []models.OrderItem{{Name: "Polo", Size: "M", Quantity: qty(2)}}},
		{SchoolID: "s1", CreatedAt: models.EpochSeconds(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC).Unix()), TotalAmount: 50, Items: []models.OrderItem{{Name: "Skirt", Size: "S"}}},
		{SchoolID: "s2", CreatedAt: date(2023, time.May, 1), TotalAmount: 70, Items: []models.OrderItem{{Name: "Polo", Size: "L", Quantity: qty(4)}}},
	}
	for _, o := range orders {
		require.Equal(t, http.StatusCreated, createOrder(r, o).Code)
	}
	batch := models.Batch{SchoolID: "s1", Items: []models.BatchItem{{Name: "Polo", Sizes: []models.SizeStock{
		{Size: "S", Quantity: 0}, {Size: "M", Quantity: 5}, {Size: "L", Quantity: 20},
	}}}}
	require.Equal(t, http.StatusCreated, createBatch(r, batch).Code)
}

func TestGetAnalyticsHandler_Empty(t *testing.T) {
	t.Cleanup(clearAll)
	clearAll()
	r := api.NewRouter()

	w := get(r, "/analytics")
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := decode[handler.AnalyticsResponse](w)
	require.NoError(t, err)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, []int{2024}, resp.Years)
	assert.Len(t, resp.MonthlyRevenue, 12)
	assert.Empty(t, resp.TopProducts)
	assert.False(t, resp.Loading)
}

func TestWritesRefreshAnalytics(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seed(t, r)

	revenue, err := decode[handler.RevenueResponse](get(r, "/analytics/revenue"))
	require.NoError(t, err)
	assert.Equal(t, 2024, revenue.Year)
	assert.Equal(t, "Mar", revenue.Data[2].Month)
	assert.Equal(t, 150.0, revenue.Data[2].Revenue)
	assert.Equal(t, 0.0, revenue.Data[4].Revenue, "2023 orders stay out of the current year")

	top, err := decode[handler.TopProductsResponse](get(r, "/analytics/top-products"))
	require.NoError(t, err)
	require.Len(t, top.Data, 2)
	assert.Equal(t, "Polo", top.Data[0].Name)
	assert.Equal(t, 6, top.Data[0].UnitsSold)
	assert.Equal(t, analytics.Palette[0], top.Data[0].Color)

	health, err := decode[handler.InventoryHealthResponse](get(r, "/analytics/schools/inventory"))
	require.NoError(t, err)
	require.Len(t, health.Data, 1)
	assert.Equal(t, analytics.SchoolInventoryHealth{SchoolID: "s1", SchoolName: "Hillside", InStock: 1, LowStock: 1, OutOfStock: 1}, health.Data[0])

	dist, err := decode[handler.OrderDistributionResponse](get(r, "/analytics/schools/orders"))
	require.NoError(t, err)
	require.Len(t, dist.Data, 2)
	assert.Equal(t, "Hillside", dist.Data[0].SchoolName)
	assert.Equal(t, 2, dist.Data[0].OrderCount)

	summary, err := decode[analytics.Summary](get(r, "/analytics/summary"))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 220.0, summary.TotalRevenue)
	assert.Equal(t, 150.0, summary.CurrentYearRevenue)
	assert.Equal(t, 2, summary.SchoolCount)
}

func TestGetSizeDemandHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seed(t, r)

	tests := []struct {
		name     string
		query    string
		wantYear int
		wantRows []analytics.SizeDemand
	}{
		{"default year", "", 2024, []analytics.SizeDemand{{Size: "S", TotalSales: 1, ColorBand: analytics.BandLow}, {Size: "M", TotalSales: 2, ColorBand: analytics.BandLow}}},
		{"explicit year", "?year=2023", 2023, []analytics.SizeDemand{{Size: "L", TotalSales: 4, ColorBand: analytics.BandLow}}},
		{"missing year falls back to latest", "?year=1990", 2024, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/analytics/size-demand"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)
			resp, err := decode[handler.SizeDemandResponse](w)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, resp.Year)
			assert.Equal(t, []int{2024, 2023}, resp.Years)
			if tt.wantRows != nil {
				assert.Equal(t, tt.wantRows, resp.Data)
			}
		})
	}

	if w := get(r, "/analytics/size-demand?year=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed year, got %d", w.Code)
	}
}

func TestGetYearsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seed(t, r)

	resp, err := decode[handler.YearsResponse](get(r, "/analytics/years"))
	require.NoError(t, err)
	assert.Equal(t, 2024, resp.CurrentYear)
	assert.Equal(t, []int{2024, 2023}, resp.Years)
}

func TestGetChartHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seed(t, r)

	view, err := decode[analytics.ChartView](get(r, "/analytics/chart?category=schools&chart=size-demand"))
	require.NoError(t, err)
	assert.Equal(t, analytics.CategorySchools, view.Selection.Category)
	assert.Equal(t, analytics.ChartInventoryHealth, view.Selection.Chart, "chart outside the category falls back to the first one")
	assert.Len(t, view.InventoryHealth, 1)
	assert.Empty(t, view.SizeDemand)

	view, err = decode[analytics.ChartView](get(r, "/analytics/chart?category=sales&chart=size-demand&year=2023"))
	require.NoError(t, err)
	assert.Equal(t, 2023, view.Selection.Year)
	require.Len(t, view.SizeDemand, 1)
	assert.Equal(t, "L", view.SizeDemand[0].Size)

	categories, err := decode[[]analytics.CategoryCharts](get(r, "/analytics/categories"))
	require.NoError(t, err)
	assert.Equal(t, analytics.Categories, categories)
}

func TestRefreshAnalyticsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	first, err := decode[handler.RefreshResponse](doJSON(r, http.MethodPost, "/analytics/refresh", nil))
	require.NoError(t, err)
	second, err := decode[handler.RefreshResponse](doJSON(r, http.MethodPost, "/analytics/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, first.Generation+1, second.Generation)
	assert.Equal(t, fixedNow.Format(time.RFC3339), second.ComputedAt)
}

type failingOrders struct {
	repo.OrderRepository
}

func (failingOrders) List(context.Context) ([]models.Order, error) {
	return nil, errors.New("connection refused")
}

func TestAnalyticsHandlers_StoresUnavailable(t *testing.T) {
	t.Cleanup(useService(newService(failingOrders{})))
	r := api.NewRouter()

	if w := get(r, "/analytics"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before any aggregate exists, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/analytics/refresh", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 on refresh, got %d", w.Code)
	}
}

type heldLock struct{}

func (heldLock) Obtain(context.Context, string, time.Duration, *redislock.Options) (*redislock.Lock, error) {
	return nil, redislock.ErrNotObtained
}

func TestRefreshAnalyticsHandler_LockHeld(t *testing.T) {
	t.Cleanup(useService(newService(orderRepo, dashboard.WithLocker(heldLock{}, time.Second))))
	r := api.NewRouter()

	if w := doJSON(r, http.MethodPost, "/analytics/refresh", nil); w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestExportAnalyticsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seed(t, r)

	w := get(r, "/analytics/export.xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Size Demand", "Monthly Revenue", "Top Products", "Inventory Health", "Order Distribution"}, f.GetSheetList())

	name, err := f.GetCellValue("Top Products", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Polo", name)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := api.NewRouter(api.WithRateLimiter(rate_limiter.New(0.001, 2)))

	for i := range 2 {
		if w := get(r, "/analytics/categories"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if w := get(r, "/analytics/categories"); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_IgnoresForwardedHeaders(t *testing.T) {
	r := api.NewRouter(api.WithRateLimiter(rate_limiter.New(0.001, 2)))

	codes := make([]int, 0, 3)
	for i := range 3 {
		req := httptest.NewRequest(http.MethodGet, "/analytics/categories", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
