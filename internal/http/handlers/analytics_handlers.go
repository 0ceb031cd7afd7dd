package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	"github.com/rogerio-castellano/uniform-analytics/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// currentSnapshot returns the published aggregate, computing the first one on demand.
func currentSnapshot(w http.ResponseWriter, r *http.Request) (dashboard.Snapshot, bool) {
	snap, err := dashboardSvc.Current()
	if err == nil {
		return snap, true
	}
	if !errors.Is(err, dashboard.ErrNotComputed) {
		http.Error(w, "could not load analytics", http.StatusInternalServerError)
		return snap, false
	}

	snap, err = dashboardSvc.Refresh(r.Context())
	if err != nil {
		appLog.Warn("first aggregate not available", "error", err)
		http.Error(w, "analytics not available yet", http.StatusServiceUnavailable)
		return snap, false
	}
	return snap, true
}

// GetAnalyticsHandler godoc
// @Summary Full dashboard aggregate
// @Description Returns every chart series, the summary cards and the loading flag
// @Tags analytics
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics [get]
func GetAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, AnalyticsResponse{Snapshot: snap, Loading: dashboardSvc.Loading()})
}

// GetYearsHandler godoc
// @Summary Years with size demand data
// @Tags analytics
// @Produce json
// @Success 200 {object} YearsResponse
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/years [get]
func GetYearsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, YearsResponse{CurrentYear: snap.Year, Years: snap.Years})
}

// GetSizeDemandHandler godoc
// @Summary Size demand for one year
// @Description Falls back to the most recent year when the requested one has no data
// @Tags analytics
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} SizeDemandResponse
// @Failure 400 {string} string "Invalid year"
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/size-demand [get]
func GetSizeDemandHandler(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	if year == 0 {
		year = snap.Year
	}
	year = analytics.ResolveYear(year, snap.Years)

	data := snap.SizeDemand[year]
	if data == nil {
		data = []analytics.SizeDemand{}
	}
	respond(w, http.StatusOK, SizeDemandResponse{Year: year, Years: snap.Years, Data: data})
}

// GetRevenueHandler godoc
// @Summary Monthly revenue of the current year
// @Tags analytics
// @Produce json
// @Success 200 {object} RevenueResponse
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/revenue [get]
func GetRevenueHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, RevenueResponse{Year: snap.Year, Data: snap.MonthlyRevenue})
}

// GetTopProductsHandler godoc
// @Summary Five best selling products
// @Tags analytics
// @Produce json
// @Success 200 {object} TopProductsResponse
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/top-products [get]
func GetTopProductsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, TopProductsResponse{Data: snap.TopProducts})
}

// GetInventoryHealthHandler godoc
// @Summary Stock health of the five schools with most stock entries
// @Tags analytics
// @Produce json
// @Success 200 {object} InventoryHealthResponse
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/schools/inventory [get]
func GetInventoryHealthHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, InventoryHealthResponse{Data: snap.InventoryHealth})
}

// GetOrderDistributionHandler godoc
// @Summary Five schools with the most orders
// @Tags analytics
// @Produce json
// @Success 200 {object} OrderDistributionResponse
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/schools/orders [get]
func GetOrderDistributionHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, OrderDistributionResponse{Data: snap.OrderDistribution})
}

// GetSummaryHandler godoc
// @Summary Summary cards
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, snap.Summary)
}

// GetCategoriesHandler godoc
// @Summary Chart categories in display order
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.CategoryCharts
// @Router /analytics/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, analytics.Categories)
}

// GetChartHandler godoc
// @Summary Series behind one selected chart
// @Description Unknown categories or charts fall back to the first valid choice
// @Tags analytics
// @Produce json
// @Param category query string false "sales or schools"
// @Param chart query string false "Chart within the category"
// @Param year query int false "Year for the size demand chart"
// @Success 200 {object} analytics.ChartView
// @Failure 400 {string} string "Invalid year"
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/chart [get]
func GetChartHandler(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}
	if year == 0 {
		year = snap.Year
	}

	q := r.URL.Query()
	sel := analytics.Selection{
		Category: analytics.Category(q.Get("category")),
		Chart:    analytics.Chart(q.Get("chart")),
		Year:     year,
	}
	respond(w, http.StatusOK, analytics.Select(snap.Result, sel))
}

// RefreshAnalyticsHandler godoc
// @Summary Recompute the aggregate now
// @Tags analytics
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 409 {string} string "Refresh already in progress"
// @Failure 503 {string} string "Stores unavailable"
// @Router /analytics/refresh [post]
func RefreshAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := dashboardSvc.Refresh(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrRefreshInProgress):
			http.Error(w, "refresh already in progress", http.StatusConflict)
		case errors.Is(err, dashboard.ErrStoresUnavailable):
			appLog.Error("refresh failed", "error", err)
			http.Error(w, "stores unavailable", http.StatusServiceUnavailable)
		default:
			appLog.Error("refresh failed", "error", err)
			http.Error(w, "could not refresh analytics", http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusOK, RefreshResponse{
		Generation: snap.Generation,
		ComputedAt: snap.ComputedAt.Format(time.RFC3339),
	})
}

// ExportAnalyticsHandler godoc
// @Summary Download the aggregate as an Excel workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 503 {string} string "Analytics not available"
// @Router /analytics/export.xlsx [get]
func ExportAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, snap); err != nil {
		appLog.Error("export failed", "error", err)
		http.Error(w, "could not build workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="analytics-%d.xlsx"`, snap.Generation))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		appLog.Warn("export not written", "error", err)
	}
}
