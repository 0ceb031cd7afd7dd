package handlers

import (
	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

type Meta struct {
	TotalCount int `json:"total_count"`
}

type OrdersSearchResult struct {
	Data []models.Order `json:"data"`
	Meta Meta           `json:"meta"`
}

type BatchesSearchResult struct {
	Data []models.Batch `json:"data"`
	Meta Meta           `json:"meta"`
}

type SchoolsSearchResult struct {
	Data []models.School `json:"data"`
	Meta Meta            `json:"meta"`
}

// AnalyticsResponse is the full aggregate plus the loading flag of the dashboard.
type AnalyticsResponse struct {
	dashboard.Snapshot
	Loading bool `json:"loading"`
}

type YearsResponse struct {
	CurrentYear int   `json:"current_year"`
	Years       []int `json:"years"`
}

type SizeDemandResponse struct {
	Year  int                    `json:"year"`
	Years []int                  `json:"years"`
	Data  []analytics.SizeDemand `json:"data"`
}

type RevenueResponse struct {
	Year int                        `json:"year"`
	Data []analytics.MonthlyRevenue `json:"data"`
}

type TopProductsResponse struct {
	Data []analytics.ProductSales `json:"data"`
}

type InventoryHealthResponse struct {
	Data []analytics.SchoolInventoryHealth `json:"data"`
}

type OrderDistributionResponse struct {
	Data []analytics.SchoolOrderCount `json:"data"`
}

type RefreshResponse struct {
	Generation uint64 `json:"generation"`
	ComputedAt string `json:"computed_at"`
}
