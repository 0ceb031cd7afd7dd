package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	handler "github.com/rogerio-castellano/uniform-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
	"github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

var (
	orderRepo  *repo.InMemoryOrderRepository
	batchRepo  *repo.InMemoryBatchRepository
	schoolRepo *repo.InMemorySchoolRepository
	service    *dashboard.Service
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	batchRepo = repo.NewInMemoryBatchRepository()
	handler.SetBatchRepo(batchRepo)

	schoolRepo = repo.NewInMemorySchoolRepository()
	handler.SetSchoolRepo(schoolRepo)

	service = newService(orderRepo)
	handler.SetDashboardService(service)
}

func newService(orders repo.OrderRepository, opts ...dashboard.Option) *dashboard.Service {
	clock := func() time.Time { return fixedNow }
	agg := analytics.NewAggregator(analytics.WithClock(clock))
	opts = append([]dashboard.Option{dashboard.WithClock(clock)}, opts...)
	return dashboard.NewService(orders, batchRepo, schoolRepo, agg, opts...)
}

// useService swaps the dashboard service for one test.
func useService(s *dashboard.Service) func() {
	handler.SetDashboardService(s)
	return func() { handler.SetDashboardService(service) }
}

func clearAll() {
	orderRepo.Clear()
	batchRepo.Clear()
	schoolRepo.Clear()
	if _, err := service.Refresh(context.Background()); err != nil {
		panic(fmt.Sprintf("refresh after clear failed: %v", err))
	}
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodGet, path, nil)
}

func createOrder(r http.Handler, o models.Order) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/orders", o)
}

func createBatch(r http.Handler, b models.Batch) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/batches", b)
}

func createSchool(r http.Handler, s models.School) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/schools", s)
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func date(year int, month time.Month, day int) models.Timestamp {
	return models.NativeTime(time.Date(year, month, day, 10, 0, 0, 0, time.UTC))
}

func qty(n int) *int {
	return &n
}
