package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	"github.com/rogerio-castellano/uniform-analytics/internal/db"
	handler "github.com/rogerio-castellano/uniform-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

var (
	database *sql.DB
	service  *dashboard.Service
)

func setupTestRepos(dsn string) error {
	var err error
	database, err = db.Connect(dsn)
	if err != nil {
		return err
	}

	orders := repo.NewPostgresOrderRepository(database)
	batches := repo.NewPostgresBatchRepository(database)
	schools := repo.NewPostgresSchoolRepository(database)
	handler.SetOrderRepo(orders)
	handler.SetBatchRepo(batches)
	handler.SetSchoolRepo(schools)

	clock := func() time.Time { return fixedNow }
	service = dashboard.NewService(orders, batches, schools,
		analytics.NewAggregator(analytics.WithClock(clock)),
		dashboard.WithClock(clock),
	)
	handler.SetDashboardService(service)
	return nil
}

func clearAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := database.ExecContext(ctx, "TRUNCATE orders, batches, schools"); err != nil {
		panic(err)
	}
	if _, err := service.Refresh(ctx); err != nil {
		panic(err)
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
