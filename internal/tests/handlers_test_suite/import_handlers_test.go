package handlers_test_suite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/uniform-analytics/internal/http"
	handler "github.com/rogerio-castellano/uniform-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

func importCSV(r http.Handler, csv string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csv, "orders.csv")
	req := httptest.NewRequest(http.MethodPost, "/orders/import", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportOrdersHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	csv := `order_id,school_id,created_at,total_amount,item,size,quantity
o1,s1,2024-03-05,100,Polo,M,2
o1,s1,2024-03-05,100,Skirt,S,
o2,s2,1709632800,40,Polo,L,1
o3,,2024-01-01,10,Polo,M,1
o4,s1,,-3,Polo,M,1
`
	w := importCSV(r, csv)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var resp handler.ImportOrdersResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedOrdersCount != 2 {
		t.Errorf("expected 2 imported orders, got %d", resp.ImportedOrdersCount)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %+v", resp.Errors)
	}
	if !strings.HasPrefix(resp.Errors[0].Description, "row 5:") || !strings.HasPrefix(resp.Errors[1].Description, "row 6:") {
		t.Errorf("unexpected error rows %+v", resp.Errors)
	}

	o1, err := orderRepo.GetByID(context.Background(), "o1")
	if err != nil {
		t.Fatalf("o1 not stored: %v", err)
	}
	if len(o1.Items) != 2 || o1.Items[1].Quantity != nil || o1.Items[0].Units() != 2 {
		t.Errorf("unexpected o1 items %+v", o1.Items)
	}

	o2, _ := orderRepo.GetByID(context.Background(), "o2")
	if o2.CreatedAt.Kind != models.TimestampEpochSeconds {
		t.Errorf("expected epoch timestamp, got %v", o2.CreatedAt.Kind)
	}

	snap, err := service.Current()
	if err != nil || snap.Summary.TotalOrders != 2 {
		t.Errorf("expected aggregate to include the import, got %+v (%v)", snap.Summary, err)
	}
}

func TestImportOrdersHandler_BadFile(t *testing.T) {
	r := api.NewRouter()

	if w := importCSV(r, "name,price\nPolo,3\n"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing columns, got %d", w.Code)
	}
	if w := importCSV(r, "order_id,school_id,created_at,total_amount,item,size,quantity\no1,s1,,1,Polo,M,many\n"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad quantity, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders/import", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a file, got %d", w.Code)
	}
}
