package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	models "github.com/rogerio-castellano/uniform-analytics/internal/models"
	repo "github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

var orderCSVColumns = []string{"order_id", "school_id", "created_at", "total_amount", "item", "size", "quantity"}

// csvOrder is an order assembled from consecutive CSV rows sharing an order_id.
type csvOrder struct {
	row   int
	order models.Order
}

// parseOrdersCSV reads one row per order line. Rows of the same order must be adjacent;
// the order level columns are taken from the first of them.
func parseOrdersCSV(r io.Reader) ([]csvOrder, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}
	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range orderCSVColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var out []csvOrder
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		rowNum++

		field := func(col string) string { return strings.TrimSpace(record[index[col]]) }
		id := field("order_id")

		if n := len(out); n == 0 || id == "" || out[n-1].order.ID != id {
			out = append(out, csvOrder{row: rowNum, order: models.Order{
				ID:          id,
				SchoolID:    field("school_id"),
				CreatedAt:   models.ParseTimestamp(field("created_at")),
				TotalAmount: parseFloat(field("total_amount")),
			}})
		}

		if name := field("item"); name != "" {
			item := models.OrderItem{Name: name, Size: field("size")}
			if q := field("quantity"); q != "" {
				n, err := strconv.Atoi(q)
				if err != nil {
					return nil, fmt.Errorf("row %d: invalid quantity %q", rowNum, q)
				}
				item.Quantity = &n
			}
			last := &out[len(out)-1].order
			last.Items = append(last.Items, item)
		}
	}
	return out, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

type ImportOrdersResult struct {
	ImportedOrdersCount int               `json:"imported_orders_count"`
	Errors              []ValidationError `json:"errors,omitempty"`
}

// ImportOrdersHandler godoc
// @Summary Import orders via CSV
// @Description One row per order line with columns order_id, school_id, created_at, total_amount, item, size, quantity
// @Tags orders
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportOrdersResult
// @Failure 400 {string} string "Invalid file"
// @Router /orders/import [post]
func ImportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseOrdersCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ValidationError

	for _, rec := range records {
		if errs := validateStruct(rec.order); len(errs) > 0 {
			for _, e := range errs {
				errorsList = append(errorsList, ValidationError{Field: e.Field, Description: fmt.Sprintf("row %d: %s", rec.row, e.Description)})
			}
			continue
		}

		if _, err := orderRepo.Create(r.Context(), rec.order); err != nil {
			desc := fmt.Sprintf("row %d: %v", rec.row, err)
			if errors.Is(err, repo.ErrDuplicatedValueUnique) {
				desc = fmt.Sprintf("row %d: order '%s' already exists", rec.row, rec.order.ID)
			}
			errorsList = append(errorsList, ValidationError{Description: desc})
			continue
		}
		imported++
	}

	if imported > 0 {
		refreshAfterWrite(r)
	}
	respond(w, http.StatusOK, ImportOrdersResult{ImportedOrdersCount: imported, Errors: errorsList})
}
