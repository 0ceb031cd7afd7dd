package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/uniform-analytics/internal/models"
	repo "github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

// CreateOrderHandler godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order to add"
// @Success 201 {object} models.Order
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Duplicated id"
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := readJSON(w, r, &order); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateStruct(order); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := orderRepo.Create(r.Context(), order)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create order: id duplicated", http.StatusConflict)
			return
		}
		appLog.Error("create order failed", "error", err)
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	refreshAfterWrite(r)
	respond(w, http.StatusCreated, created)
}

// GetOrdersHandler godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {object} OrdersSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.List(r.Context())
	if err != nil {
		appLog.Error("list orders failed", "error", err)
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	respond(w, http.StatusOK, OrdersSearchResult{Data: orders, Meta: Meta{TotalCount: len(orders)}})
}

// GetOrderByIDHandler godoc
// @Summary Get an order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Order not found"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	order, err := orderRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		appLog.Error("get order failed", "error", err)
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, order)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {string} string "Order not found"
// @Router /orders/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	if err := orderRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		appLog.Error("delete order failed", "error", err)
		http.Error(w, "could not delete order", http.StatusInternalServerError)
		return
	}

	refreshAfterWrite(r)
	w.WriteHeader(http.StatusNoContent)
}
