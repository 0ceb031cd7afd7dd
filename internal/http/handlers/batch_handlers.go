package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/uniform-analytics/internal/models"
	repo "github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

// CreateBatchHandler godoc
// @Summary Create a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param batch body models.Batch true "Batch to add"
// @Success 201 {object} models.Batch
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Duplicated id"
// @Router /batches [post]
func CreateBatchHandler(w http.ResponseWriter, r *http.Request) {
	var batch models.Batch
	if err := readJSON(w, r, &batch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateStruct(batch); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := batchRepo.Create(r.Context(), batch)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create batch: id duplicated", http.StatusConflict)
			return
		}
		appLog.Error("create batch failed", "error", err)
		http.Error(w, "could not create batch", http.StatusInternalServerError)
		return
	}

	refreshAfterWrite(r)
	respond(w, http.StatusCreated, created)
}

// GetBatchesHandler godoc
// @Summary List all batches
// @Tags batches
// @Produce json
// @Success 200 {object} BatchesSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /batches [get]
func GetBatchesHandler(w http.ResponseWriter, r *http.Request) {
	batches, err := batchRepo.List(r.Context())
	if err != nil {
		appLog.Error("list batches failed", "error", err)
		http.Error(w, "could not fetch batches", http.StatusInternalServerError)
		return
	}
	if batches == nil {
		batches = []models.Batch{}
	}
	respond(w, http.StatusOK, BatchesSearchResult{Data: batches, Meta: Meta{TotalCount: len(batches)}})
}

// GetBatchByIDHandler godoc
// @Summary Get a batch by id
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} models.Batch
// @Failure 404 {string} string "Batch not found"
// @Router /batches/{id} [get]
func GetBatchByIDHandler(w http.ResponseWriter, r *http.Request) {
	batch, err := batchRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		appLog.Error("get batch failed", "error", err)
		http.Error(w, "could not fetch batch", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, batch)
}

// DeleteBatchHandler godoc
// @Summary Delete a batch
// @Tags batches
// @Param id path string true "Batch ID"
// @Success 204
// @Failure 404 {string} string "Batch not found"
// @Router /batches/{id} [delete]
func DeleteBatchHandler(w http.ResponseWriter, r *http.Request) {
	if err := batchRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		appLog.Error("delete batch failed", "error", err)
		http.Error(w, "could not delete batch", http.StatusInternalServerError)
		return
	}

	refreshAfterWrite(r)
	w.WriteHeader(http.StatusNoContent)
}
