package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/uniform-analytics/internal/models"
	repo "github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

// CreateSchoolHandler godoc
// @Summary Create a school
// @Tags schools
// @Accept json
// @Produce json
// @Param school body models.School true "School to add"
// @Success 201 {object} models.School
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Duplicated id"
// @Router /schools [post]
func CreateSchoolHandler(w http.ResponseWriter, r *http.Request) {
	var school models.School
	if err := readJSON(w, r, &school); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateStruct(school); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := schoolRepo.Create(r.Context(), school)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create school: id duplicated", http.StatusConflict)
			return
		}
		appLog.Error("create school failed", "error", err)
		http.Error(w, "could not create school", http.StatusInternalServerError)
		return
	}

	refreshAfterWrite(r)
	respond(w, http.StatusCreated, created)
}

// GetSchoolsHandler godoc
// @Summary List all schools
// @Tags schools
// @Produce json
// @Success 200 {object} SchoolsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /schools [get]
func GetSchoolsHandler(w http.ResponseWriter, r *http.Request) {
	schools, err := schoolRepo.List(r.Context())
	if err != nil {
		appLog.Error("list schools failed", "error", err)
		http.Error(w, "could not fetch schools", http.StatusInternalServerError)
		return
	}
	if schools == nil {
		schools = []models.School{}
	}
	respond(w, http.StatusOK, SchoolsSearchResult{Data: schools, Meta: Meta{TotalCount: len(schools)}})
}

// GetSchoolByIDHandler godoc
// @Summary Get a school by id
// @Tags schools
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} models.School
// @Failure 404 {string} string "School not found"
// @Router /schools/{id} [get]
func GetSchoolByIDHandler(w http.ResponseWriter, r *http.Request) {
	school, err := schoolRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrSchoolNotFound) {
			http.Error(w, "school not found", http.StatusNotFound)
			return
		}
		appLog.Error("get school failed", "error", err)
		http.Error(w, "could not fetch school", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, school)
}

// DeleteSchoolHandler godoc
// @Summary Delete a school
// @Tags schools
// @Param id path string true "School ID"
// @Success 204
// @Failure 404 {string} string "School not found"
// @Router /schools/{id} [delete]
func DeleteSchoolHandler(w http.ResponseWriter, r *http.Request) {
	if err := schoolRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrSchoolNotFound) {
			http.Error(w, "school not found", http.StatusNotFound)
			return
		}
		appLog.Error("delete school failed", "error", err)
		http.Error(w, "could not delete school", http.StatusInternalServerError)
		return
	}

	refreshAfterWrite(r)
	w.WriteHeader(http.StatusNoContent)
}
