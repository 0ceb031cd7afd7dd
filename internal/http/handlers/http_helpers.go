package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// respond writes data and logs the rare case where the client could not be written to.
func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		appLog.Warn("response not written", "status", status, "error", err)
	}
}

// yearParam reads the optional year query parameter. Zero means none was given.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

// refreshAfterWrite recomputes the aggregate so the write shows up on the next read.
// A failed refresh does not fail the write; the refresh loop catches up. While another
// instance holds the refresh lock the write may stay invisible until its cached aggregate
// or the next scheduled refresh includes it.
func refreshAfterWrite(r *http.Request) {
	if dashboardSvc == nil {
		return
	}
	if _, err := dashboardSvc.Refresh(r.Context()); err != nil {
		appLog.Warn("refresh after write failed", "path", r.URL.Path, "error", err)
	}
}
