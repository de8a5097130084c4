package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/career-compass/careercompass/internal/aptitude"
	"github.com/career-compass/careercompass/internal/college"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors onto HTTP statuses; everything unexpected
// is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, aptitude.ErrNotFound), errors.Is(err, college.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, aptitude.ErrEmptyTest),
		errors.Is(err, aptitude.ErrInvalidIndex):
		return http.StatusBadRequest
	case errors.Is(err, aptitude.ErrAlreadySubmitted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
