package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/career-compass/careercompass/internal/aptitude"
)

// GetTestHandler serves the student-safe view of a test: answer keys are
// stripped before the payload leaves the store.
func GetTestHandler(store aptitude.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "testID")
		t, err := store.GetTest(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// UploadTestHandler creates or replaces a test definition (admin only).
func UploadTestHandler(store aptitude.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t aptitude.Test
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if t.ID == "" || t.Title == "" {
			http.Error(w, "id and title required", http.StatusBadRequest)
			return
		}
		if t.DurationMin <= 0 {
			http.Error(w, "duration must be positive", http.StatusBadRequest)
			return
		}
		for i, q := range t.Questions {
			if len(q.Options) < 2 {
				http.Error(w, "question needs at least 2 options", http.StatusBadRequest)
				return
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				http.Error(w, "correctAnswer out of range", http.StatusBadRequest)
				return
			}
			if !q.Section.Valid() {
				http.Error(w, "unknown section on question "+strconv.Itoa(i), http.StatusBadRequest)
				return
			}
		}
		if err := store.PutTest(r.Context(), t); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": t.ID})
	}
}
