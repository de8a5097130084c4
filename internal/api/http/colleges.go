package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/career-compass/careercompass/internal/college"
)

// ListCollegesHandler supports the catalog filters: location, minFees,
// maxFees, ranking (ceiling), course (substring), limit.
func ListCollegesHandler(store college.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := college.Filter{
			Location:   strings.ToUpper(strings.TrimSpace(q.Get("location"))),
			MinFees:    parseIntDefault(q.Get("minFees"), 0),
			MaxFees:    parseIntDefault(q.Get("maxFees"), 0),
			MaxRanking: parseIntDefault(q.Get("ranking"), 0),
			Course:     strings.TrimSpace(q.Get("course")),
			Limit:      parseIntDefault(q.Get("limit"), 50),
		}
		list, err := store.List(r.Context(), f)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func GetCollegeHandler(store college.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := store.Get(r.Context(), chi.URLParam(r, "collegeID"))
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func CreateCollegeHandler(store college.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c college.College
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := validateCollege(c); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := store.Create(r.Context(), c)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "College created successfully",
			"id":      created.ID,
		})
	}
}

func UpdateCollegeHandler(store college.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c college.College
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		c.ID = chi.URLParam(r, "collegeID")
		if err := validateCollege(c); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Update(r.Context(), c); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "College updated successfully"})
	}
}

func DeleteCollegeHandler(store college.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "collegeID")); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "College deleted successfully"})
	}
}

func validateCollege(c college.College) error {
	if strings.TrimSpace(c.Name) == "" {
		return errMissing("name")
	}
	if c.Location != "INDIA" && c.Location != "ABROAD" {
		return errMissing("location (INDIA|ABROAD)")
	}
	if c.Fees < 0 {
		return errMissing("non-negative fees")
	}
	return nil
}

type errMissing string

func (e errMissing) Error() string { return "required: " + string(e) }
