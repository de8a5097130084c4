package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/career-compass/careercompass/internal/aptitude"
	syncx "github.com/career-compass/careercompass/internal/sync"
)

// SubmitResultHandler grades a submitted answer set against the keyed test
// record and persists the result. Grading always happens server-side; the
// client only ever saw the sanitized test.
func SubmitResultHandler(store aptitude.Store, events *syncx.EventRepo) http.HandlerFunc {
	type response struct {
		Message        string                 `json:"message"`
		ResultID       string                 `json:"resultId"`
		Score          int                    `json:"score"`
		TotalQuestions int                    `json:"totalQuestions"`
		Percentage     float64                `json:"percentage"`
		SectionScores  aptitude.SectionScores `json:"sectionScores"`
		Outcome        aptitude.Outcome       `json:"outcome"`
		CompletedAt    string                 `json:"completedAt"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		var req struct {
			TestID  string             `json:"testId"`
			Answers aptitude.AnswerSet `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.TestID == "" {
			http.Error(w, "testId required", http.StatusBadRequest)
			return
		}

		t, err := store.GetTestWithKeys(r.Context(), req.TestID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		res, err := aptitude.Score(t, req.Answers)
		if err != nil {
			// Unreachable when stored tests are validated on upload.
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.StudentID = uid

		saved, err := store.AppendResult(r.Context(), res)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if events != nil {
			data, _ := json.Marshal(saved)
			if err := events.Append(r.Context(), syncx.Event{
				Type:     syncx.TypeResultSubmitted,
				Key:      saved.ID,
				DataJSON: string(data),
			}); err != nil {
				log.Printf("event log append failed for result %s: %v", saved.ID, err)
			}
		}

		writeJSON(w, http.StatusCreated, response{
			Message:        "Test submitted successfully",
			ResultID:       saved.ID,
			Score:          saved.Score,
			TotalQuestions: saved.TotalQuestions,
			Percentage:     saved.Percentage,
			SectionScores:  saved.SectionScores,
			Outcome:        aptitude.Classify(saved.Percentage),
			CompletedAt:    saved.CompletedAt,
		})
	}
}

// ListResultsHandler returns all graded results for one student.
func ListResultsHandler(store aptitude.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		results, err := store.ResultsByStudent(r.Context(), uid)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}
