package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UpdateProfileHandler upserts the student's free-form profile document
// and marks the profile complete.
func UpdateProfileHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		var profile map[string]any
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		buf, err := json.Marshal(profile)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := db.ExecContext(r.Context(),
			`UPDATE users SET profile_json=$1, profile_complete=$2, updated_at=$3 WHERE id=$4`,
			string(buf), true, time.Now().Unix(), uid)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
	}
}

type application struct {
	ID        string         `json:"id"`
	StudentID string         `json:"studentId"`
	CollegeID string         `json:"collegeId"`
	Course    string         `json:"course"`
	Status    string         `json:"status"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt int64          `json:"createdAt"`
	UpdatedAt int64          `json:"updatedAt"`
}

// CreateApplicationHandler files a college application for a student.
// Extra fields beyond collegeId/course ride along in the data document.
func CreateApplicationHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		collegeID, _ := req["collegeId"].(string)
		course, _ := req["course"].(string)
		if strings.TrimSpace(collegeID) == "" || strings.TrimSpace(course) == "" {
			http.Error(w, "collegeId and course required", http.StatusBadRequest)
			return
		}
		delete(req, "collegeId")
		delete(req, "course")
		data, err := json.Marshal(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		id := uuid.NewString()
		now := time.Now().Unix()
		_, err = db.ExecContext(r.Context(), `INSERT INTO applications
			(id, student_id, college_id, course, status, data_json, created_at, updated_at)
			VALUES ($1,$2,$3,$4,'pending',$5,$6,$6)`,
			id, uid, collegeID, course, string(data), now)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{
			"message":       "Application submitted successfully",
			"applicationId": id,
		})
	}
}

// ListApplicationsHandler returns a student's applications, newest last.
func ListApplicationsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		rows, err := db.QueryContext(r.Context(), `SELECT id, student_id, college_id, course, status, data_json, created_at, updated_at
			FROM applications WHERE student_id=$1 ORDER BY created_at`, uid)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		out := []application{}
		for rows.Next() {
			var a application
			var dj string
			if err := rows.Scan(&a.ID, &a.StudentID, &a.CollegeID, &a.Course, &a.Status, &dj, &a.CreatedAt, &a.UpdatedAt); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if err := json.Unmarshal([]byte(dj), &a.Data); err != nil {
				a.Data = nil
			}
			out = append(out, a)
		}
		if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
