package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authmw "github.com/career-compass/careercompass/internal/auth/middleware"
)

// POST /api/auth/register  { "email": "...", "password": "...", "fullName": "...", "phone": "..." }
func RegisterHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"fullName"`
			Phone    string `json:"phone"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if !strings.Contains(req.Email, "@") {
			http.Error(w, "valid email required", http.StatusBadRequest)
			return
		}
		if len(req.Password) < 6 {
			http.Error(w, "password must be at least 6 characters", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.FullName) == "" {
			http.Error(w, "fullName required", http.StatusBadRequest)
			return
		}

		var exists int
		err := db.QueryRowContext(r.Context(), `SELECT 1 FROM users WHERE username=$1`, req.Email).Scan(&exists)
		if err == nil {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			http.Error(w, "hash password", http.StatusInternalServerError)
			return
		}
		id := uuid.NewString()
		_, err = db.ExecContext(r.Context(), `INSERT INTO users
			(id, username, password_hash, role, full_name, phone, created_at, updated_at)
			VALUES ($1,$2,$3,'student',$4,$5,$6,$6)`,
			id, req.Email, string(hash), req.FullName, req.Phone, time.Now().Unix())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "User registered successfully",
			"userId":  id,
		})
	}
}

// POST /api/auth/login  { "email": "...", "password": "..." }
func LoginHandler(a *authmw.AuthService, db *sql.DB) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"userId"`
		Role        string `json:"role"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		var id, hash, role string
		err := db.QueryRowContext(r.Context(),
			`SELECT id, password_hash, role FROM users WHERE username=$1`, req.Email).
			Scan(&id, &hash, &role)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(id, role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, UserID: id, Role: role})
	}
}

// EnsureAdmin seeds the admin account from config so a fresh install has
// an operator login. Existing rows are left alone.
func EnsureAdmin(db *sql.DB, username, passHash string) error {
	var exists int
	err := db.QueryRow(`SELECT 1 FROM users WHERE username=$1`, username).Scan(&exists)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = db.Exec(`INSERT INTO users (id, username, password_hash, role, full_name, created_at, updated_at)
		VALUES ($1,$2,$3,'admin','System Admin',$4,$4)`,
		uuid.NewString(), username, passHash, time.Now().Unix())
	return err
}
