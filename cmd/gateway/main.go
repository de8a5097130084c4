package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/career-compass/careercompass/internal/api/http"
	"github.com/career-compass/careercompass/internal/aptitude"
	"github.com/career-compass/careercompass/internal/auth"
	authmw "github.com/career-compass/careercompass/internal/auth/middleware"
	"github.com/career-compass/careercompass/internal/college"
	"github.com/career-compass/careercompass/internal/config"
	"github.com/career-compass/careercompass/internal/db"
	"github.com/career-compass/careercompass/internal/rbac"
	syncx "github.com/career-compass/careercompass/internal/sync"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	testStore := aptitude.NewSQLStore(dbh)
	collegeStore := college.NewSQLStore(dbh)
	events := syncx.NewEventRepo(dbh)

	if err := auth.EnsureAdmin(dbh, cfg.AdminUser, cfg.AdminPassHash); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, testStore, collegeStore); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		if cfg.EnableLocalAuth {
			r.Post("/auth/register", auth.RegisterHandler(dbh))
			r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
		}
		if cfg.EnableGoogleAuth {
			r.Get("/auth/google/login", auth.GoogleLoginHandler(cfg))
			r.Get("/auth/google/callback", auth.GoogleCallbackHandler(authSvc, dbh, cfg))
		}

		// Protected API (JWT → subject+role in context → RBAC)
		r.Group(func(pr chi.Router) {
			pr.Use(authmw.JWTMiddleware(authSvc))
			pr.Use(authmw.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))

			// Aptitude tests
			pr.With(rbac.Require("test:view")).
				Get("/tests/{testID}", api.GetTestHandler(testStore))
			pr.With(rbac.Require("test:create")).
				Post("/tests", api.UploadTestHandler(testStore))

			// Student flow: a student acts only on their own records;
			// admins may read anyone's.
			pr.With(rbac.Require("result:submit"), rbac.RequireOwnerOr("result:view-all", ownsUID)).
				Post("/students/{uid}/test-results", api.SubmitResultHandler(testStore, events))
			pr.With(rbac.RequireOwnerOr("result:view-all", ownsUID)).
				Get("/students/{uid}/test-results", api.ListResultsHandler(testStore))
			pr.With(rbac.Require("profile:update"), rbac.RequireOwnerOr("users:manage", ownsUID)).
				Put("/students/{uid}/profile", api.UpdateProfileHandler(dbh))
			pr.With(rbac.Require("application:create"), rbac.RequireOwnerOr("application:view-all", ownsUID)).
				Post("/students/{uid}/applications", api.CreateApplicationHandler(dbh))
			pr.With(rbac.RequireOwnerOr("application:view-all", ownsUID)).
				Get("/students/{uid}/applications", api.ListApplicationsHandler(dbh))

			// College catalog
			pr.With(rbac.Require("college:view")).
				Get("/colleges", api.ListCollegesHandler(collegeStore))
			pr.With(rbac.Require("college:view")).
				Get("/colleges/{collegeID}", api.GetCollegeHandler(collegeStore))
			pr.With(rbac.Require("college:create")).
				Post("/colleges", api.CreateCollegeHandler(collegeStore))
			pr.With(rbac.Require("college:update")).
				Put("/colleges/{collegeID}", api.UpdateCollegeHandler(collegeStore))
			pr.With(rbac.Require("college:delete")).
				Delete("/colleges/{collegeID}", api.DeleteCollegeHandler(collegeStore))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

// ownsUID reports whether the authenticated subject is the {uid} the route
// operates on.
func ownsUID(r *http.Request) bool {
	return chi.URLParam(r, "uid") == authmw.SubjectFromContext(r.Context())
}
