package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/career-compass/careercompass/internal/aptitude"
)

func testRouter(store aptitude.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/tests/{testID}", GetTestHandler(store))
	r.Post("/tests", UploadTestHandler(store))
	r.Post("/students/{uid}/results", SubmitResultHandler(store, nil))
	r.Get("/students/{uid}/results", ListResultsHandler(store))
	return r
}

func seededStore(t *testing.T) aptitude.Store {
	t.Helper()
	store := aptitude.NewInMemoryStore()
	err := store.PutTest(context.Background(), aptitude.Test{
		ID:          "t-1",
		Title:       "Sample",
		DurationMin: 30,
		Questions: []aptitude.Question{
			{Text: "v1", Options: []string{"a", "b"}, Correct: 0, Section: aptitude.SectionVerbal},
			{Text: "q1", Options: []string{"a", "b"}, Correct: 1, Section: aptitude.SectionQuantitative},
			{Text: "g1", Options: []string{"a", "b"}, Correct: 1, Section: aptitude.SectionGeneralKnowledge},
		},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestGetTest_StripsAnswerKeys(t *testing.T) {
	router := testRouter(seededStore(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tests/t-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "correctAnswer") {
		t.Fatalf("response leaks answer keys: %s", rec.Body.String())
	}
	var got aptitude.SanitizedTest
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "t-1" || len(got.Questions) != 3 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestGetTest_NotFound(t *testing.T) {
	router := testRouter(seededStore(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tests/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUploadTest_ValidatesQuestions(t *testing.T) {
	router := testRouter(aptitude.NewInMemoryStore())

	cases := []struct {
		name string
		body string
	}{
		{"missing id", `{"title":"x","duration":30,"questions":[]}`},
		{"zero duration", `{"id":"t","title":"x","duration":0,"questions":[]}`},
		{"key out of range", `{"id":"t","title":"x","duration":30,"questions":[{"question":"q","options":["a","b"],"correctAnswer":2,"section":"verbal"}]}`},
		{"bad section", `{"id":"t","title":"x","duration":30,"questions":[{"question":"q","options":["a","b"],"correctAnswer":0,"section":"trivia"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/tests", strings.NewReader(tc.body))
			router.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSubmitResult_GradesAndPersists(t *testing.T) {
	store := seededStore(t)
	router := testRouter(store)

	// Two of three correct.
	body := `{"testId":"t-1","answers":{"0":0,"1":1,"2":0}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/stu-1/results", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		ResultID       string           `json:"resultId"`
		Score          int              `json:"score"`
		TotalQuestions int              `json:"totalQuestions"`
		Percentage     float64          `json:"percentage"`
		Outcome        aptitude.Outcome `json:"outcome"`
		CompletedAt    string           `json:"completedAt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 2 || got.TotalQuestions != 3 {
		t.Fatalf("score = %d/%d, want 2/3", got.Score, got.TotalQuestions)
	}
	if got.Percentage != 66.67 {
		t.Fatalf("percentage = %v, want 66.67", got.Percentage)
	}
	if got.Outcome != aptitude.OutcomePass {
		t.Fatalf("outcome = %s, want pass", got.Outcome)
	}
	if got.ResultID == "" || got.CompletedAt == "" {
		t.Fatalf("missing identity fields: %+v", got)
	}

	saved, err := store.GetResult(context.Background(), got.ResultID)
	if err != nil {
		t.Fatalf("result not persisted: %v", err)
	}
	if saved.StudentID != "stu-1" {
		t.Fatalf("student = %q, want stu-1", saved.StudentID)
	}
}

func TestSubmitResult_UnknownTest(t *testing.T) {
	router := testRouter(seededStore(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/stu-1/results",
		strings.NewReader(`{"testId":"nope","answers":{}}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListResults_PerStudent(t *testing.T) {
	store := seededStore(t)
	router := testRouter(store)

	submit := func(uid string) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/students/"+uid+"/results",
			strings.NewReader(`{"testId":"t-1","answers":{"0":0}}`))
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("submit for %s: %d", uid, rec.Code)
		}
	}
	submit("stu-1")
	submit("stu-1")
	submit("stu-2")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students/stu-1/results", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var results []aptitude.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}
