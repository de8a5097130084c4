package aptitude

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLStore keeps tests and results in relational tables with the question
// list and answer map as JSON columns. Works against sqlite and postgres
// through database/sql.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutTest(ctx context.Context, t Test) error {
	qj, err := json.Marshal(t.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO aptitude_tests (id,title,description,duration_min,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description,
			duration_min=EXCLUDED.duration_min, questions_json=EXCLUDED.questions_json`,
		t.ID, t.Title, t.Description, t.DurationMin, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetTest(ctx context.Context, id string) (SanitizedTest, error) {
	t, err := s.GetTestWithKeys(ctx, id)
	if err != nil {
		return SanitizedTest{}, err
	}
	return Sanitize(t), nil
}

func (s *SQLStore) GetTestWithKeys(ctx context.Context, id string) (Test, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,description,duration_min,questions_json FROM aptitude_tests WHERE id=$1`, id)
	var t Test
	var qjson string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DurationMin, &qjson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Test{}, ErrNotFound
		}
		return Test{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &t.Questions); err != nil {
		return Test{}, fmt.Errorf("decode questions for test %s: %w", id, err)
	}
	return t, nil
}

func (s *SQLStore) AppendResult(ctx context.Context, r Result) (Result, error) {
	r.ID = uuid.NewString()
	r.CompletedAt = time.Now().UTC().Format(time.RFC3339)

	sj, err := json.Marshal(r.SectionScores)
	if err != nil {
		return Result{}, err
	}
	aj, err := json.Marshal(r.Answers)
	if err != nil {
		return Result{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO test_results
		(id,student_id,test_id,score,total_questions,percentage,section_scores_json,answers_json,completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.StudentID, r.TestID, r.Score, r.TotalQuestions, r.Percentage, string(sj), string(aj), r.CompletedAt)
	if err != nil {
		return Result{}, err
	}
	return r, nil
}

func (s *SQLStore) ResultsByStudent(ctx context.Context, studentID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,student_id,test_id,score,total_questions,percentage,
		section_scores_json,answers_json,completed_at
		FROM test_results WHERE student_id=$1 ORDER BY completed_at`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetResult(ctx context.Context, id string) (Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,student_id,test_id,score,total_questions,percentage,
		section_scores_json,answers_json,completed_at
		FROM test_results WHERE id=$1`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	return r, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var r Result
	var sj, aj string
	if err := row.Scan(&r.ID, &r.StudentID, &r.TestID, &r.Score, &r.TotalQuestions, &r.Percentage,
		&sj, &aj, &r.CompletedAt); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(sj), &r.SectionScores); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
		return Result{}, err
	}
	return r, nil
}
