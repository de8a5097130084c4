package college

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const collegeCols = `id,name,location,city,fees,ranking,courses_json,facilities_json,description,eligibility_json`

// List pushes location and limit into the query; range and course
// predicates run over the fetched rows (Filter.Matches).
func (s *SQLStore) List(ctx context.Context, f Filter) ([]College, error) {
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var (
		rows *sql.Rows
		err  error
	)
	if f.Location != "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+collegeCols+` FROM colleges WHERE location=$1 ORDER BY ranking, name LIMIT $2`,
			f.Location, limit)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+collegeCols+` FROM colleges ORDER BY ranking, name LIMIT $1`, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []College{}
	for rows.Next() {
		c, err := scanCollege(rows)
		if err != nil {
			return nil, err
		}
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (College, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+collegeCols+` FROM colleges WHERE id=$1`, id)
	c, err := scanCollege(row)
	if errors.Is(err, sql.ErrNoRows) {
		return College{}, ErrNotFound
	}
	return c, err
}

func (s *SQLStore) Create(ctx context.Context, c College) (College, error) {
	c.ID = uuid.NewString()
	cj, fj, ej, err := marshalCollege(c)
	if err != nil {
		return College{}, err
	}
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, `INSERT INTO colleges
		(id,name,location,city,fees,ranking,courses_json,facilities_json,description,eligibility_json,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)`,
		c.ID, c.Name, c.Location, c.City, c.Fees, c.Ranking, cj, fj, c.Description, ej, now)
	if err != nil {
		return College{}, err
	}
	return c, nil
}

func (s *SQLStore) Update(ctx context.Context, c College) error {
	cj, fj, ej, err := marshalCollege(c)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE colleges SET
		name=$1, location=$2, city=$3, fees=$4, ranking=$5,
		courses_json=$6, facilities_json=$7, description=$8, eligibility_json=$9, updated_at=$10
		WHERE id=$11`,
		c.Name, c.Location, c.City, c.Fees, c.Ranking, cj, fj, c.Description, ej,
		time.Now().Unix(), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM colleges WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollege(row rowScanner) (College, error) {
	var c College
	var cj, fj, ej string
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &c.City, &c.Fees, &c.Ranking,
		&cj, &fj, &c.Description, &ej); err != nil {
		return College{}, err
	}
	if err := json.Unmarshal([]byte(cj), &c.Courses); err != nil {
		return College{}, err
	}
	if err := json.Unmarshal([]byte(fj), &c.Facilities); err != nil {
		return College{}, err
	}
	if err := json.Unmarshal([]byte(ej), &c.Eligibility); err != nil {
		return College{}, err
	}
	return c, nil
}

func marshalCollege(c College) (courses, facilities, eligibility string, err error) {
	cj, err := json.Marshal(c.Courses)
	if err != nil {
		return "", "", "", err
	}
	fj, err := json.Marshal(c.Facilities)
	if err != nil {
		return "", "", "", err
	}
	ej, err := json.Marshal(c.Eligibility)
	if err != nil {
		return "", "", "", err
	}
	return string(cj), string(fj), string(ej), nil
}
