package aptitude

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu      sync.RWMutex
	tests   map[string]Test
	results map[string]Result
	byStu   map[string][]string // studentID -> result IDs, append order
	now     func() time.Time
}

// NewInMemoryStore is a Store for tests and single-node development.
// Semantics mirror the SQL store.
func NewInMemoryStore() Store {
	return &memoryStore{
		tests:   map[string]Test{},
		results: map[string]Result{},
		byStu:   map[string][]string{},
		now:     time.Now,
	}
}

func (m *memoryStore) PutTest(_ context.Context, t Test) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tests[t.ID] = t
	return nil
}

func (m *memoryStore) GetTest(_ context.Context, id string) (SanitizedTest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tests[id]
	if !ok {
		return SanitizedTest{}, ErrNotFound
	}
	return Sanitize(t), nil
}

func (m *memoryStore) GetTestWithKeys(_ context.Context, id string) (Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tests[id]
	if !ok {
		return Test{}, ErrNotFound
	}
	return t, nil
}

func (m *memoryStore) AppendResult(_ context.Context, r Result) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	r.CompletedAt = m.now().UTC().Format(time.RFC3339)
	m.results[r.ID] = r
	m.byStu[r.StudentID] = append(m.byStu[r.StudentID], r.ID)
	return r, nil
}

func (m *memoryStore) ResultsByStudent(_ context.Context, studentID string) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.byStu[studentID]
	out := make([]Result, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.results[id])
	}
	return out, nil
}

func (m *memoryStore) GetResult(_ context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[id]
	if !ok {
		return Result{}, ErrNotFound
	}
	return r, nil
}
