package aptitude

import "context"

// Store is the boundary with the test catalog and the result store.
type Store interface {
	PutTest(ctx context.Context, t Test) error
	// GetTest is student-safe: answer keys are stripped.
	GetTest(ctx context.Context, id string) (SanitizedTest, error)
	// GetTestWithKeys returns the full record for the grading path.
	GetTestWithKeys(ctx context.Context, id string) (Test, error)

	// AppendResult persists a graded result, assigning its identifier and
	// completion timestamp. The returned Result carries both.
	AppendResult(ctx context.Context, r Result) (Result, error)
	ResultsByStudent(ctx context.Context, studentID string) ([]Result, error)
	GetResult(ctx context.Context, id string) (Result, error)
}
