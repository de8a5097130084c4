package aptitude

import "errors"

var (
	// ErrNotFound covers missing tests and results.
	ErrNotFound = errors.New("not found")

	// ErrEmptyTest is fatal to session start: a test with zero questions
	// cannot be taken.
	ErrEmptyTest = errors.New("test has no questions")

	// ErrInvalidIndex rejects out-of-range question or option indices.
	// Session state is left unchanged.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrAlreadySubmitted guards the terminal transition: a session is
	// submitted at most once.
	ErrAlreadySubmitted = errors.New("already submitted")

	// ErrNoQuestions is the scorer's own guard against dividing by zero.
	// Unreachable when ErrEmptyTest is enforced upstream; if it fires it
	// is an internal invariant violation, not a validation error.
	ErrNoQuestions = errors.New("cannot score a test with no questions")

	// ErrNotStarted rejects operations on a session still loading.
	ErrNotStarted = errors.New("session not started")
)
