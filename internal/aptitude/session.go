package aptitude

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// State is the lifecycle of one test-taking session.
type State string

const (
	StateLoading    State = "loading"
	StateInProgress State = "in_progress"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// QuestionStatus is the palette view of a single question.
type QuestionStatus string

const (
	StatusCurrent    QuestionStatus = "current"
	StatusAnswered   QuestionStatus = "answered"
	StatusUnanswered QuestionStatus = "unanswered"
)

// SubmitFunc hands the collected answers off for grading and persistence.
type SubmitFunc func(ctx context.Context, answers AnswerSet) error

// Session drives one attempt at a test: presentation order, answer
// collection and the countdown that can force submission. It holds only
// the sanitized view of the test; answer keys never enter a session.
//
// The countdown is an explicit Tick driven by an external scheduler (a
// real ticker in the gateway, the test harness in tests), so timing
// behavior is unit-testable without wall-clock waits.
type Session struct {
	mu sync.Mutex

	test      SanitizedTest
	state     State
	cur       int
	answers   AnswerSet
	remaining int // seconds
	submit    SubmitFunc
}

// NewSession returns a session in the loading state. submit is invoked on
// both user-initiated and forced submission.
func NewSession(submit SubmitFunc) *Session {
	return &Session{
		state:   StateLoading,
		answers: AnswerSet{},
		submit:  submit,
	}
}

// Start arms the session with a fetched test. A test with zero questions
// fails the session permanently with ErrEmptyTest.
func (s *Session) Start(t SanitizedTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return fmt.Errorf("cannot start from state %s", s.state)
	}
	if len(t.Questions) == 0 {
		s.state = StateFailed
		return ErrEmptyTest
	}
	s.test = t
	s.cur = 0
	s.remaining = t.DurationMin * 60
	s.state = StateInProgress
	return nil
}

// SelectAnswer records (or overwrites) the choice for a question. The
// current pointer does not move. Out-of-range indices are rejected and
// leave the answer set untouched.
func (s *Session) SelectAnswer(questionIndex, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotStarted
	}
	if questionIndex < 0 || questionIndex >= len(s.test.Questions) {
		return fmt.Errorf("question %d: %w", questionIndex, ErrInvalidIndex)
	}
	if optionIndex < 0 || optionIndex >= len(s.test.Questions[questionIndex].Options) {
		return fmt.Errorf("option %d: %w", optionIndex, ErrInvalidIndex)
	}
	s.answers[questionIndex] = optionIndex
	return nil
}

// GoTo jumps to a question. Out-of-range targets are rejected rather than
// clamped so the palette never shows a position the session isn't in.
func (s *Session) GoTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotStarted
	}
	if index < 0 || index >= len(s.test.Questions) {
		return fmt.Errorf("go to %d: %w", index, ErrInvalidIndex)
	}
	s.cur = index
	return nil
}

// Next moves forward one question; no-op on the last question.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.cur < len(s.test.Questions)-1 {
		s.cur++
	}
}

// Previous moves back one question; no-op on the first question.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.cur > 0 {
		s.cur--
	}
}

// Tick decrements the countdown by one second. When it reaches zero the
// countdown stops and submission is forced exactly once; further ticks
// are no-ops, including after a failed forced submission (the clock does
// not restart on retry).
func (s *Session) Tick(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateInProgress || s.remaining <= 0 {
		s.mu.Unlock()
		return
	}
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return
	}
	s.submitLocked(ctx)
}

// RequestSubmit reports how many questions are still unanswered so the
// boundary can show a confirmation prompt before calling Submit. The
// confirmation itself is the boundary's concern, not the session's.
func (s *Session) RequestSubmit() (unanswered int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.test.Questions {
		if _, ok := s.answers[i]; !ok {
			unanswered++
		}
	}
	return unanswered
}

// Submit stops the countdown and hands the answers off. On failure the
// session re-arms to in-progress so the caller can retry; the countdown
// stays stopped if it had already expired. Submission is terminal: a
// second submit after success returns ErrAlreadySubmitted.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateCompleted || s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrNotStarted
	}
	return s.submitLocked(ctx)
}

// submitLocked runs the terminal transition. Callers hold s.mu; it is
// released here so the submit callback runs unlocked.
func (s *Session) submitLocked(ctx context.Context) error {
	s.state = StateSubmitting
	answers := make(AnswerSet, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	s.mu.Unlock()

	err := s.submit(ctx, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateInProgress
		return fmt.Errorf("submit: %w", err)
	}
	s.state = StateCompleted
	return nil
}

// --- read-only snapshots for the boundary layer ---

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Session) CurrentQuestion() (SanitizedQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading || s.state == StateFailed || len(s.test.Questions) == 0 {
		return SanitizedQuestion{}, false
	}
	return s.test.Questions[s.cur], true
}

func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.test.Questions)
}

func (s *Session) RemainingSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// AnsweredIndices returns the answered question indices in ascending order.
func (s *Session) AnsweredIndices() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.answers))
	for i := range s.answers {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Palette is the per-question visual state, derived entirely from the
// current index and the answer set so it cannot diverge from them.
func (s *Session) Palette() []QuestionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]QuestionStatus, len(s.test.Questions))
	for i := range out {
		switch {
		case i == s.cur:
			out[i] = StatusCurrent
		case hasAnswer(s.answers, i):
			out[i] = StatusAnswered
		default:
			out[i] = StatusUnanswered
		}
	}
	return out
}

func hasAnswer(a AnswerSet, i int) bool {
	_, ok := a[i]
	return ok
}
