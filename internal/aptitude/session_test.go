package aptitude

import (
	"context"
	"errors"
	"testing"
)

type submitRecorder struct {
	calls   int
	lastSet AnswerSet
	err     error
}

func (s *submitRecorder) fn(_ context.Context, answers AnswerSet) error {
	s.calls++
	s.lastSet = answers
	return s.err
}

func startedSession(t *testing.T, rec *submitRecorder) *Session {
	t.Helper()
	s := NewSession(rec.fn)
	if err := s.Start(Sanitize(fiveQuestionTest())); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestSession_StartEmptyTestFails(t *testing.T) {
	rec := &submitRecorder{}
	s := NewSession(rec.fn)
	err := s.Start(SanitizedTest{ID: "empty", DurationMin: 5})
	if !errors.Is(err, ErrEmptyTest) {
		t.Fatalf("err = %v, want ErrEmptyTest", err)
	}
	if s.State() != StateFailed {
		t.Fatalf("state = %s, want failed", s.State())
	}
	if rec.calls != 0 {
		t.Fatalf("scorer path invoked %d times on empty test", rec.calls)
	}
}

func TestSession_StartArmsCountdown(t *testing.T) {
	s := startedSession(t, &submitRecorder{})
	if s.State() != StateInProgress {
		t.Fatalf("state = %s, want in_progress", s.State())
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("current = %d, want 0", s.CurrentIndex())
	}
	if s.RemainingSeconds() != 60 {
		t.Fatalf("remaining = %d, want 60", s.RemainingSeconds())
	}
}

func TestSession_SelectAnswerOverwrites(t *testing.T) {
	s := startedSession(t, &submitRecorder{})
	if err := s.SelectAnswer(1, 2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.SelectAnswer(1, 3); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if got := s.AnsweredIndices(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("answered = %v, want [1]", got)
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("select moved the pointer to %d", s.CurrentIndex())
	}
}

func TestSession_SelectAnswerRejectsOutOfRange(t *testing.T) {
	s := startedSession(t, &submitRecorder{})
	if err := s.SelectAnswer(5, 0); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("question err = %v, want ErrInvalidIndex", err)
	}
	if err := s.SelectAnswer(0, 4); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("option err = %v, want ErrInvalidIndex", err)
	}
	if got := s.AnsweredIndices(); len(got) != 0 {
		t.Fatalf("answer set changed by rejected select: %v", got)
	}
}

func TestSession_Navigation(t *testing.T) {
	s := startedSession(t, &submitRecorder{})

	s.Previous() // no-op at first question
	if s.CurrentIndex() != 0 {
		t.Fatalf("previous at 0 moved to %d", s.CurrentIndex())
	}
	s.Next()
	if s.CurrentIndex() != 1 {
		t.Fatalf("next = %d, want 1", s.CurrentIndex())
	}
	if err := s.GoTo(4); err != nil {
		t.Fatalf("goto: %v", err)
	}
	s.Next() // no-op at last question
	if s.CurrentIndex() != 4 {
		t.Fatalf("next at end moved to %d", s.CurrentIndex())
	}
	if err := s.GoTo(5); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("goto out of range err = %v, want ErrInvalidIndex", err)
	}
	if s.CurrentIndex() != 4 {
		t.Fatalf("rejected goto moved to %d", s.CurrentIndex())
	}
}

func TestSession_TimerForcesSubmissionExactlyOnce(t *testing.T) {
	rec := &submitRecorder{}
	s := startedSession(t, rec) // duration 1 minute
	ctx := context.Background()

	for i := 0; i < 59; i++ {
		s.Tick(ctx)
	}
	if rec.calls != 0 {
		t.Fatalf("submitted before expiry")
	}
	if s.RemainingSeconds() != 1 {
		t.Fatalf("remaining = %d, want 1", s.RemainingSeconds())
	}

	s.Tick(ctx) // 60th tick: forced submission
	if rec.calls != 1 {
		t.Fatalf("forced submit fired %d times, want 1", rec.calls)
	}
	if s.State() != StateCompleted {
		t.Fatalf("state = %s, want completed", s.State())
	}

	s.Tick(ctx) // 61st tick: no-op
	if rec.calls != 1 {
		t.Fatalf("tick after expiry re-triggered submission")
	}
}

func TestSession_ForcedAndManualSubmitAreExclusive(t *testing.T) {
	rec := &submitRecorder{}
	s := startedSession(t, rec)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		s.Tick(ctx)
	}
	if err := s.Submit(ctx); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("submit after forced submit err = %v, want ErrAlreadySubmitted", err)
	}
	if rec.calls != 1 {
		t.Fatalf("submission ran %d times, want 1", rec.calls)
	}
}

func TestSession_RequestSubmitCountsUnanswered(t *testing.T) {
	s := startedSession(t, &submitRecorder{})
	if got := s.RequestSubmit(); got != 5 {
		t.Fatalf("unanswered = %d, want 5", got)
	}
	_ = s.SelectAnswer(0, 0)
	_ = s.SelectAnswer(3, 1)
	if got := s.RequestSubmit(); got != 3 {
		t.Fatalf("unanswered = %d, want 3", got)
	}
}

func TestSession_SubmitFailureRearmsWithoutRestartingClock(t *testing.T) {
	rec := &submitRecorder{err: errors.New("store down")}
	s := startedSession(t, rec)
	ctx := context.Background()

	s.Tick(ctx)
	remaining := s.RemainingSeconds()

	if err := s.Submit(ctx); err == nil {
		t.Fatalf("expected submit failure")
	}
	if s.State() != StateInProgress {
		t.Fatalf("state = %s, want in_progress after failure", s.State())
	}
	if s.RemainingSeconds() != remaining {
		t.Fatalf("failed submit changed the clock: %d vs %d", s.RemainingSeconds(), remaining)
	}

	// Retry succeeds and is terminal.
	rec.err = nil
	if err := s.Submit(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.State() != StateCompleted {
		t.Fatalf("state = %s, want completed", s.State())
	}
	if rec.calls != 2 {
		t.Fatalf("submit ran %d times, want 2", rec.calls)
	}
}

func TestSession_ExpiredClockStaysStoppedAfterFailedForcedSubmit(t *testing.T) {
	rec := &submitRecorder{err: errors.New("store down")}
	s := startedSession(t, rec)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		s.Tick(ctx)
	}
	if rec.calls != 1 {
		t.Fatalf("forced submit ran %d times, want 1", rec.calls)
	}
	if s.State() != StateInProgress {
		t.Fatalf("state = %s, want in_progress (re-armed)", s.State())
	}

	// Clock is exhausted: further ticks never re-force submission.
	for i := 0; i < 10; i++ {
		s.Tick(ctx)
	}
	if rec.calls != 1 {
		t.Fatalf("exhausted clock re-forced submission")
	}
	if s.RemainingSeconds() != 0 {
		t.Fatalf("remaining = %d, want 0", s.RemainingSeconds())
	}
}

func TestSession_SubmitHandsOverAnswerSnapshot(t *testing.T) {
	rec := &submitRecorder{}
	s := startedSession(t, rec)
	_ = s.SelectAnswer(0, 0)
	_ = s.SelectAnswer(2, 1)

	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := AnswerSet{0: 0, 2: 1}
	if len(rec.lastSet) != len(want) {
		t.Fatalf("submitted %v, want %v", rec.lastSet, want)
	}
	for k, v := range want {
		if rec.lastSet[k] != v {
			t.Fatalf("submitted %v, want %v", rec.lastSet, want)
		}
	}
}

func TestSession_PaletteDerivedFromState(t *testing.T) {
	s := startedSession(t, &submitRecorder{})
	_ = s.SelectAnswer(1, 0)
	_ = s.SelectAnswer(4, 2)
	if err := s.GoTo(2); err != nil {
		t.Fatalf("goto: %v", err)
	}

	want := []QuestionStatus{StatusUnanswered, StatusAnswered, StatusCurrent, StatusUnanswered, StatusAnswered}
	got := s.Palette()
	if len(got) != len(want) {
		t.Fatalf("palette length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("palette[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSession_CurrentQuestionSnapshot(t *testing.T) {
	s := startedSession(t, &submitRecorder{})
	q, ok := s.CurrentQuestion()
	if !ok {
		t.Fatalf("no current question on a started session")
	}
	if q.Text != "v1" {
		t.Fatalf("current question = %q, want v1", q.Text)
	}
	if s.QuestionCount() != 5 {
		t.Fatalf("questionCount = %d, want 5", s.QuestionCount())
	}
}
