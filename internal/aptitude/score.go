package aptitude

import "math"

// Score grades an answer set against a test that still carries its answer
// keys. It is a pure function of its inputs: identical (test, answers)
// pairs produce identical results. No partial credit, no negative marking.
// The store assigns ID and CompletedAt afterwards.
func Score(t Test, answers AnswerSet) (Result, error) {
	if len(t.Questions) == 0 {
		return Result{}, ErrNoQuestions
	}

	r := Result{
		TestID:         t.ID,
		TotalQuestions: len(t.Questions),
		Answers:        answers,
	}
	if r.Answers == nil {
		r.Answers = AnswerSet{}
	}

	for i, q := range t.Questions {
		sec := r.SectionScores.At(q.Section)
		if sec == nil {
			continue // untagged question: counts toward the overall total only
		}
		sec.Total++
		chosen, ok := answers[i]
		if !ok {
			continue
		}
		if chosen == q.Correct {
			r.Score++
			sec.Score++
		}
	}

	r.Percentage = round2(float64(r.Score) / float64(r.TotalQuestions) * 100)
	return r, nil
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
