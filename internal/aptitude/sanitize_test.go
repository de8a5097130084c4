package aptitude

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSanitize_StripsKeysPreservesOrder(t *testing.T) {
	d := fiveQuestionTest()
	s := Sanitize(d)

	if len(s.Questions) != len(d.Questions) {
		t.Fatalf("got %d questions, want %d", len(s.Questions), len(d.Questions))
	}
	for i, q := range s.Questions {
		if q.Text != d.Questions[i].Text {
			t.Fatalf("question %d out of order: %q vs %q", i, q.Text, d.Questions[i].Text)
		}
		if q.Section != d.Questions[i].Section {
			t.Fatalf("question %d section changed", i)
		}
		if len(q.Options) != len(d.Questions[i].Options) {
			t.Fatalf("question %d options changed", i)
		}
	}
	if s.ID != d.ID || s.Title != d.Title || s.DurationMin != d.DurationMin {
		t.Fatalf("test metadata changed: %+v", s)
	}
}

func TestSanitize_WirePayloadHasNoAnswerField(t *testing.T) {
	buf, err := json.Marshal(Sanitize(fiveQuestionTest()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(buf), "correctAnswer") {
		t.Fatalf("sanitized payload leaks answer key: %s", buf)
	}
}
