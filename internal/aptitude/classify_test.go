package aptitude

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want Outcome
	}{
		{100.00, OutcomePass},
		{60.00, OutcomePass},
		{59.99, OutcomeConditionalPass},
		{40.00, OutcomeConditionalPass},
		{39.99, OutcomeNeedsImprovement},
		{0.00, OutcomeNeedsImprovement},
	}
	for _, tc := range tests {
		if got := Classify(tc.pct); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}
