package aptitude

// Outcome is the eligibility tier a percentage maps to.
type Outcome string

const (
	OutcomePass             Outcome = "pass"
	OutcomeConditionalPass  Outcome = "conditional_pass"
	OutcomeNeedsImprovement Outcome = "needs_improvement"
)

// Classify maps a percentage to an eligibility tier. Lower bounds are
// inclusive: 60.00 passes, 59.99 is a conditional pass, 39.99 needs
// improvement. Total over all finite percentages.
func Classify(percentage float64) Outcome {
	switch {
	case percentage >= 60:
		return OutcomePass
	case percentage >= 40:
		return OutcomeConditionalPass
	default:
		return OutcomeNeedsImprovement
	}
}
