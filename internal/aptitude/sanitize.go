package aptitude

// Sanitize strips answer keys from a test before it is handed to a
// test-taker. Order is preserved; the input is not modified.
func Sanitize(t Test) SanitizedTest {
	qs := make([]SanitizedQuestion, len(t.Questions))
	for i, q := range t.Questions {
		qs[i] = SanitizedQuestion{
			Text:    q.Text,
			Options: q.Options,
			Section: q.Section,
		}
	}
	return SanitizedTest{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DurationMin: t.DurationMin,
		Questions:   qs,
	}
}
