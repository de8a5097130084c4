package college

import "strings"

// Matches reports whether a college passes the range and course predicates.
// Location and limit are applied in the store query; the rest are simple
// in-memory predicates over the fetched rows.
func (f Filter) Matches(c College) bool {
	if f.MinFees > 0 && c.Fees < f.MinFees {
		return false
	}
	if f.MaxFees > 0 && c.Fees > f.MaxFees {
		return false
	}
	if f.MaxRanking > 0 && c.Ranking > f.MaxRanking {
		return false
	}
	if f.Course != "" {
		needle := strings.ToLower(f.Course)
		found := false
		for _, course := range c.Courses {
			if strings.Contains(strings.ToLower(course), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
