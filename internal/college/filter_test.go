package college

import "testing"

func sample() College {
	return College{
		ID:       "c-1",
		Name:     "IIT Delhi",
		Location: "INDIA",
		Fees:     250000,
		Ranking:  2,
		Courses:  []string{"Computer Science", "Mechanical Engineering"},
	}
}

func TestFilter_Matches(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"zero filter matches everything", Filter{}, true},
		{"fees inside range", Filter{MinFees: 100000, MaxFees: 300000}, true},
		{"fees below min", Filter{MinFees: 300000}, false},
		{"fees above max", Filter{MaxFees: 200000}, false},
		{"ranking at bound", Filter{MaxRanking: 2}, true},
		{"ranking worse than bound", Filter{MaxRanking: 1}, false},
		{"course substring case-insensitive", Filter{Course: "computer"}, true},
		{"course not offered", Filter{Course: "medicine"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Matches(sample()); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}
