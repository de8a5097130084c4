package college

type Eligibility struct {
	MinCGPA      float64 `json:"minCGPA,omitempty"`
	RequiredExam string  `json:"requiredExam,omitempty"`
	MinScore     string  `json:"minScore,omitempty"`
}

type College struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"` // INDIA | ABROAD
	City        string      `json:"city,omitempty"`
	Fees        int         `json:"fees"`
	Ranking     int         `json:"ranking,omitempty"`
	Courses     []string    `json:"courses,omitempty"`
	Facilities  []string    `json:"facilities,omitempty"`
	Description string      `json:"description,omitempty"`
	Eligibility Eligibility `json:"eligibility,omitempty"`
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	Location   string // exact, uppercased
	MinFees    int
	MaxFees    int
	MaxRanking int    // ranking at or better than (numerically <=)
	Course     string // case-insensitive substring over course names
	Limit      int
}
