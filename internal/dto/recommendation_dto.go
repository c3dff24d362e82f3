package dto

// Suggestion is one LLM-proposed next activity.
type Suggestion struct {
	Name           string         `json:"name"`
	Reason         string         `json:"reason"`
	ExpectedMood   string         `json:"expected_mood"`
	StatGains      map[string]int `json:"stat_gains"`
	PhysicalPoints int            `json:"physical_points"`
	MentalPoints   int            `json:"mental_points"`
}

type RecommendationResponse struct {
	Date        string       `json:"date"`
	Cached      bool         `json:"cached"`
	Suggestions []Suggestion `json:"suggestions"`
}
