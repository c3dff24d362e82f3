package dto

// ResetSummary is what one run of the daily reset job reports.
type ResetSummary struct {
	DogsProcessed  int    `json:"dogs_processed"`
	StreaksUpdated int    `json:"streaks_updated"`
	TodayKey       string `json:"today_key"`
	YesterdayKey   string `json:"yesterday_key"`
}

// Tip is the summarized training article served from the tip cache.
type Tip struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	KeyPoints   []string `json:"key_points"`
	Source      string   `json:"source"`
	Topic       string   `json:"topic"`
	FetchedAt   string   `json:"fetched_at"`
}
