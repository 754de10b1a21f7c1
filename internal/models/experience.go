package models

// Experience is a project or professional experience entry. Start and end
// times are stored as display strings, the way they are entered.
type Experience struct {
	ID          int    `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	StartTime   string `json:"startTime" db:"start_time"`
	EndTime     string `json:"endTime" db:"end_time"`
	Media       string `json:"media" db:"media"`
	Description string `json:"description" db:"description"`
	Skills      string `json:"skills" db:"skills"`
	Company     string `json:"company" db:"company"`
	Link        string `json:"link" db:"link"`
}

// ExperienceSummary is the listing view of an experience entry
type ExperienceSummary struct {
	ID        int    `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	StartTime string `json:"startTime" db:"start_time"`
	EndTime   string `json:"endTime" db:"end_time"`
	Media     string `json:"media" db:"media"`
}
