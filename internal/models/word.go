package models

// WordSection identifies which page a word record belongs to
type WordSection string

const (
	WordSectionHome       WordSection = "home"
	WordSectionExperience WordSection = "experience"
)

// Word is the editable title/description pair shown at the top of a page.
// Each section holds exactly one logical record; an empty ID means the record
// has not been persisted yet.
type Word struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

// UpdateWordRequest carries the editable fields of a word update
type UpdateWordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
