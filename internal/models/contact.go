package models

// Contact holds the site owner's contact details
type Contact struct {
	ID       string `json:"id" db:"id"`
	Phone    string `json:"phone" db:"phone"`
	Email    string `json:"email" db:"email"`
	LinkedIn string `json:"linkedin" db:"linkedin"`
	GitHub   string `json:"github" db:"github"`
}

// UpdateContactRequest carries the editable fields of a contact update
type UpdateContactRequest struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}
