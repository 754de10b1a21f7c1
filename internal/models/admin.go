package models

// Admin is an administrator account. The password hash never leaves the server.
type Admin struct {
	Account      string `json:"account" db:"account"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// CreateAdminRequest carries the fields to create an administrator
type CreateAdminRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// UpdateAdminRequest carries a password change for an existing administrator
type UpdateAdminRequest struct {
	Password string `json:"password"`
}
