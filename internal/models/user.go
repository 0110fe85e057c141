package models

// User represents a registered customer or administrator account.
// Password holds the bcrypt hash and is empty for phone-only or
// OAuth-only accounts.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"-"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	GoogleID *string `json:"google_id,omitempty"`
}

// UserInput carries the fields accepted when creating a user. Password
// is already hashed by the time it reaches storage.
type UserInput struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	GoogleID *string `json:"google_id,omitempty"`
}
