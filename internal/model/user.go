package model

import "time"

// DefaultUserImage is used when a user signs up without an image.
const DefaultUserImage = "https://acecollegecanada.com/wp-content/uploads/2019/12/user-icon-placeholder.png"

// User represents a user account
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	Image     string    `json:"image"`
	Places    []string  `json:"places"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Image    string `json:"image,omitempty" validate:"omitempty,url"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
