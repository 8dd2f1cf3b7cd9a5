package models

import "time"

// UserRole controls what a user may do in the public site
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleAgent    UserRole = "AGENT"
	UserRoleCustomer UserRole = "CUSTOMER"
)

// UserRoles returns every role in display order
func UserRoles() []UserRole {
	return []UserRole{UserRoleAdmin, UserRoleAgent, UserRoleCustomer}
}

// User is an account managed from the admin area
type User struct {
	ID       int64    `json:"id" db:"id"`
	Username string   `json:"username" db:"username"`
	Email    string   `json:"email" db:"email"`
	FullName string   `json:"full_name" db:"full_name"`
	Phone    string   `json:"phone" db:"phone"`
	Role     UserRole `json:"role" db:"role"`

	// Password is the plain value bound from the form; it is never stored.
	Password     string `json:"-" db:"-"`
	PasswordHash string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
