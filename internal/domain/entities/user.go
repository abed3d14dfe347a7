package entities

import "time"

// User is an admin account allowed into the dashboard. Passwords are stored
// as bcrypt hashes only.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
