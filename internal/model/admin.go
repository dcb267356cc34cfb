package model

import "time"

// Admin is an administrator account used for dashboard login.
// PasswordHash is a bcrypt hash; the plaintext password is never stored.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
