package model

import "time"

// User is an account record. The password is stored as submitted; there is no
// hashing in this system.
type User struct {
	ID        int       `json:"id"`
	Phone     string    `json:"phone"`
	UserID    string    `json:"user_id"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
