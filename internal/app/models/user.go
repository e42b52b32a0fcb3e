package models

import "time"

// User defines an account in the 'users' collection. For department and
// instructor accounts the document ID doubles as the ID of the matching
// departments/instructors document, which is how roles are derived.
type User struct {
	ID           string    `json:"-"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}
