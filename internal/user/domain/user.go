package domain

import "time"

type ID string

// User is stored with the password exactly as submitted.
type User struct {
	ID        ID
	Username  string
	Password  string
	CreatedAt time.Time
}

type NewUser struct {
	Username string
	Password string
}
