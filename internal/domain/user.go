package domain

import "time"

type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Age           int32
	ContactNumber string
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
