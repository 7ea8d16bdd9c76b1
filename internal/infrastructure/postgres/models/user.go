package models

import "time"

type UserModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	FirstName     string `gorm:"not null"`
	LastName      string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	Age           int32
	ContactNumber string
	PasswordHash  string `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}
