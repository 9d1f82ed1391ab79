package domain

import "time"

type User struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	IsManager   bool      `json:"is_manager"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
