package domain

import "time"

type Faq struct {
	ID          uint      `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer,omitempty"`
	UserID      *uint     `json:"user,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"date"`
}
