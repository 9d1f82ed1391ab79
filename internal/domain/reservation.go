package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus replaces the original pair of wait/accepted flags.
// A reservation is created pending and either becomes accepted or is
// hard-deleted; there is no transition back.
type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "pending"
	ReservationAccepted ReservationStatus = "accepted"
)

type Reservation struct {
	ID           uint              `json:"id"`
	TubID        *uint             `json:"tub"`
	UserID       *uint             `json:"user"`
	Price        decimal.Decimal   `json:"price"`
	CountedPrice decimal.Decimal   `json:"counted_price"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Status       ReservationStatus `json:"status"`
	Address      *Address          `json:"address,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Address is the delivery address captured with a booking. It never
// exists without its reservation.
type Address struct {
	City       string `json:"city"`
	Street     string `json:"street"`
	HomeNumber string `json:"home_number"`
}
