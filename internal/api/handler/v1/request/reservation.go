package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	errMissingDates     = errors.New("start date and end date are required")
	errInvalidDate      = errors.New("dates must be in YYYY-MM-DD format")
	errInvalidDateRange = errors.New("end date must not be before start date")
)

type CreateReservationRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	City       string `json:"city"`
	Street     string `json:"street"`
	HomeNumber string `json:"home_number"`
	DiscountID *uint  `json:"discount_id,omitempty"`

	// Only honored for managers; regular callers cannot price their
	// own booking.
	CountedPrice *decimal.Decimal `json:"counted_price,omitempty"`
}

func (req *CreateReservationRequest) Validate() error {
	if req.StartDate == "" || req.EndDate == "" {
		return errMissingDates
	}

	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Street, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.HomeNumber, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return err
	}

	start, end, err := req.ParseDates()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return errInvalidDateRange
	}

	return nil
}

func (req *CreateReservationRequest) ParseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDate
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDate
	}

	return start, end, nil
}
