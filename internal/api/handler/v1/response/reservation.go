package response

import (
	"github.com/shopspring/decimal"

	"github.com/tubhub/tubhub-api/internal/domain"
)

// CreateReservationResponse mirrors the shape the mobile client
// expects: the reservation under "result" plus discount breakdown
// fields when a code was applied.
type CreateReservationResponse struct {
	Message               string             `json:"message"`
	Result                domain.Reservation `json:"result"`
	OriginalPricePerDay   *decimal.Decimal   `json:"original_price_per_day,omitempty"`
	DiscountedPricePerDay *decimal.Decimal   `json:"discounted_price_per_day,omitempty"`
	DiscountValue         string             `json:"discount_value,omitempty"`
}

type ReservationActionResponse struct {
	Message string             `json:"message"`
	Result  domain.Reservation `json:"result"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
