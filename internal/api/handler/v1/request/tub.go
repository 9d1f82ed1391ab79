package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNonPositivePrice = errors.New("price must be greater than zero")

type TubRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	PricePerDay  decimal.Decimal  `json:"price_per_day"`
	PricePerWeek *decimal.Decimal `json:"price_per_week,omitempty"`
	LogoImg      string           `json:"logo_img,omitempty"`
}

func (req *TubRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
	)
	if err != nil {
		return err
	}

	if !req.PricePerDay.IsPositive() {
		return errNonPositivePrice
	}
	if req.PricePerWeek != nil && !req.PricePerWeek.IsPositive() {
		return errNonPositivePrice
	}

	return nil
}
