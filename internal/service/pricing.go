package service

import (
	"github.com/shopspring/decimal"

	"github.com/tubhub/tubhub-api/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeEffectivePrice applies a percentage discount to a daily base
// price. The result is rounded half-up to 2 decimal places. A nil
// discount leaves the base price untouched. Pure function.
func ComputeEffectivePrice(basePrice decimal.Decimal, discount *domain.Discount) decimal.Decimal {
	if discount == nil {
		return basePrice
	}

	factor := oneHundred.Sub(decimal.NewFromInt(int64(discount.Value))).Div(oneHundred)

	return basePrice.Mul(factor).Round(2)
}
