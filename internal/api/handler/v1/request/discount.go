package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type DiscountRequest struct {
	TubID      *uint  `json:"tub,omitempty"`
	Main       string `json:"main"`
	Active     bool   `json:"active"`
	Used       bool   `json:"used"`
	IsMultiUse bool   `json:"is_multi_use"`
	Value      int    `json:"value"`
}

func (req *DiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Main, validation.Required, validation.Length(1, 15)),
		validation.Field(&req.Value, validation.Required, validation.Min(1), validation.Max(100)),
	)
}
