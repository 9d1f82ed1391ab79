package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tub struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	PricePerDay  decimal.Decimal  `json:"price_per_day"`
	PricePerWeek *decimal.Decimal `json:"price_per_week,omitempty"`
	LogoImg      string           `json:"logo_img,omitempty"`
	Images       []Image          `json:"images"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type Image struct {
	ID  uint   `json:"id"`
	URL string `json:"image"`
}
