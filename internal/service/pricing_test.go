package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tubhub/tubhub-api/internal/domain"
)

func TestComputeEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		discount *domain.Discount
		want     string
	}{
		{
			name:     "no discount returns base price",
			base:     "100.00",
			discount: nil,
			want:     "100",
		},
		{
			name:     "20 percent off a round price",
			base:     "100.00",
			discount: &domain.Discount{Value: 20},
			want:     "80",
		},
		{
			name:     "33 percent off rounds half up to two decimals",
			base:     "99.99",
			discount: &domain.Discount{Value: 33},
			want:     "66.99",
		},
		{
			name:     "100 percent off is free",
			base:     "59.90",
			discount: &domain.Discount{Value: 100},
			want:     "0",
		},
		{
			name:     "1 percent off",
			base:     "50.00",
			discount: &domain.Discount{Value: 1},
			want:     "49.5",
		},
		{
			name:     "repeating fraction rounds to two decimals",
			base:     "10.00",
			discount: &domain.Discount{Value: 15},
			want:     "8.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := decimal.RequireFromString(tt.base)

			got := ComputeEffectivePrice(base, tt.discount)

			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
