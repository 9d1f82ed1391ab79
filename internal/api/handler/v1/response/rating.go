package response

import "github.com/tubhub/tubhub-api/internal/domain"

// RatingResponse distinguishes create from update only by message,
// both returned with 200.
type RatingResponse struct {
	Message string        `json:"message"`
	Result  domain.Rating `json:"result"`
}
