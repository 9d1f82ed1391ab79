package domain

// Discount is a percentage-off code. A nil TubID means the code is not
// scoped to a particular tub. Single-use codes flip used/active on
// redemption; multi-use codes are never mutated.
type Discount struct {
	ID         uint   `json:"id"`
	TubID      *uint  `json:"tub"`
	Code       string `json:"main"`
	Active     bool   `json:"active"`
	Used       bool   `json:"used"`
	IsMultiUse bool   `json:"is_multi_use"`
	Value      int    `json:"value"`
}
