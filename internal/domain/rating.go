package domain

// Rating is unique per (user, tub). Re-rating overwrites stars and
// leaves the description untouched.
type Rating struct {
	ID          uint   `json:"id"`
	TubID       uint   `json:"tub"`
	TubName     string `json:"tub_name,omitempty"`
	UserID      uint   `json:"user"`
	Stars       int    `json:"stars"`
	Description string `json:"description,omitempty"`
}
