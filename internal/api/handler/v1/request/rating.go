package request

import (
	"errors"
)

var (
	errMissingStars    = errors.New("you need to provide stars")
	errStarsOutOfRange = errors.New("stars must be between 1 and 5")
)

type CreateRatingRequest struct {
	// Pointer so a missing field is distinguishable from 0 stars.
	Stars *int `json:"stars"`
}

func (req *CreateRatingRequest) Validate() error {
	if req.Stars == nil {
		return errMissingStars
	}

	if *req.Stars < 1 || *req.Stars > 5 {
		return errStarsOutOfRange
	}

	return nil
}
