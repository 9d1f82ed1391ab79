package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservationRequest() CreateReservationRequest {
	return CreateReservationRequest{
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-05",
		City:       "Gdansk",
		Street:     "Dluga",
		HomeNumber: "12",
	}
}

func TestCreateReservationRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validReservationRequest()

		assert.NoError(t, req.Validate())
	})

	t.Run("missing dates", func(t *testing.T) {
		req := validReservationRequest()
		req.StartDate = ""

		assert.ErrorIs(t, req.Validate(), errMissingDates)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validReservationRequest()
		req.StartDate = "01/06/2026"

		assert.Error(t, req.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		req := validReservationRequest()
		req.StartDate = "2026-06-05"
		req.EndDate = "2026-06-01"

		assert.ErrorIs(t, req.Validate(), errInvalidDateRange)
	})

	t.Run("same day is valid", func(t *testing.T) {
		req := validReservationRequest()
		req.StartDate = "2026-06-03"
		req.EndDate = "2026-06-03"

		assert.NoError(t, req.Validate())
	})

	t.Run("missing address", func(t *testing.T) {
		req := validReservationRequest()
		req.City = ""

		assert.Error(t, req.Validate())
	})
}

func TestCreateReservationRequest_ParseDates(t *testing.T) {
	req := validReservationRequest()

	start, end, err := req.ParseDates()

	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", start.Format(dateLayout))
	assert.Equal(t, "2026-06-05", end.Format(dateLayout))
}

func TestCreateRatingRequest_Validate(t *testing.T) {
	t.Run("missing stars", func(t *testing.T) {
		req := CreateRatingRequest{}

		assert.ErrorIs(t, req.Validate(), errMissingStars)
	})

	t.Run("out of range", func(t *testing.T) {
		zero := 0
		req := CreateRatingRequest{Stars: &zero}

		assert.ErrorIs(t, req.Validate(), errStarsOutOfRange)

		six := 6
		req.Stars = &six

		assert.ErrorIs(t, req.Validate(), errStarsOutOfRange)
	})

	t.Run("valid", func(t *testing.T) {
		five := 5
		req := CreateRatingRequest{Stars: &five}

		assert.NoError(t, req.Validate())
	})
}
