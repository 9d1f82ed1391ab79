package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/service"
)

type stubReservationService struct {
	createFn func(ctx context.Context, cmd service.CreateReservationCommand) (service.CreateReservationResult, error)
}

func (s *stubReservationService) Create(ctx context.Context, cmd service.CreateReservationCommand) (service.CreateReservationResult, error) {
	return s.createFn(ctx, cmd)
}

func (s *stubReservationService) Accept(_ context.Context, _ uint) (domain.Reservation, error) {
	return domain.Reservation{}, nil
}

func (s *stubReservationService) Delete(_ context.Context, _ uint) error {
	return nil
}

func (s *stubReservationService) ListForTub(_ context.Context, _ uint) ([]domain.Reservation, error) {
	return nil, nil
}

func (s *stubReservationService) ListAll(_ context.Context) ([]domain.Reservation, error) {
	return nil, nil
}

func (s *stubReservationService) ListByStatus(_ context.Context, _ bool) ([]domain.Reservation, error) {
	return nil, nil
}

type stubUserService struct{}

func (s *stubUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	return domain.User{ID: id}, nil
}

func newBookingRouter(svc ReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewReservationHandler(svc, &stubUserService{})
	router.POST("/api/v1/tubs/:tubID/reservations", handler.HandleCreateReservation)

	return router
}

func postBooking(t *testing.T, router *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func validBookingBody() map[string]any {
	return map[string]any{
		"start_date":  "2026-06-01",
		"end_date":    "2026-06-05",
		"city":        "Gdansk",
		"street":      "Dluga",
		"home_number": "12",
	}
}

func TestHandleCreateReservation(t *testing.T) {
	t.Run("creates a pending reservation", func(t *testing.T) {
		svc := &stubReservationService{
			createFn: func(_ context.Context, cmd service.CreateReservationCommand) (service.CreateReservationResult, error) {
				return service.CreateReservationResult{
					Reservation: domain.Reservation{
						ID:           1,
						Status:       domain.ReservationPending,
						Price:        decimal.RequireFromString("100.00"),
						CountedPrice: decimal.RequireFromString("100.00"),
						StartDate:    cmd.StartDate,
						EndDate:      cmd.EndDate,
					},
					OriginalPrice: decimal.RequireFromString("100.00"),
				}, nil
			},
		}
		router := newBookingRouter(svc)

		recorder := postBooking(t, router, "/api/v1/tubs/7/reservations", validBookingBody())

		require.Equal(t, http.StatusCreated, recorder.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Reservation created. Wait for acceptance by owner", resp["message"])
		assert.NotContains(t, resp, "discount_value")
	})

	t.Run("includes the discount breakdown when a code was applied", func(t *testing.T) {
		svc := &stubReservationService{
			createFn: func(_ context.Context, _ service.CreateReservationCommand) (service.CreateReservationResult, error) {
				return service.CreateReservationResult{
					Reservation: domain.Reservation{
						ID:           1,
						Status:       domain.ReservationPending,
						Price:        decimal.RequireFromString("100.00"),
						CountedPrice: decimal.RequireFromString("80.00"),
					},
					Discount:      &domain.Discount{ID: 3, Value: 20},
					OriginalPrice: decimal.RequireFromString("100.00"),
				}, nil
			},
		}
		router := newBookingRouter(svc)

		body := validBookingBody()
		body["discount_id"] = 3

		recorder := postBooking(t, router, "/api/v1/tubs/7/reservations", body)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Reservation created, discount applied successfully. Wait for acceptance by owner", resp["message"])
		assert.Equal(t, "20%", resp["discount_value"])
		assert.Equal(t, "100", resp["original_price_per_day"])
		assert.Equal(t, "80", resp["discounted_price_per_day"])
	})

	t.Run("unknown tub renders 404", func(t *testing.T) {
		svc := &stubReservationService{
			createFn: func(_ context.Context, _ service.CreateReservationCommand) (service.CreateReservationResult, error) {
				return service.CreateReservationResult{}, service.ErrTubNotFound
			},
		}
		router := newBookingRouter(svc)

		recorder := postBooking(t, router, "/api/v1/tubs/99/reservations", validBookingBody())

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("overlap renders 400", func(t *testing.T) {
		svc := &stubReservationService{
			createFn: func(_ context.Context, _ service.CreateReservationCommand) (service.CreateReservationResult, error) {
				return service.CreateReservationResult{}, service.ErrReservationOverlap
			},
		}
		router := newBookingRouter(svc)

		recorder := postBooking(t, router, "/api/v1/tubs/7/reservations", validBookingBody())

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("discount rejections render 400", func(t *testing.T) {
		svc := &stubReservationService{
			createFn: func(_ context.Context, _ service.CreateReservationCommand) (service.CreateReservationResult, error) {
				return service.CreateReservationResult{}, service.ErrDiscountWrongTub
			},
		}
		router := newBookingRouter(svc)

		recorder := postBooking(t, router, "/api/v1/tubs/7/reservations", validBookingBody())

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "this is not the right code for this tub", resp["message"])
	})

	t.Run("missing dates are rejected before the service is called", func(t *testing.T) {
		called := false
		svc := &stubReservationService{
			createFn: func(_ context.Context, _ service.CreateReservationCommand) (service.CreateReservationResult, error) {
				called = true

				return service.CreateReservationResult{}, nil
			},
		}
		router := newBookingRouter(svc)

		body := validBookingBody()
		delete(body, "end_date")

		recorder := postBooking(t, router, "/api/v1/tubs/7/reservations", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.False(t, called)
	})

	t.Run("storage outage renders 503", func(t *testing.T) {
		svc := &stubReservationService{
			createFn: func(_ context.Context, _ service.CreateReservationCommand) (service.CreateReservationResult, error) {
				return service.CreateReservationResult{}, service.ErrStorageUnavailable
			},
		}
		router := newBookingRouter(svc)

		recorder := postBooking(t, router, "/api/v1/tubs/7/reservations", validBookingBody())

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
