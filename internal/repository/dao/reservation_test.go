package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a throwaway Postgres container. Tests are skipped
// when Docker is not reachable so the suite still runs in minimal CI.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=test",
		"POSTGRES_PASSWORD=test",
		"POSTGRES_DB=tubhub_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf("host=localhost port=%s user=test password=test dbname=tubhub_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)

	return d
}

func seedTub(t *testing.T, db *gorm.DB) Tub {
	t.Helper()

	tub := Tub{
		Name:        "Alpine Barrel",
		Description: "Cedar barrel for four",
		PricePerDay: decimal.RequireFromString("100.00"),
	}
	require.NoError(t, db.Create(&tub).Error)

	return tub
}

func TestReservationDAO_Insert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	reservationDAO := NewReservationDAO(db)

	tub := seedTub(t, db)

	newBooking := func(start, end string) Reservation {
		tubID := tub.ID

		return Reservation{
			TubID:        &tubID,
			Price:        decimal.RequireFromString("100.00"),
			CountedPrice: decimal.RequireFromString("100.00"),
			StartDate:    mustDate(t, start),
			EndDate:      mustDate(t, end),
			Status:       "pending",
		}
	}
	address := Address{City: "Gdansk", Street: "Dluga", HomeNumber: "12"}

	t.Run("books a free slot with its address", func(t *testing.T) {
		created, err := reservationDAO.Insert(ctx, newBooking("2026-06-01", "2026-06-05"), address, nil)

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		require.NotNil(t, created.Address)
		assert.Equal(t, created.ID, created.Address.ReservationID)
	})

	t.Run("rejects an overlapping range even against a pending booking", func(t *testing.T) {
		_, err := reservationDAO.Insert(ctx, newBooking("2026-06-04", "2026-06-08"), address, nil)

		assert.ErrorIs(t, err, ErrReservationOverlap)
	})

	t.Run("rejects a booking sharing only the boundary day", func(t *testing.T) {
		_, err := reservationDAO.Insert(ctx, newBooking("2026-06-05", "2026-06-09"), address, nil)

		assert.ErrorIs(t, err, ErrReservationOverlap)
	})

	t.Run("accepts an adjacent free range", func(t *testing.T) {
		_, err := reservationDAO.Insert(ctx, newBooking("2026-06-06", "2026-06-09"), address, nil)

		assert.NoError(t, err)
	})

	t.Run("unknown tub", func(t *testing.T) {
		booking := newBooking("2026-07-01", "2026-07-02")
		missing := uint(9999)
		booking.TubID = &missing

		_, err := reservationDAO.Insert(ctx, booking, address, nil)

		assert.ErrorIs(t, err, ErrTubNotFound)
	})

	t.Run("claims a single-use discount exactly once", func(t *testing.T) {
		tubID := tub.ID
		discount := Discount{TubID: &tubID, Code: "SUMMER20", Active: true, Value: 20}
		require.NoError(t, db.Create(&discount).Error)

		_, err := reservationDAO.Insert(ctx, newBooking("2026-08-01", "2026-08-05"), address, &discount.ID)
		require.NoError(t, err)

		var claimed Discount
		require.NoError(t, db.First(&claimed, discount.ID).Error)
		assert.True(t, claimed.Used)
		assert.False(t, claimed.Active)

		// Second booking racing for the same code loses and creates nothing.
		_, err = reservationDAO.Insert(ctx, newBooking("2026-08-06", "2026-08-10"), address, &discount.ID)
		assert.ErrorIs(t, err, ErrDiscountAlreadyUsed)

		reservations, err := reservationDAO.FindByTubID(ctx, tub.ID)
		require.NoError(t, err)
		for _, r := range reservations {
			assert.False(t, r.StartDate.Equal(mustDate(t, "2026-08-06")),
				"failed discount claim must not leave a reservation behind")
		}
	})
}

func TestReservationDAO_StatusAndDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	reservationDAO := NewReservationDAO(db)

	tub := seedTub(t, db)
	tubID := tub.ID

	created, err := reservationDAO.Insert(ctx, Reservation{
		TubID:        &tubID,
		Price:        decimal.RequireFromString("100.00"),
		CountedPrice: decimal.RequireFromString("100.00"),
		StartDate:    mustDate(t, "2026-06-01"),
		EndDate:      mustDate(t, "2026-06-05"),
		Status:       "pending",
	}, Address{City: "Gdansk", Street: "Dluga", HomeNumber: "12"}, nil)
	require.NoError(t, err)

	t.Run("accepting flips the status", func(t *testing.T) {
		accepted, err := reservationDAO.UpdateStatus(ctx, created.ID, "accepted")

		require.NoError(t, err)
		assert.Equal(t, "accepted", accepted.Status)

		pending, err := reservationDAO.FindByStatus(ctx, "pending")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("accepting an unknown reservation", func(t *testing.T) {
		_, err := reservationDAO.UpdateStatus(ctx, 9999, "accepted")

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("delete removes the reservation and its address", func(t *testing.T) {
		require.NoError(t, reservationDAO.Delete(ctx, created.ID))

		_, err := reservationDAO.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrReservationNotFound)

		var addresses int64
		require.NoError(t, db.Model(&Address{}).Where("reservation_id = ?", created.ID).Count(&addresses).Error)
		assert.Zero(t, addresses)

		// The slot opens up again.
		_, err = reservationDAO.Insert(ctx, Reservation{
			TubID:        &tubID,
			Price:        decimal.RequireFromString("100.00"),
			CountedPrice: decimal.RequireFromString("100.00"),
			StartDate:    mustDate(t, "2026-06-01"),
			EndDate:      mustDate(t, "2026-06-05"),
			Status:       "pending",
		}, Address{City: "Gdansk", Street: "Dluga", HomeNumber: "12"}, nil)
		assert.NoError(t, err)
	})
}
