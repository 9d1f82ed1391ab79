package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubhub/tubhub-api/internal/domain"
)

type memRatingRepo struct {
	ratings map[[2]uint]domain.Rating
	nextID  uint
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{
		ratings: make(map[[2]uint]domain.Rating),
		nextID:  1,
	}
}

func (m *memRatingRepo) Upsert(_ context.Context, rating domain.Rating) (domain.Rating, bool, error) {
	key := [2]uint{rating.UserID, rating.TubID}
	if existing, ok := m.ratings[key]; ok {
		existing.Stars = rating.Stars
		m.ratings[key] = existing

		return existing, false, nil
	}

	rating.ID = m.nextID
	m.nextID++
	m.ratings[key] = rating

	return rating, true, nil
}

func (m *memRatingRepo) FindByTubID(_ context.Context, tubID uint) ([]domain.Rating, error) {
	var out []domain.Rating
	for _, r := range m.ratings {
		if r.TubID == tubID {
			out = append(out, r)
		}
	}

	return out, nil
}

func newRatingFixture() (*RatingService, *memRatingRepo) {
	repo := newMemRatingRepo()
	tubs := &stubTubRepo{tubs: map[uint]domain.Tub{
		7: {ID: 7, Name: "Alpine Barrel", PricePerDay: decimal.RequireFromString("100.00")},
	}}

	return NewRatingService(repo, tubs), repo
}

func TestRatingService_Rate(t *testing.T) {
	t.Run("first rating creates a row", func(t *testing.T) {
		svc, _ := newRatingFixture()

		rating, created, err := svc.Rate(context.Background(), 5, 7, 3)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 3, rating.Stars)
		assert.Equal(t, "Alpine Barrel", rating.TubName)
	})

	t.Run("second rating overwrites stars on the same row", func(t *testing.T) {
		svc, repo := newRatingFixture()

		first, created, err := svc.Rate(context.Background(), 5, 7, 3)
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.Rate(context.Background(), 5, 7, 5)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 5, second.Stars)
		assert.Len(t, repo.ratings, 1)
	})

	t.Run("different users rate independently", func(t *testing.T) {
		svc, repo := newRatingFixture()

		_, _, err := svc.Rate(context.Background(), 5, 7, 3)
		require.NoError(t, err)
		_, _, err = svc.Rate(context.Background(), 6, 7, 4)
		require.NoError(t, err)

		assert.Len(t, repo.ratings, 2)
	})

	t.Run("stars below range", func(t *testing.T) {
		svc, _ := newRatingFixture()

		_, _, err := svc.Rate(context.Background(), 5, 7, 0)

		assert.ErrorIs(t, err, ErrStarsOutOfRange)
	})

	t.Run("stars above range", func(t *testing.T) {
		svc, _ := newRatingFixture()

		_, _, err := svc.Rate(context.Background(), 5, 7, 6)

		assert.ErrorIs(t, err, ErrStarsOutOfRange)
	})

	t.Run("unknown tub", func(t *testing.T) {
		svc, _ := newRatingFixture()

		_, _, err := svc.Rate(context.Background(), 5, 99, 3)

		assert.ErrorIs(t, err, ErrTubNotFound)
	})
}

func TestRatingService_ListForTub(t *testing.T) {
	svc, _ := newRatingFixture()

	_, _, err := svc.Rate(context.Background(), 5, 7, 3)
	require.NoError(t, err)

	ratings, err := svc.ListForTub(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "Alpine Barrel", ratings[0].TubName)
}
