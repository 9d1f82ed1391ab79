package dao

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingDAO_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ratingDAO := NewRatingDAO(db)

	tub := seedTub(t, db)

	user := User{Email: "rater@example.com", Password: "hash", Name: "Rater"}
	require.NoError(t, db.Create(&user).Error)

	t.Run("create then overwrite keeps one row", func(t *testing.T) {
		first, created, err := ratingDAO.Upsert(ctx, Rating{TubID: tub.ID, UserID: user.ID, Stars: 3})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := ratingDAO.Upsert(ctx, Rating{TubID: tub.ID, UserID: user.ID, Stars: 5})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 5, second.Stars)

		var count int64
		require.NoError(t, db.Model(&Rating{}).
			Where("tub_id = ? AND user_id = ?", tub.ID, user.ID).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("concurrent ratings for the same pair never duplicate", func(t *testing.T) {
		other := User{Email: "other@example.com", Password: "hash", Name: "Other"}
		require.NoError(t, db.Create(&other).Error)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			stars := i%5 + 1
			go func() {
				defer wg.Done()
				_, _, _ = ratingDAO.Upsert(ctx, Rating{TubID: tub.ID, UserID: other.ID, Stars: stars})
			}()
		}
		wg.Wait()

		var count int64
		require.NoError(t, db.Model(&Rating{}).
			Where("tub_id = ? AND user_id = ?", tub.ID, other.ID).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
