package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrRatingConflict = errors.New("rating already submitted concurrently")

type Rating struct {
	ID uint `gorm:"primaryKey"`

	TubID  uint `gorm:"not null;uniqueIndex:idx_ratings_user_tub"`
	UserID uint `gorm:"not null;uniqueIndex:idx_ratings_user_tub"`

	Stars       int `gorm:"not null;check:stars >= 1 AND stars <= 5"`
	Description string
}

type RatingDAO struct {
	db *gorm.DB
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{
		db: db,
	}
}

// Upsert creates the (user, tub) rating or overwrites its stars. The
// unique index backs the invariant; a raced duplicate insert maps to
// ErrRatingConflict instead of retrying.
func (d *RatingDAO) Upsert(ctx context.Context, rating Rating) (Rating, bool, error) {
	var created bool

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Rating
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND tub_id = ?", rating.UserID, rating.TubID).
			First(&existing).Error

		switch {
		case err == nil:
			if err := tx.Model(&Rating{ID: existing.ID}).Update("stars", rating.Stars).Error; err != nil {
				return err
			}
			existing.Stars = rating.Stars
			rating = existing

			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&rating).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return ErrRatingConflict
				}

				return err
			}
			created = true

			return nil

		default:
			return err
		}
	})
	if err != nil {
		return Rating{}, false, translateStorageErr(err)
	}

	return rating, created, nil
}

func (d *RatingDAO) FindByTubID(ctx context.Context, tubID uint) ([]Rating, error) {
	var ratings []Rating

	result := d.db.WithContext(ctx).Where("tub_id = ?", tubID).Find(&ratings)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return ratings, nil
}
