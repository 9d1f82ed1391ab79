package repository

import (
	"context"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository/dao"
)

var ErrRatingConflict = dao.ErrRatingConflict

type RatingDAO interface {
	Upsert(ctx context.Context, rating dao.Rating) (dao.Rating, bool, error)
	FindByTubID(ctx context.Context, tubID uint) ([]dao.Rating, error)
}

type RatingRepository struct {
	dao RatingDAO
}

func NewRatingRepository(dao RatingDAO) *RatingRepository {
	return &RatingRepository{
		dao: dao,
	}
}

// Upsert returns the stored rating and whether it was newly created.
func (r *RatingRepository) Upsert(ctx context.Context, rating domain.Rating) (domain.Rating, bool, error) {
	stored, created, err := r.dao.Upsert(ctx, dao.Rating{
		TubID:       rating.TubID,
		UserID:      rating.UserID,
		Stars:       rating.Stars,
		Description: rating.Description,
	})
	if err != nil {
		return domain.Rating{}, false, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(stored), created, nil
}

func (r *RatingRepository) FindByTubID(ctx context.Context, tubID uint) ([]domain.Rating, error) {
	found, err := r.dao.FindByTubID(ctx, tubID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTubID -> %w", err)
	}

	ratings := make([]domain.Rating, len(found))
	for i, rt := range found {
		ratings[i] = r.daoToDomain(rt)
	}

	return ratings, nil
}

func (r *RatingRepository) daoToDomain(rt dao.Rating) domain.Rating {
	return domain.Rating{
		ID:          rt.ID,
		TubID:       rt.TubID,
		UserID:      rt.UserID,
		Stars:       rt.Stars,
		Description: rt.Description,
	}
}
