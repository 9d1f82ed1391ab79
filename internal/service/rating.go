package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

var (
	ErrStarsOutOfRange = errors.New("stars must be between 1 and 5")
	ErrRatingConflict  = repository.ErrRatingConflict
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating domain.Rating) (domain.Rating, bool, error)
	FindByTubID(ctx context.Context, tubID uint) ([]domain.Rating, error)
}

type RatingTubRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Tub, error)
}

type RatingService struct {
	repo    RatingRepository
	tubRepo RatingTubRepository
}

func NewRatingService(repo RatingRepository, tubRepo RatingTubRepository) *RatingService {
	return &RatingService{
		repo:    repo,
		tubRepo: tubRepo,
	}
}

// Rate records the user's stars for a tub. The first call creates the
// rating, later calls overwrite stars in place (description untouched).
// The returned bool reports whether the rating was newly created.
func (s *RatingService) Rate(ctx context.Context, userID, tubID uint, stars int) (domain.Rating, bool, error) {
	if stars < 1 || stars > 5 {
		return domain.Rating{}, false, ErrStarsOutOfRange
	}

	tub, err := s.tubRepo.FindByID(ctx, tubID)
	if err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return domain.Rating{}, false, ErrTubNotFound
		}

		return domain.Rating{}, false, fmt.Errorf("s.tubRepo.FindByID -> %w", err)
	}

	rating, created, err := s.repo.Upsert(ctx, domain.Rating{
		TubID:  tubID,
		UserID: userID,
		Stars:  stars,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRatingConflict) {
			return domain.Rating{}, false, ErrRatingConflict
		}

		return domain.Rating{}, false, fmt.Errorf("s.repo.Upsert -> %w", err)
	}
	rating.TubName = tub.Name

	return rating, created, nil
}

func (s *RatingService) ListForTub(ctx context.Context, tubID uint) ([]domain.Rating, error) {
	tub, err := s.tubRepo.FindByID(ctx, tubID)
	if err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return nil, ErrTubNotFound
		}

		return nil, fmt.Errorf("s.tubRepo.FindByID -> %w", err)
	}

	ratings, err := s.repo.FindByTubID(ctx, tubID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTubID -> %w", err)
	}

	for i := range ratings {
		ratings[i].TubName = tub.Name
	}

	return ratings, nil
}
