package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

var (
	ErrDiscountNotFound    = repository.ErrDiscountNotFound
	ErrDiscountAlreadyUsed = repository.ErrDiscountAlreadyUsed
	ErrDiscountWrongTub    = errors.New("this is not the right code for this tub")
	ErrDiscountInactive    = errors.New("this code is not available")
)

type DiscountRepository interface {
	Create(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	FindByID(ctx context.Context, id uint) (domain.Discount, error)
	FindAll(ctx context.Context) ([]domain.Discount, error)
	Update(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	Delete(ctx context.Context, id uint) error
}

type DiscountService struct {
	repo DiscountRepository
}

func NewDiscountService(repo DiscountRepository) *DiscountService {
	return &DiscountService{
		repo: repo,
	}
}

// Validate runs the redemption checks for a discount against a target
// tub, in order: existence, tub scope, active flag, single-use
// exhaustion. It does not consume the code; consumption happens inside
// the booking transaction so a failed booking never burns a code.
func (s *DiscountService) Validate(ctx context.Context, discountID, tubID uint) (domain.Discount, error) {
	discount, err := s.repo.FindByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return domain.Discount{}, ErrDiscountNotFound
		}

		return domain.Discount{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if discount.TubID != nil && *discount.TubID != tubID {
		return domain.Discount{}, ErrDiscountWrongTub
	}

	if !discount.Active {
		return domain.Discount{}, ErrDiscountInactive
	}

	if !discount.IsMultiUse && discount.Used {
		return domain.Discount{}, ErrDiscountAlreadyUsed
	}

	return discount, nil
}

func (s *DiscountService) CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	created, err := s.repo.Create(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DiscountService) GetDiscount(ctx context.Context, id uint) (domain.Discount, error) {
	discount, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return discount, nil
}

func (s *DiscountService) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	discounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return discounts, nil
}

func (s *DiscountService) UpdateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	updated, err := s.repo.Update(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DiscountService) DeleteDiscount(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
