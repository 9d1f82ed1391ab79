package repository

import (
	"context"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository/dao"
)

var (
	ErrDiscountNotFound    = dao.ErrDiscountNotFound
	ErrDiscountAlreadyUsed = dao.ErrDiscountAlreadyUsed
)

type DiscountDAO interface {
	Insert(ctx context.Context, discount dao.Discount) (dao.Discount, error)
	FindByID(ctx context.Context, id uint) (dao.Discount, error)
	FindAll(ctx context.Context) ([]dao.Discount, error)
	Update(ctx context.Context, discount dao.Discount) (dao.Discount, error)
	Delete(ctx context.Context, id uint) error
}

type DiscountRepository struct {
	dao DiscountDAO
}

func NewDiscountRepository(dao DiscountDAO) *DiscountRepository {
	return &DiscountRepository{
		dao: dao,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(discount))
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uint) (domain.Discount, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DiscountRepository) FindAll(ctx context.Context) ([]domain.Discount, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	discounts := make([]domain.Discount, len(found))
	for i, d := range found {
		discounts[i] = r.daoToDomain(d)
	}

	return discounts, nil
}

func (r *DiscountRepository) Update(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(discount))
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DiscountRepository) domainToDao(d domain.Discount) dao.Discount {
	return dao.Discount{
		ID:         d.ID,
		TubID:      d.TubID,
		Code:       d.Code,
		Active:     d.Active,
		Used:       d.Used,
		IsMultiUse: d.IsMultiUse,
		Value:      d.Value,
	}
}

func (r *DiscountRepository) daoToDomain(d dao.Discount) domain.Discount {
	return domain.Discount{
		ID:         d.ID,
		TubID:      d.TubID,
		Code:       d.Code,
		Active:     d.Active,
		Used:       d.Used,
		IsMultiUse: d.IsMultiUse,
		Value:      d.Value,
	}
}
