package repository

import (
	"context"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository/dao"
)

var ErrTubNotFound = dao.ErrTubNotFound

type TubDAO interface {
	Insert(ctx context.Context, tub dao.Tub) (dao.Tub, error)
	FindByID(ctx context.Context, id uint) (dao.Tub, error)
	FindAll(ctx context.Context) ([]dao.Tub, error)
	Update(ctx context.Context, tub dao.Tub) (dao.Tub, error)
	Delete(ctx context.Context, id uint) error
}

type TubRepository struct {
	dao TubDAO
}

func NewTubRepository(dao TubDAO) *TubRepository {
	return &TubRepository{
		dao: dao,
	}
}

func (r *TubRepository) Create(ctx context.Context, tub domain.Tub) (domain.Tub, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(tub))
	if err != nil {
		return domain.Tub{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TubRepository) FindByID(ctx context.Context, id uint) (domain.Tub, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tub{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TubRepository) FindAll(ctx context.Context) ([]domain.Tub, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	tubs := make([]domain.Tub, len(found))
	for i, t := range found {
		tubs[i] = r.daoToDomain(t)
	}

	return tubs, nil
}

func (r *TubRepository) Update(ctx context.Context, tub domain.Tub) (domain.Tub, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(tub))
	if err != nil {
		return domain.Tub{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TubRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TubRepository) domainToDao(t domain.Tub) dao.Tub {
	return dao.Tub{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		PricePerDay:  t.PricePerDay,
		PricePerWeek: t.PricePerWeek,
		LogoImg:      t.LogoImg,
	}
}

func (r *TubRepository) daoToDomain(t dao.Tub) domain.Tub {
	images := make([]domain.Image, len(t.Images))
	for i, img := range t.Images {
		images[i] = domain.Image{
			ID:  img.ID,
			URL: img.URL,
		}
	}

	return domain.Tub{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		PricePerDay:  t.PricePerDay,
		PricePerWeek: t.PricePerWeek,
		LogoImg:      t.LogoImg,
		Images:       images,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
