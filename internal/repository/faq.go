package repository

import (
	"context"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository/dao"
)

var ErrFaqNotFound = dao.ErrFaqNotFound

type FaqDAO interface {
	Insert(ctx context.Context, faq dao.Faq) (dao.Faq, error)
	FindByID(ctx context.Context, id uint) (dao.Faq, error)
	FindAll(ctx context.Context) ([]dao.Faq, error)
	FindPublished(ctx context.Context) ([]dao.Faq, error)
	Update(ctx context.Context, faq dao.Faq) (dao.Faq, error)
}

type FaqRepository struct {
	dao FaqDAO
}

func NewFaqRepository(dao FaqDAO) *FaqRepository {
	return &FaqRepository{
		dao: dao,
	}
}

func (r *FaqRepository) Create(ctx context.Context, faq domain.Faq) (domain.Faq, error) {
	created, err := r.dao.Insert(ctx, dao.Faq{
		Question:    faq.Question,
		Answer:      faq.Answer,
		UserID:      faq.UserID,
		IsPublished: faq.IsPublished,
	})
	if err != nil {
		return domain.Faq{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FaqRepository) FindByID(ctx context.Context, id uint) (domain.Faq, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Faq{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FaqRepository) FindAll(ctx context.Context) ([]domain.Faq, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *FaqRepository) FindPublished(ctx context.Context) ([]domain.Faq, error) {
	found, err := r.dao.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPublished -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *FaqRepository) Update(ctx context.Context, faq domain.Faq) (domain.Faq, error) {
	updated, err := r.dao.Update(ctx, dao.Faq{
		ID:          faq.ID,
		Question:    faq.Question,
		Answer:      faq.Answer,
		IsPublished: faq.IsPublished,
	})
	if err != nil {
		return domain.Faq{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FaqRepository) daoToDomain(f dao.Faq) domain.Faq {
	return domain.Faq{
		ID:          f.ID,
		Question:    f.Question,
		Answer:      f.Answer,
		UserID:      f.UserID,
		IsPublished: f.IsPublished,
		CreatedAt:   f.CreatedAt,
	}
}

func (r *FaqRepository) daosToDomain(found []dao.Faq) []domain.Faq {
	faqs := make([]domain.Faq, len(found))
	for i, f := range found {
		faqs[i] = r.daoToDomain(f)
	}

	return faqs
}
