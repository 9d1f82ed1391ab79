package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

type TubRepository interface {
	Create(ctx context.Context, tub domain.Tub) (domain.Tub, error)
	FindByID(ctx context.Context, id uint) (domain.Tub, error)
	FindAll(ctx context.Context) ([]domain.Tub, error)
	Update(ctx context.Context, tub domain.Tub) (domain.Tub, error)
	Delete(ctx context.Context, id uint) error
}

type TubService struct {
	repo TubRepository
}

func NewTubService(repo TubRepository) *TubService {
	return &TubService{
		repo: repo,
	}
}

func (s *TubService) CreateTub(ctx context.Context, tub domain.Tub) (domain.Tub, error) {
	created, err := s.repo.Create(ctx, tub)
	if err != nil {
		return domain.Tub{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TubService) GetTub(ctx context.Context, id uint) (domain.Tub, error) {
	tub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return domain.Tub{}, ErrTubNotFound
		}

		return domain.Tub{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return tub, nil
}

func (s *TubService) ListTubs(ctx context.Context) ([]domain.Tub, error) {
	tubs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return tubs, nil
}

func (s *TubService) UpdateTub(ctx context.Context, tub domain.Tub) (domain.Tub, error) {
	updated, err := s.repo.Update(ctx, tub)
	if err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return domain.Tub{}, ErrTubNotFound
		}

		return domain.Tub{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TubService) DeleteTub(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return ErrTubNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
