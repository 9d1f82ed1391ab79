package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

var ErrFaqNotFound = repository.ErrFaqNotFound

type FaqRepository interface {
	Create(ctx context.Context, faq domain.Faq) (domain.Faq, error)
	FindByID(ctx context.Context, id uint) (domain.Faq, error)
	FindAll(ctx context.Context) ([]domain.Faq, error)
	FindPublished(ctx context.Context) ([]domain.Faq, error)
	Update(ctx context.Context, faq domain.Faq) (domain.Faq, error)
}

type FaqService struct {
	repo FaqRepository
}

func NewFaqService(repo FaqRepository) *FaqService {
	return &FaqService{
		repo: repo,
	}
}

// SubmitQuestion creates an unpublished question. user may be nil for
// anonymous submissions.
func (s *FaqService) SubmitQuestion(ctx context.Context, user *domain.User, question string) (domain.Faq, error) {
	faq := domain.Faq{
		Question:    question,
		IsPublished: false,
	}
	if user != nil {
		userID := user.ID
		faq.UserID = &userID
	}

	created, err := s.repo.Create(ctx, faq)
	if err != nil {
		return domain.Faq{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// TogglePublish flips the published flag.
func (s *FaqService) TogglePublish(ctx context.Context, id uint) (domain.Faq, error) {
	faq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFaqNotFound) {
			return domain.Faq{}, ErrFaqNotFound
		}

		return domain.Faq{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	faq.IsPublished = !faq.IsPublished

	updated, err := s.repo.Update(ctx, faq)
	if err != nil {
		return domain.Faq{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FaqService) ListPublished(ctx context.Context) ([]domain.Faq, error) {
	faqs, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPublished -> %w", err)
	}

	return faqs, nil
}

func (s *FaqService) ListAll(ctx context.Context) ([]domain.Faq, error) {
	faqs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return faqs, nil
}

// Update overwrites question, answer and publish flag.
func (s *FaqService) Update(ctx context.Context, faq domain.Faq) (domain.Faq, error) {
	updated, err := s.repo.Update(ctx, faq)
	if err != nil {
		if errors.Is(err, repository.ErrFaqNotFound) {
			return domain.Faq{}, ErrFaqNotFound
		}

		return domain.Faq{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
