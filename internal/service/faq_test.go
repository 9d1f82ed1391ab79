package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

type memFaqRepo struct {
	faqs   map[uint]domain.Faq
	nextID uint
}

func newMemFaqRepo() *memFaqRepo {
	return &memFaqRepo{
		faqs:   make(map[uint]domain.Faq),
		nextID: 1,
	}
}

func (m *memFaqRepo) Create(_ context.Context, faq domain.Faq) (domain.Faq, error) {
	faq.ID = m.nextID
	m.nextID++
	m.faqs[faq.ID] = faq

	return faq, nil
}

func (m *memFaqRepo) FindByID(_ context.Context, id uint) (domain.Faq, error) {
	faq, ok := m.faqs[id]
	if !ok {
		return domain.Faq{}, repository.ErrFaqNotFound
	}

	return faq, nil
}

func (m *memFaqRepo) FindAll(_ context.Context) ([]domain.Faq, error) {
	var out []domain.Faq
	for _, f := range m.faqs {
		out = append(out, f)
	}

	return out, nil
}

func (m *memFaqRepo) FindPublished(_ context.Context) ([]domain.Faq, error) {
	var out []domain.Faq
	for _, f := range m.faqs {
		if f.IsPublished {
			out = append(out, f)
		}
	}

	return out, nil
}

func (m *memFaqRepo) Update(_ context.Context, faq domain.Faq) (domain.Faq, error) {
	if _, ok := m.faqs[faq.ID]; !ok {
		return domain.Faq{}, repository.ErrFaqNotFound
	}
	m.faqs[faq.ID] = faq

	return faq, nil
}

func TestFaqService_SubmitQuestion(t *testing.T) {
	t.Run("anonymous question starts unpublished", func(t *testing.T) {
		svc := NewFaqService(newMemFaqRepo())

		faq, err := svc.SubmitQuestion(context.Background(), nil, "Is the water heated?")

		require.NoError(t, err)
		assert.False(t, faq.IsPublished)
		assert.Nil(t, faq.UserID)
	})

	t.Run("authenticated question records the author", func(t *testing.T) {
		svc := NewFaqService(newMemFaqRepo())

		faq, err := svc.SubmitQuestion(context.Background(), &domain.User{ID: 5}, "How long is delivery?")

		require.NoError(t, err)
		require.NotNil(t, faq.UserID)
		assert.Equal(t, uint(5), *faq.UserID)
	})
}

func TestFaqService_TogglePublish(t *testing.T) {
	t.Run("flips the flag both ways", func(t *testing.T) {
		repo := newMemFaqRepo()
		svc := NewFaqService(repo)

		faq, err := svc.SubmitQuestion(context.Background(), nil, "Is the water heated?")
		require.NoError(t, err)

		toggled, err := svc.TogglePublish(context.Background(), faq.ID)
		require.NoError(t, err)
		assert.True(t, toggled.IsPublished)

		toggled, err = svc.TogglePublish(context.Background(), faq.ID)
		require.NoError(t, err)
		assert.False(t, toggled.IsPublished)
	})

	t.Run("unknown question", func(t *testing.T) {
		svc := NewFaqService(newMemFaqRepo())

		_, err := svc.TogglePublish(context.Background(), 99)

		assert.ErrorIs(t, err, ErrFaqNotFound)
	})
}

func TestFaqService_Listings(t *testing.T) {
	repo := newMemFaqRepo()
	svc := NewFaqService(repo)

	first, err := svc.SubmitQuestion(context.Background(), nil, "Is the water heated?")
	require.NoError(t, err)
	_, err = svc.SubmitQuestion(context.Background(), nil, "How long is delivery?")
	require.NoError(t, err)

	_, err = svc.TogglePublish(context.Background(), first.ID)
	require.NoError(t, err)

	published, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, first.ID, published[0].ID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFaqService_Update(t *testing.T) {
	repo := newMemFaqRepo()
	svc := NewFaqService(repo)

	faq, err := svc.SubmitQuestion(context.Background(), nil, "Is the water heated?")
	require.NoError(t, err)

	faq.Answer = "Yes, up to 40 degrees."
	faq.IsPublished = true

	updated, err := svc.Update(context.Background(), faq)

	require.NoError(t, err)
	assert.Equal(t, "Yes, up to 40 degrees.", updated.Answer)
	assert.True(t, updated.IsPublished)
}
