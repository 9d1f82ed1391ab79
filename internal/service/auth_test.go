package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

type memUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byEmail: make(map[string]domain.User),
		nextID:  1,
	}
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = m.nextID
	m.nextID++
	m.byEmail[user.Email] = user

	return user, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("stores a bcrypt hash, never the raw password", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := NewAuthService(repo)

		created, err := svc.Signup(context.Background(), domain.User{
			Email:    "owner@example.com",
			Password: "hunter2hunter2",
			Name:     "Owner",
		})

		require.NoError(t, err)
		assert.NotEqual(t, "hunter2hunter2", created.Password)

		stored := repo.byEmail["owner@example.com"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2hunter2")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := NewAuthService(repo)

		_, err := svc.Signup(context.Background(), domain.User{Email: "owner@example.com", Password: "hunter2hunter2"})
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), domain.User{Email: "owner@example.com", Password: "different12345"})

		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "owner@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "owner@example.com", "hunter2hunter2")

		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "owner@example.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@example.com", "hunter2hunter2")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
