package favoritesusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"myflix/internal/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) List(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID, movieID string) (entities.Outcome, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(entities.Outcome), args.Error(1)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID, movieID string) (entities.Outcome, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(entities.Outcome), args.Error(1)
}
