package moviesusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"myflix/internal/domain/entities"
)

type mockMovieRepository struct {
	mock.Mock
}

func (m *mockMovieRepository) List(ctx context.Context) ([]*entities.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Movie), args.Error(1)
}

func (m *mockMovieRepository) FindByTitle(ctx context.Context, title string) (*entities.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Movie), args.Error(1)
}

func (m *mockMovieRepository) FindGenre(ctx context.Context, name string) (*entities.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Genre), args.Error(1)
}

func (m *mockMovieRepository) FindDirector(ctx context.Context, name string) (*entities.Director, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Director), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
