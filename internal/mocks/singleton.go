package mocks

import (
	"context"

	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSingletonService is a mock implementation of service.SingletonService
type MockSingletonService[T any] struct {
	mock.Mock
}

var _ service.SingletonService[struct{}] = (*MockSingletonService[struct{}])(nil)

func (m *MockSingletonService[T]) Get(ctx context.Context) (*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSingletonService[T]) Exists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSingletonService[T]) Create(ctx context.Context, doc *T) (*T, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSingletonService[T]) Update(ctx context.Context, patch store.Fields) (*T, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}
