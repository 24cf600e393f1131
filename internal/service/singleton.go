package service

import (
	"context"

	"github.com/pageza/portfolio/backend/internal/store"
)

// SingletonService is the contract for resources holding at most one
// document. Clients never address the document by id.
type SingletonService[T any] interface {
	Get(ctx context.Context) (*T, error)
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, patch store.Fields) (*T, error)
}

// Singleton adapts a Resource to SingletonService by always selecting the
// first document.
type Singleton[T any, PT interface {
	*T
	Document
}] struct {
	r *Resource[T, PT]
}

func NewSingleton[T any, PT interface {
	*T
	Document
}](r *Resource[T, PT]) *Singleton[T, PT] {
	return &Singleton[T, PT]{r: r}
}

func (s *Singleton[T, PT]) Get(ctx context.Context) (*T, error) {
	return s.r.First(ctx)
}

func (s *Singleton[T, PT]) Exists(ctx context.Context) (bool, error) {
	return s.r.Exists(ctx)
}

func (s *Singleton[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	return s.r.Create(ctx, doc)
}

func (s *Singleton[T, PT]) Update(ctx context.Context, patch store.Fields) (*T, error) {
	existing, err := s.r.First(ctx)
	if err != nil {
		return nil, err
	}
	return s.r.apply(ctx, PT(existing).Doc().ID, patch)
}
